package urls

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSpecString(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"no params", New("github.com/sfneal/dependencies"), "https://github.com/sfneal/dependencies"},
		{"single param", New("travis-ci.com/sfneal/actions.svg", P("branch", "master")), "https://travis-ci.com/sfneal/actions.svg?branch=master"},
		{
			"insertion order",
			New("example.com/a", P("z", "1"), P("a", "2"), P("m", "3")),
			"https://example.com/a?z=1&a=2&m=3",
		},
		{"empty non-nil params", Spec{HostPath: "example.com", Params: Params{}}, "https://example.com?"},
		{"no escaping", New("example.com", P("label", "Test Suite")), "https://example.com?label=Test Suite"},
		{"empty host", New(""), "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecStringProperties(t *testing.T) {
	cases := []struct {
		host, path string
		params     []Param
	}{
		{"github.com", "/owner/repo", nil},
		{"img.shields.io", "/github/last-commit/a/b", []Param{Style(StyleFlat)}},
		{"hub.docker.com", "/r/library/nginx", []Param{P("a", "1"), P("b", "2")}},
	}

	for _, c := range cases {
		got := New(c.host+c.path, c.params...).String()
		if !strings.HasPrefix(got, "https://") {
			t.Errorf("%q should start with https://", got)
		}
		if !strings.Contains(got, c.host+c.path) {
			t.Errorf("%q should contain %q", got, c.host+c.path)
		}
		wantQ := 0
		if len(c.params) > 0 {
			wantQ = 1
		}
		if n := strings.Count(got, "?"); n != wantQ {
			t.Errorf("%q has %d '?', want %d", got, n, wantQ)
		}
	}
}

func TestSpecDeterministic(t *testing.T) {
	a := New("example.com/x", P("k", "v"), P("k2", "v2")).String()
	b := New("example.com/x", P("k", "v"), P("k2", "v2")).String()
	if a != b {
		t.Errorf("same input rendered differently: %q vs %q", a, b)
	}
}

func TestSpecWith(t *testing.T) {
	base := New("example.com", P("a", "1"))
	ext := base.With(P("b", "2"))

	if got := base.String(); got != "https://example.com?a=1" {
		t.Errorf("With() modified receiver: %q", got)
	}
	if got := ext.String(); got != "https://example.com?a=1&b=2" {
		t.Errorf("With() = %q", got)
	}

	if got := New("example.com").With().String(); got != "https://example.com" {
		t.Errorf("With() without params should not add a query: %q", got)
	}
}

func TestSpecMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Spec{"url": New("example.com", P("a", "b"))})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"url":"https://example.com?a=b"}` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestShields(t *testing.T) {
	got := Shields("github/workflow/status/sfneal/actions/Test Suite",
		Logo("github"), Style(StyleForTheBadge), Label("Test Suite")).String()
	want := "https://img.shields.io/github/workflow/status/sfneal/actions/Test Suite?logo=github&style=for-the-badge&label=Test Suite"
	if got != want {
		t.Errorf("Shields() = %q, want %q", got, want)
	}
}

func TestShieldsUnknownParamsPassThrough(t *testing.T) {
	got := Shields("badge/x-y-green", P("cacheSeconds", "3600")).String()
	if got != "https://img.shields.io/badge/x-y-green?cacheSeconds=3600" {
		t.Errorf("Shields() = %q", got)
	}
}
