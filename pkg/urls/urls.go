package urls

import "strings"

const scheme = "https://"

// Param is a single query string pair.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// P is shorthand for building a Param.
func P(key, value string) Param { return Param{Key: key, Value: value} }

// Params is an ordered list of query parameters. A nil Params renders no
// query string at all; a non-nil empty Params renders a bare "?".
type Params []Param

// Encode joins the parameters as key=value pairs separated by "&", in
// insertion order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.Key)
		b.WriteByte('=')
		b.WriteString(kv.Value)
	}
	return b.String()
}

// Spec describes an https URL as a host+path and its query parameters.
// Spec is a value type; methods never modify the receiver.
type Spec struct {
	HostPath string `json:"host_path"`
	Params   Params `json:"params,omitempty"`
}

// New creates a Spec for hostPath. Without params the rendered URL has no
// query string.
func New(hostPath string, params ...Param) Spec {
	s := Spec{HostPath: hostPath}
	if len(params) > 0 {
		s.Params = append(Params{}, params...)
	}
	return s
}

// With returns a copy of s with params appended after any existing ones.
func (s Spec) With(params ...Param) Spec {
	out := Spec{HostPath: s.HostPath}
	if s.Params != nil || len(params) > 0 {
		out.Params = make(Params, 0, len(s.Params)+len(params))
		out.Params = append(out.Params, s.Params...)
		out.Params = append(out.Params, params...)
	}
	return out
}

// String renders the absolute URL.
func (s Spec) String() string {
	if s.Params == nil {
		return scheme + s.HostPath
	}
	return scheme + s.HostPath + "?" + s.Params.Encode()
}

// MarshalText renders s so it serialises as a plain URL string.
func (s Spec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
