package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/sfneal/dependencies/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", fmt.Errorf("list: %w", context.Canceled), 130},
		{"bad config", errs.New(errs.ErrCodeInvalidConfig, "unknown backend"), 2},
		{"bad manifest", fmt.Errorf("list dependencies: %w", errs.New(errs.ErrCodeInvalidManifest, "parse")), 2},
		{"remote failure", errs.New(errs.ErrCodeNetwork, "github down"), 1},
		{"plain error", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
