package cache

import (
	"context"
	"time"
)

// NullCache misses on every lookup and drops every write. [Open] returns it
// for backend "none", and the CLI uses it for --no-cache, so each GitHub
// lookup goes to the network.
//
// The zero value is ready to use and may be embedded to override single
// methods.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache {
	return &NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var (
	_ Cache = NullCache{}
	_ Cache = (*NullCache)(nil)
)
