package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

// backends returns every backend that can run without external services.
func backends(t *testing.T, clock Clock) map[string]Cache {
	t.Helper()
	fc, err := NewFileCacheWithClock(t.TempDir(), clock)
	if err != nil {
		t.Fatalf("NewFileCacheWithClock() error: %v", err)
	}
	return map[string]Cache{
		"file":   fc,
		"memory": NewMemoryCacheWithClock(clock),
		"redis":  &RedisCache{client: newFakeRedis(clock)},
	}
}

func TestCacheGetSet(t *testing.T) {
	ctx := context.Background()
	for name, c := range backends(t, newFakeClock()) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()

			if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
				t.Fatalf("Get(missing) = %v, %v; want miss", hit, err)
			}

			if err := c.Set(ctx, "key", []byte(`{"a":1}`), time.Hour); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			data, hit, err := c.Get(ctx, "key")
			if err != nil || !hit {
				t.Fatalf("Get() = %v, %v; want hit", hit, err)
			}
			if string(data) != `{"a":1}` {
				t.Errorf("Get() data = %s", data)
			}

			if err := c.Set(ctx, "key", []byte("second"), time.Hour); err != nil {
				t.Fatalf("Set() overwrite error: %v", err)
			}
			data, _, _ = c.Get(ctx, "key")
			if string(data) != "second" {
				t.Errorf("last write should win, got %s", data)
			}

			if err := c.Delete(ctx, "key"); err != nil {
				t.Fatalf("Delete() error: %v", err)
			}
			if _, hit, _ := c.Get(ctx, "key"); hit {
				t.Error("Get() after Delete() should miss")
			}
			if err := c.Delete(ctx, "key"); err != nil {
				t.Errorf("Delete() of missing key error: %v", err)
			}
		})
	}
}

func TestCacheExpiration(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"file", "memory", "redis"} {
		t.Run(name, func(t *testing.T) {
			clock := newFakeClock()
			c := backends(t, clock)[name]

			_ = c.Set(ctx, "short", []byte("v"), time.Minute)
			_ = c.Set(ctx, "forever", []byte("v"), 0)

			if _, hit, _ := c.Get(ctx, "short"); !hit {
				t.Fatal("entry should be live before its TTL")
			}

			clock.Advance(2 * time.Minute)

			if _, hit, _ := c.Get(ctx, "short"); hit {
				t.Error("entry should expire after its TTL")
			}
			if _, hit, _ := c.Get(ctx, "forever"); !hit {
				t.Error("entry without TTL should not expire")
			}
		})
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("v"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path("key"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "key"); hit || err != nil {
		t.Errorf("corrupt entry should be a miss, got hit=%v err=%v", hit, err)
	}
	if _, err := os.Stat(c.path("key")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	for i := 0; i < 5; i++ {
		if err := c.Set(ctx, "key", []byte("v"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if strings.HasSuffix(path, ".tmp") {
			t.Errorf("temporary file left behind: %s", path)
		}
		return nil
	})
}

func TestFileCacheConcurrentSet(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "shared", []byte("same"), time.Hour)
		}()
	}
	wg.Wait()

	data, hit, err := c.Get(ctx, "shared")
	if err != nil || !hit || string(data) != "same" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() removed %d entries, want 2", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear()")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKeyer(t *testing.T) {
	url := "https://api.github.com/repos/sfneal/actions"

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"plain prefix", "dependencies", "dependencies:api-responses:" + Hash([]byte(url))},
		{"trailing separator", "dependencies:", "dependencies:api-responses:" + Hash([]byte(url))},
		{"empty prefix", "", "api-responses:" + Hash([]byte(url))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewKeyer(tt.prefix).APIKey(url); got != tt.want {
				t.Errorf("APIKey() = %q, want %q", got, tt.want)
			}
		})
	}

	k := NewKeyer("x")
	if k.APIKey(url) == k.APIKey(url+"/other") {
		t.Error("different URLs should produce different keys")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Options{Backend: BackendFile, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(file) error: %v", err)
	}
	if _, ok := c.(*FileCache); !ok {
		t.Errorf("Open(file) = %T", c)
	}

	c, err = Open(ctx, Options{Backend: BackendNone})
	if err != nil {
		t.Fatalf("Open(none) error: %v", err)
	}
	if _, ok := c.(*NullCache); !ok {
		t.Errorf("Open(none) = %T", c)
	}

	if _, err := Open(ctx, Options{Backend: "memcached"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(memcached) error = %v, want ErrUnknownBackend", err)
	}
}
