package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// apiNamespace is the key segment shared by all cached API responses.
const apiNamespace = "api-responses"

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Keyer builds cache keys under a fixed namespace prefix so several
// installations can share one backend.
//
//	k := cache.NewKeyer("dependencies")
//	k.APIKey("https://api.github.com/repos/sfneal/actions")
//	// dependencies:api-responses:3f1c...
type Keyer struct {
	prefix string
}

// NewKeyer creates a Keyer. A trailing ":" on prefix is optional.
func NewKeyer(prefix string) Keyer {
	return Keyer{prefix: strings.TrimSuffix(prefix, ":")}
}

// APIKey returns the key for a cached response to requestURL.
func (k Keyer) APIKey(requestURL string) string {
	return k.join(apiNamespace, Hash([]byte(requestURL)))
}

func (k Keyer) join(parts ...string) string {
	if k.prefix == "" {
		return strings.Join(parts, ":")
	}
	return k.prefix + ":" + strings.Join(parts, ":")
}
