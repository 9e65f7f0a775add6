// Package antiforgery implements ports.AntiForgeryTokenStore.
//
// Tokens are single-use: ValidateAndConsume accepts a token at most once and
// only before its TTL runs out. Two stores are provided, an in-process map for
// a single instance and a Redis store shared between instances.
package antiforgery

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// DefaultTTL is how long an issued token stays valid.
	DefaultTTL = 15 * time.Minute

	tokenBytes = 24
)

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate anti-forgery token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// wellFormed rejects anything that could not have been issued here, so junk
// never reaches the backing store.
func wellFormed(token string) bool {
	if len(token) != hex.EncodedLen(tokenBytes) {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
