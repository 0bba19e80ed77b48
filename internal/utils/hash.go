package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the integrity key. It is
// empty until InitHasherPool is called.
var hasherPool sync.Pool

// InitHasherPool keys every pooled hasher with hashKey. Both the daemon and
// the remote client call it once at start-up when a key is configured.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the raw HMAC-SHA256 of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Sign returns the hex form of Hash, as sent in the HashSHA256 header.
func Sign(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// Verify reports whether signature is the hex HMAC of data. Malformed hex
// never verifies.
func Verify(data []byte, signature string) bool {
	sum, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(sum, Hash(data))
}
