// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters.
const (
	// Iterations is the PBKDF2 round count.
	Iterations = 120000
	// SaltSize is the length of a generated salt in bytes.
	SaltSize = 16
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32
)

// Key is a derived encryption key. Its material is only reachable from the
// codec in this package.
type Key struct {
	material []byte
}

// IsZero reports whether k holds no key material.
func (k Key) IsZero() bool {
	return len(k.material) == 0
}

// Zero overwrites the key material.
func (k Key) Zero() {
	for i := range k.material {
		k.material[i] = 0
	}
}

// pbkdf2Deriver is the private implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	iterations int
	random     io.Reader
}

// NewKeyDeriver constructs a [KeyDeriver] using PBKDF2-HMAC-SHA256 with
// [Iterations] rounds and salts read from crypto/rand.
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2Deriver{
		iterations: Iterations,
		random:     rand.Reader,
	}
}

// Derive implements [KeyDeriver].
func (d *pbkdf2Deriver) Derive(pin string, salt []byte) (Key, []byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, SaltSize)
		if _, err := io.ReadFull(d.random, salt); err != nil {
			return Key{}, nil, fmt.Errorf("generate salt: %w", err)
		}
	}

	material := pbkdf2.Key([]byte(pin), salt, d.iterations, KeySize, sha256.New)
	return Key{material: material}, salt, nil
}

// NewSalt returns [SaltSize] random bytes from crypto/rand.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
