// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-aura/models"
)

// NonceSize is the AES-GCM nonce length in bytes.
const NonceSize = 12

// gcmCodec is the private implementation of [Codec] using AES-256-GCM.
type gcmCodec struct {
	random io.Reader
}

// NewCodec constructs an AES-256-GCM [Codec].
func NewCodec() Codec {
	return &gcmCodec{random: rand.Reader}
}

// Seal implements [Codec].
func (c *gcmCodec) Seal(doc any, key Key) (models.EncryptedEnvelope, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(doc)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("marshal document: %w", err)
	}

	// 2. Build AES-GCM cipher from the key
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedEnvelope{}, err
	}

	// 3. Generate a fresh nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// 4. Encrypt, tag appended to the ciphertext
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return models.EncryptedEnvelope{
		Encrypted:  true,
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Open implements [Codec].
func (c *gcmCodec) Open(env models.EncryptedEnvelope, key Key, target any) error {
	if !env.Encrypted {
		return fmt.Errorf("%w: record is not an encrypted envelope", ErrDecode)
	}

	// 1. Decode nonce and ciphertext
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return fmt.Errorf("%w: nonce: %v", ErrDecode, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return fmt.Errorf("%w: ciphertext: %v", ErrDecode, err)
	}

	// 2. Build AES-GCM cipher from the key
	gcm, err := newGCM(key)
	if err != nil {
		return err
	}
	if len(nonce) != gcm.NonceSize() {
		return fmt.Errorf("%w: nonce length %d", ErrDecode, len(nonce))
	}
	if len(ciphertext) < gcm.Overhead() {
		return fmt.Errorf("%w: ciphertext too short", ErrDecode)
	}

	// 3. Decrypt and verify the tag
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrAuthFailure
	}

	// 4. Unmarshal JSON into target
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}

func newGCM(key Key) (cipher.AEAD, error) {
	if len(key.material) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key.material)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
