// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SecurityMetadata is the persisted `security-metadata` record. The salt is
// stored outside the state document so it survives document rewrites.
type SecurityMetadata struct {
	// Salt is the standard base64 encoding of the key derivation salt.
	Salt string `json:"salt"`
}

// PinMetadata is the persisted `pin-metadata` record. It never holds the PIN.
type PinMetadata struct {
	Enabled     bool   `json:"enabled"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// EncryptedEnvelope is the sealed form of the `state` record.
//
// Nonce and Ciphertext are standard base64; Ciphertext carries the GCM tag
// appended by the cipher. Only the authenticated codec produces and consumes
// envelopes.
type EncryptedEnvelope struct {
	Encrypted  bool   `json:"encrypted"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// Protection selects how the state document is persisted.
//
// It is a closed set: [Unprotected] or [Protected].
type Protection interface {
	isProtection()
}

// Unprotected persists the state document as plaintext JSON.
type Unprotected struct{}

// Protected persists the state document sealed with a key derived from the
// session PIN and Salt. Fingerprint is the PIN fingerprint written to the
// pin metadata record.
type Protected struct {
	Salt        []byte
	Fingerprint string
}

func (Unprotected) isProtection() {}
func (Protected) isProtection()   {}

// IsProtected reports whether p seals the document.
func IsProtected(p Protection) bool {
	_, ok := p.(Protected)
	return ok
}
