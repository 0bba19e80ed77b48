package crypto

import "github.com/MKhiriev/go-aura/models"

// KeyDeriver turns a numeric PIN and a persisted salt into a symmetric key.
//
// Derivation is PBKDF2-HMAC-SHA256 with [Iterations] rounds.
type KeyDeriver interface {
	// Derive returns the key for (pin, salt) together with the salt used.
	// When salt is empty a fresh random salt of [SaltSize] bytes is
	// generated. The same (pin, salt) pair always yields the same key.
	Derive(pin string, salt []byte) (Key, []byte, error)
}

// Codec seals and opens the state document with authenticated encryption.
//
// Envelopes produced by Seal are only meant to be consumed by Open.
type Codec interface {
	// Seal serialises doc to JSON and encrypts it under key with a fresh
	// random nonce.
	Seal(doc any, key Key) (models.EncryptedEnvelope, error)

	// Open authenticates and decrypts env under key and unmarshals the
	// plaintext into target. It returns [ErrAuthFailure] when the tag does
	// not verify and [ErrDecode] when the envelope or the plaintext is
	// malformed.
	Open(env models.EncryptedEnvelope, key Key, target any) error
}

// PinVerifier computes and checks domain-separated PIN fingerprints.
type PinVerifier interface {
	// Fingerprint returns the fixed-length fingerprint of pin.
	Fingerprint(pin string) string

	// Verify reports whether pin matches the stored fingerprint, comparing
	// the full fingerprint in constant time.
	Verify(pin, fingerprint string) bool
}
