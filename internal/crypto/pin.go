package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// Fingerprint domain separation.
const (
	pinDomainPrefix  = "AURA|"
	pinDomainVersion = "|v350"

	// FingerprintLength is the fixed length of a PIN fingerprint, the full
	// standard base64 encoding of a SHA-256 digest.
	FingerprintLength = 44
)

type sha256PinVerifier struct{}

// NewPinVerifier constructs a [PinVerifier] computing
// base64(SHA-256("AURA|" + pin + "|v350")).
func NewPinVerifier() PinVerifier {
	return sha256PinVerifier{}
}

// Fingerprint implements [PinVerifier].
func (sha256PinVerifier) Fingerprint(pin string) string {
	sum := sha256.Sum256([]byte(pinDomainPrefix + pin + pinDomainVersion))
	encoded := base64.StdEncoding.EncodeToString(sum[:])
	return encoded[:FingerprintLength]
}

// Verify implements [PinVerifier].
func (v sha256PinVerifier) Verify(pin, fingerprint string) bool {
	if len(fingerprint) != FingerprintLength {
		return false
	}
	candidate := v.Fingerprint(pin)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(fingerprint)) == 1
}
