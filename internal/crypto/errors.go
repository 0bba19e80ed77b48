package crypto

import "errors"

var (
	// ErrAuthFailure is returned by [Codec.Open] when the authentication tag
	// does not verify: the key is wrong or the ciphertext was altered.
	ErrAuthFailure = errors.New("authentication failed")

	// ErrDecode is returned when an envelope cannot be decoded or the
	// decrypted bytes are not a valid document.
	ErrDecode = errors.New("decode error")

	// ErrInvalidKey is returned when a zero or wiped [Key] is used.
	ErrInvalidKey = errors.New("invalid key")
)
