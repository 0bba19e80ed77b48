package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT issued to a local API client after setup or
// unlock.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for the standard claim set. The token ID ("jti")
// identifies the session; "sub" is fixed to [SessionSubject].
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// SessionSubject is the subject claim of every session token.
const SessionSubject = "aura-session"

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
