package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the backend and decoded by the client.
//
// Besides the registered claims it carries the three identity attributes the
// frontend needs to derive authorization without an extra round-trip:
// email, role, and the user id. The claim names are part of the wire contract
// with existing deployments and must not be renamed.
type Claims struct {
	// Email is the account email the token was issued for.
	Email string `json:"email"`

	// Role is either RoleUser or RoleAdmin at issue time.
	Role string `json:"role"`

	// UserID is the account identifier, encoded as a string.
	UserID string `json:"userId"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or stored
// on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the festival claim set (email, role, userId plus the
	// registered claims).
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
