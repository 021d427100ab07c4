package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by every issued access token.
//
// It extends the standard registered claims (sub, exp, iat, iss) with the
// account's email and role so that authenticated handlers can authorize
// requests without an extra account lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Username is the email the account logged in with.
	Username string `json:"username"`

	// Role is the account variant: "user" or "artist".
	Role string `json:"role"`
}

// Token wraps a JWT access token with convenience accessors for the
// authentication flow.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// OwnerID is a cached, parsed copy of the "sub" claim converted to int64,
// populated during generation or validation to avoid repeated string
// parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims provides access to the token's claim set.
	SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OwnerID is the account identifier extracted from the "sub" claim.
	OwnerID int64 `json:"-"`
}

// GetOwnerID extracts the account identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetOwnerID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting owner ID from token: %w", err)
	}

	ownerID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting owner ID from token to int64: %w", err)
	}

	return ownerID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
