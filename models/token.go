package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication
// flows. It embeds [jwt.Token] for low-level operations and
// [jwt.RegisteredClaims] for standard claim access.
//
// SignedString holds the compact serialized form ready to be carried in an
// Authorization header. UserID is a cached copy of the "sub" claim parsed to
// int64.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID extracts the user identifier from the "sub" claim and parses it
// as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token. It implements
// [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
