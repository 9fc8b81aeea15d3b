package articles

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the identity claims embedded in an access token. The
// registered exp claim is intentionally unset; expiry travels in the
// expires_at string claim and is checked separately from decoding.
type TokenClaims struct {
	jwt.RegisteredClaims
	UID       string `json:"id,omitempty"`
	UserName  string `json:"name,omitempty"`
	UserEmail string `json:"email,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// Subject returns the subject claim
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID
func (c *TokenClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Name returns the display name
func (c *TokenClaims) Name() string {
	return c.UserName
}

// Email returns the email claim
func (c *TokenClaims) Email() string {
	return c.UserEmail
}

// Expiration returns the raw expires_at claim
func (c *TokenClaims) Expiration() string {
	return c.ExpiresAt
}

type claimsIdentity struct {
	id    string
	name  string
	email string
}

func (a claimsIdentity) ID() string    { return a.id }
func (a claimsIdentity) Name() string  { return a.name }
func (a claimsIdentity) Email() string { return a.email }

var _ Identity = claimsIdentity{}

// IdentityFromClaims maps token claims to an Identity. Claims are trusted
// as-is; we do not re-fetch the user from storage.
func IdentityFromClaims(claims *TokenClaims) (Identity, error) {
	if claims == nil {
		return nil, ErrUnableToMapClaims
	}

	return claimsIdentity{
		id:    claims.UserID(),
		name:  claims.Name(),
		email: claims.Email(),
	}, nil
}
