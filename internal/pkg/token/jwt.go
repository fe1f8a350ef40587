// Package token creates and verifies signed, time-limited bearer tokens
// carrying an identity id and role.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/challenge/todo-list-api/internal/core/domain"
)

// DefaultTTL is the fixed token lifetime: tokens expire exactly one hour
// after issuance.
const DefaultTTL = time.Hour

// Claims is the verified identity carried by a token.
type Claims struct {
	IdentityID string
	Role       domain.Role
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a process-wide secret injected
// at construction. Verification is purely cryptographic and time-based; it
// never consults the user store, so a minted token stays valid until expiry
// regardless of later changes to the account.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls
// back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue encodes identityID and role into a signed token expiring ttl from
// now.
func (c *Codec) Issue(identityID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify decodes raw and checks its signature and expiry. Any failure mode
// (malformed encoding, signature mismatch, wrong algorithm, expiry in the
// past) collapses to domain.ErrInvalidToken.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &Claims{
		IdentityID: claims.Subject,
		Role:       domain.Role(claims.Role),
	}, nil
}
