// Package auth verifies the signed tokens carried by inbound chat messages
// and by the HTTP notification endpoints.
//
// Tokens are issued by the identity layer; this package only checks them:
// HS256 signature against the shared key, expiry, and a fixed issuer. The
// audience claim is deliberately left unchecked, matching the issuing side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSubject is returned when a token verifies but carries no
// subject-identity claim.
var ErrMissingSubject = errors.New("token has no subject claim")

// Verifier checks a signed token and extracts the subject identity.
type Verifier interface {
	Verify(tokenString string) (subject string, err error)
}

// TokenVerifier verifies HS256 tokens against a shared signing key and a
// fixed issuer.
type TokenVerifier struct {
	key    []byte
	issuer string
}

// NewTokenVerifier creates a verifier for the given signing key and issuer.
func NewTokenVerifier(key []byte, issuer string) *TokenVerifier {
	return &TokenVerifier{key: key, issuer: issuer}
}

// Verify parses and validates the token and returns its subject claim.
// Expired tokens, bad signatures and wrong issuers all fail here; a valid
// token without a subject fails with ErrMissingSubject.
func (v *TokenVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(*jwt.Token) (interface{}, error) { return v.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return "", err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", ErrMissingSubject
	}

	return subject, nil
}

// Sign issues a token for the given subject. The API itself never issues
// tokens; this exists for the seed command and for tests that need a
// counterpart to Verify.
func (v *TokenVerifier) Sign(subject string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.key)
}

var _ Verifier = (*TokenVerifier)(nil)
