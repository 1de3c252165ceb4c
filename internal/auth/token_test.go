package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "movie-catalog-api"

var testKey = []byte("unit-test-signing-key")

func TestVerify_RoundTrip(t *testing.T) {
	req := require.New(t)
	v := NewTokenVerifier(testKey, testIssuer)

	token, err := v.Sign("user-42", time.Minute)
	req.NoError(err)

	subject, err := v.Verify(token)
	req.NoError(err)
	req.Equal("user-42", subject)
}

func TestVerify_RejectsForeignKey(t *testing.T) {
	req := require.New(t)

	forged, err := NewTokenVerifier([]byte("some-other-key"), testIssuer).Sign("user-42", time.Minute)
	req.NoError(err)

	_, err = NewTokenVerifier(testKey, testIssuer).Verify(forged)
	req.Error(err)
}

func TestVerify_RejectsWrongIssuer(t *testing.T) {
	req := require.New(t)

	token, err := NewTokenVerifier(testKey, "someone-else").Sign("user-42", time.Minute)
	req.NoError(err)

	_, err = NewTokenVerifier(testKey, testIssuer).Verify(token)
	req.Error(err)
}

func TestVerify_RejectsExpired(t *testing.T) {
	req := require.New(t)
	v := NewTokenVerifier(testKey, testIssuer)

	token, err := v.Sign("user-42", -time.Minute)
	req.NoError(err)

	_, err = v.Verify(token)
	req.Error(err)
}

func TestVerify_RejectsMissingSubject(t *testing.T) {
	req := require.New(t)

	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	req.NoError(err)

	_, err = NewTokenVerifier(testKey, testIssuer).Verify(token)
	req.ErrorIs(err, ErrMissingSubject)
}

// Tokens carrying an audience still verify: audience checking is disabled
// on purpose, matching the issuing side.
func TestVerify_IgnoresAudience(t *testing.T) {
	req := require.New(t)

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{"some-unrelated-frontend"},
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	req.NoError(err)

	subject, err := NewTokenVerifier(testKey, testIssuer).Verify(token)
	req.NoError(err)
	req.Equal("user-42", subject)
}
