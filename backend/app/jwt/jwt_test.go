package jwtutil

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSigner() *Signer {
	return &Signer{Secret: []byte("test-secret"), Issuer: "board-guard", ExpMin: 5}
}

func TestSignParse(t *testing.T) {
	s := newSigner()
	tok, err := s.Sign(Identity{UserID: 42, Username: "alice", Role: "admin"})
	require.NoError(t, err)

	claims, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "board-guard", claims.Issuer)
	assert.Equal(t, Identity{UserID: 42, Username: "alice", Role: "admin"}, claims.Identity())
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := newSigner().Sign(Identity{UserID: 1, Username: "bob", Role: "user"})
	require.NoError(t, err)

	other := &Signer{Secret: []byte("other"), Issuer: "board-guard", ExpMin: 5}
	_, err = other.Parse(tok)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseExpired(t *testing.T) {
	s := newSigner()
	claims := Claims{
		UserID: 1, Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	require.NoError(t, err)

	_, err = s.Parse(tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseWrongIssuer(t *testing.T) {
	foreign := &Signer{Secret: []byte("test-secret"), Issuer: "someone-else", ExpMin: 5}
	tok, err := foreign.Sign(Identity{UserID: 1, Username: "bob", Role: "user"})
	require.NoError(t, err)

	_, err = newSigner().Parse(tok)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestParseGarbage(t *testing.T) {
	_, err := newSigner().Parse("not-a-token")
	require.Error(t, err)
}

func TestTokensAreUnique(t *testing.T) {
	s := newSigner()
	a, err := s.Sign(Identity{UserID: 3, Username: "carol", Role: "user"})
	require.NoError(t, err)
	b, err := s.Sign(Identity{UserID: 3, Username: "carol", Role: "user"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNoUser(t *testing.T) {
	s := newSigner()
	_, err := s.Sign(Identity{Username: "anon"})
	require.ErrorIs(t, err, ErrNoUser)

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	require.NoError(t, err)
	_, err = s.Parse(tok)
	require.ErrorIs(t, err, ErrNoUser)
}
