package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestDecodeToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"id": "u1", "exp": exp})
		c := DecodeToken(token)
		require.NotNil(t, c)
		assert.Equal(t, "u1", c.UserID)
		assert.Equal(t, exp, c.Exp)
	})

	t.Run("signature is not checked", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"id": "u1", "exp": exp})
		tampered := token[:len(token)-4] + "XXXX"
		require.NotNil(t, DecodeToken(tampered))
	})

	t.Run("missing exp decodes to zero", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"id": "u1"})
		c := DecodeToken(token)
		require.NotNil(t, c)
		assert.Equal(t, int64(0), c.Exp)
	})

	t.Run("malformed inputs yield nil", func(t *testing.T) {
		for _, token := range []string{
			"",
			"not-a-jwt",
			"one.two",
			"a.b.c.d",
			"!!!.###.$$$",
			"eyJhbGciOiJIUzI1NiJ9.not%base64.sig",
		} {
			assert.Nil(t, DecodeToken(token), "token %q", token)
		}
	})
}

func TestIsExpired(t *testing.T) {
	now := int64(1_000_000)

	tests := []struct {
		name string
		c    *Claims
		want bool
	}{
		{name: "nil claims", c: nil, want: true},
		{name: "zero exp", c: &Claims{Exp: 0}, want: true},
		{name: "exp in the past", c: &Claims{Exp: now - 1}, want: true},
		{name: "exp exactly now", c: &Claims{Exp: now}, want: true},
		{name: "exp in the future", c: &Claims{Exp: now + 1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.c, now))
		})
	}
}
