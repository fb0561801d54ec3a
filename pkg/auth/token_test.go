package auth_test

import (
	"testing"
	"time"

	"go-swipe-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims auth.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestVerifier(t *testing.T) {
	v := auth.NewVerifier("top-secret")
	valid := auth.Claims{
		UserID:   "7a1e0d1c-2a43-4a57-9d8e-0f1d7f5b1a01",
		Email:    "ana@example.com",
		UserType: "CANDIDATE",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("accepts a valid token", func(t *testing.T) {
		claims, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte("top-secret"), valid))
		require.NoError(t, err)
		assert.Equal(t, valid.UserID, claims.UserID)
		assert.Equal(t, "CANDIDATE", claims.UserType)
	})

	t.Run("rejects a wrong secret", func(t *testing.T) {
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte("other"), valid))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte("top-secret"), expired))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects a token without subject", func(t *testing.T) {
		anon := valid
		anon.UserID = ""
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte("top-secret"), anon))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects when no secret configured", func(t *testing.T) {
		_, err := auth.NewVerifier("").Verify("whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
