//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"turfbook/internal/domain/principal"
	"turfbook/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, principal.RoleVenueAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "venue_admin", claims.Role)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewService("secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), principal.RolePlayer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour)
		token, err := other.GenerateToken(uuid.New(), principal.RolePlayer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: uuid.New(), Role: "player"})
		signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
