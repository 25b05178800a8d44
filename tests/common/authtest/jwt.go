//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"turfbook/internal/domain/principal"
	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/jwt"
	"turfbook/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints the tokens the session collaborator would hand out.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role principal.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role principal.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateAndAuthenticate inserts a user row and returns its id with a valid token.
func (h *JWTHelper) CreateAndAuthenticate(t *testing.T, db dbtest.DBLike, email string, role principal.Role, approved bool) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role.String(), approved)
	return id, h.GenerateToken(t, id, role)
}
