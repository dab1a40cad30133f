//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"kost-booking/internal/domain/user"
	"kost-booking/internal/pkg/config"
	"kost-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens the way the external auth service would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, identity user.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(identity, 15*time.Minute)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity user.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(identity, -time.Minute)
	require.NoError(t, err)
	return token
}
