//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const defaultTokenDuration = time.Hour

// JWTHelper signs tokens the way the platform backend issues them to students.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, studentID string) string {
	t.Helper()
	token, err := h.service.GenerateToken(studentID, defaultTokenDuration)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, studentID string) string {
	t.Helper()
	token, err := h.service.GenerateToken(studentID, -time.Minute)
	require.NoError(t, err)
	return token
}
