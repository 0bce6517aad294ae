//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type SessionHelper struct {
	cfg     config.SessionConfig
	manager *session.Manager
}

func NewSessionHelper(cfg config.SessionConfig) *SessionHelper {
	return &SessionHelper{cfg: cfg, manager: session.NewManager(cfg)}
}

func (h *SessionHelper) Manager() *session.Manager {
	return h.manager
}

func (h *SessionHelper) CookieName() string {
	return h.cfg.Cookie.Name
}

func (h *SessionHelper) GenerateToken(t *testing.T, userID string, role session.Role) string {
	t.Helper()
	token, err := h.manager.Issue(session.Session{
		UserID:      userID,
		Name:        "Test " + string(role),
		Role:        role,
		MFAVerified: true,
	}, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *SessionHelper) CreateExpiredToken(t *testing.T, userID string, role session.Role) string {
	t.Helper()
	token, err := h.manager.Issue(session.Session{UserID: userID, Role: role}, -time.Minute)
	require.NoError(t, err)
	return token
}

// CreatePendingMFAToken signs a token the auth service issues between the
// password step and the second factor.
func (h *SessionHelper) CreatePendingMFAToken(t *testing.T, userID string, role session.Role) string {
	t.Helper()
	claims := session.Claims{
		UserID:     userID,
		Role:       string(role),
		MFAPending: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
