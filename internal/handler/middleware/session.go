package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"hotel-booking-gateway/internal/handler/httperr"
	"hotel-booking-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

type SessionMiddleware struct {
	manager *session.Manager
}

func NewSessionMiddleware(manager *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{manager: manager}
}

// OptionalSession attaches the staff session when a valid one is presented.
// Guests without a session, or with a bad one, continue anonymously.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := m.manager.Load(c)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				slog.Debug("ignoring unusable session", "error", err)
			}
			c.Next()
			return
		}
		c.Set(ctxSessionKey, s)
		c.Next()
	}
}

func (m *SessionMiddleware) RequireRole(minRole session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetSession(c)
		if !ok {
			loaded, err := m.manager.Load(c)
			if err != nil {
				slog.Warn("session rejected", "error", err, "path", c.Request.URL.Path)
				httperr.AbortWithError(c, http.StatusUnauthorized, err, sessionErrorMessage(err), nil)
				return
			}
			s = loaded
			c.Set(ctxSessionKey, s)
		}

		if !s.HasRoleAtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, session.ErrInvalidSession, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}

func sessionErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "Session required"
	case errors.Is(err, session.ErrExpiredSession):
		return "Session expired"
	case errors.Is(err, session.ErrSecondFactorRequired):
		return "Second factor required"
	default:
		return "Invalid session"
	}
}
