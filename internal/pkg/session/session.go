// Package session verifies the staff session issued by the hotel auth service.
// The session is an explicit value passed to the flows that need it; nothing
// in the gateway reads a process-wide "current user".
package session

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hotel-booking-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession            = errors.New("no session")
	ErrInvalidSession       = errors.New("invalid session")
	ErrExpiredSession       = errors.New("session expired")
	ErrSecondFactorRequired = errors.New("second factor required")
	ErrSessionNotConfigured = errors.New("session secret not configured")
)

type Role string

const (
	RoleBarman       Role = "barmen"
	RoleReceptionist Role = "receptionist"
	RoleSupervisor   Role = "supervisor"
	RoleSuperadmin   Role = "superadmin"
)

var roleHierarchy = map[Role]int{
	RoleBarman:       1,
	RoleReceptionist: 2,
	RoleSupervisor:   3,
	RoleSuperadmin:   4,
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

type Session struct {
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
	MFAVerified bool      `json:"mfaVerified"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (s *Session) HasRoleAtLeast(minRole Role) bool {
	if s == nil {
		return false
	}
	userLevel, userExists := roleHierarchy[s.Role]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// IsFrontDesk reports whether bookings made in this session are taken at the desk.
func (s *Session) IsFrontDesk() bool {
	return s.HasRoleAtLeast(RoleReceptionist)
}

type Claims struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	MFAPending bool   `json:"mfa_pending,omitempty"`
	MFA        bool   `json:"mfa,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	secretKey []byte
	cookie    config.CookieConfig
}

func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{
		secretKey: []byte(cfg.Secret),
		cookie:    cfg.Cookie,
	}
}

func (m *Manager) Enabled() bool {
	return len(m.secretKey) > 0
}

// Load reads the token from the session cookie, falling back to a bearer header.
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	token, _ := c.Cookie(m.cookie.Name)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	if token == "" {
		return nil, ErrNoSession
	}
	return m.Verify(token)
}

func (m *Manager) Verify(tokenString string) (*Session, error) {
	if !m.Enabled() {
		return nil, ErrSessionNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.MFAPending {
		return nil, ErrSecondFactorRequired
	}

	role := Role(claims.Role)
	if claims.UserID == "" || !role.IsValid() {
		return nil, ErrInvalidSession
	}

	s := &Session{
		UserID:      claims.UserID,
		Name:        claims.Name,
		Role:        role,
		MFAVerified: claims.MFA,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Issue signs a session token. The auth service owns issuance in production;
// the gateway uses this for tests and local tooling.
func (m *Manager) Issue(s Session, ttl time.Duration) (string, error) {
	if !m.Enabled() {
		return "", ErrSessionNotConfigured
	}
	now := time.Now()
	claims := Claims{
		UserID: s.UserID,
		Name:   s.Name,
		Role:   string(s.Role),
		MFA:    s.MFAVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(getSameSite(m.cookie.SameSite))
	c.SetCookie(
		m.cookie.Name,
		"",
		-1,
		"/",
		m.cookie.Domain,
		m.cookie.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
