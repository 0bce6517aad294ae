package response

import (
	"hotel-booking-gateway/internal/pkg/session"
)

type SessionResponse struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	FrontDesk   bool   `json:"front_desk"`
	MFAVerified bool   `json:"mfa_verified"`
	ExpiresAt   int64  `json:"expires_at,omitempty"`
}

func FromSession(s *session.Session) *SessionResponse {
	res := &SessionResponse{
		UserID:      s.UserID,
		Name:        s.Name,
		Role:        string(s.Role),
		FrontDesk:   s.IsFrontDesk(),
		MFAVerified: s.MFAVerified,
	}
	if !s.ExpiresAt.IsZero() {
		res.ExpiresAt = s.ExpiresAt.Unix()
	}
	return res
}
