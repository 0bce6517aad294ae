package api

import (
	"net/http"

	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/handler/httperr"
	"hotel-booking-gateway/internal/handler/middleware"
	"hotel-booking-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	manager *session.Manager
}

func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// @Summary Current session
// @Description Staff session attached to the request, if any
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /api/session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, session.ErrNoSession, "No active session", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Clear session
// @Description Drops the session cookie
// @Tags session
// @Success 204
// @Router /api/session [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	h.manager.Clear(c)
	c.Status(http.StatusNoContent)
}
