package api

import (
	"net/http"

	reqdto "hotel-booking-gateway/internal/handler/dto/request"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/handler/httperr"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q      queries.PaymentAttemptQueries
	ledger commands.LedgerCommands
}

func NewAdminHandler(q queries.PaymentAttemptQueries, ledger commands.LedgerCommands) *AdminHandler {
	return &AdminHandler{q: q, ledger: ledger}
}

// @Summary List payment attempts
// @Description Ledger of handed-off payments, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed, failed or expired"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PaymentAttemptListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/payment-attempts [get]
func (h *AdminHandler) ListPaymentAttempts(c *gin.Context) {
	var q reqdto.PaymentAttemptListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}

	rows, next, err := h.q.List(c.Request.Context(), q.Status, cursor, q.Limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		case errs.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list payment attempts", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentAttemptList(rows, next))
}

// @Summary Get payment attempt
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Transaction reference"
// @Success 200 {object} resdto.PaymentAttemptResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/payment-attempts/{ref} [get]
func (h *AdminHandler) GetPaymentAttempt(c *gin.Context) {
	rm, err := h.q.GetByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		if errs.Is(err, queries.ErrPaymentAttemptNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment attempt not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payment attempt", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentAttemptRM(rm))
}

// @Summary Expire stale pending payments
// @Description Runs the pending-payment sweep now
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /api/admin/payment-attempts/sweep [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	n, err := h.ledger.ExpireStalePending(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Expired: n})
}
