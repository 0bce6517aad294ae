package api

import (
	"net/http"

	reqdto "hotel-booking-gateway/internal/handler/dto/request"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.VerificationCommands
}

func NewPaymentHandler(cmds commands.VerificationCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment success redirect
// @Description Verifies the provider redirect and returns the receipt or a terminal failure
// @Tags payments
// @Produce json
// @Param status query string false "Provider status"
// @Param tx_ref query string false "Transaction reference"
// @Param transaction_id query string false "Provider transaction id"
// @Success 200 {object} resdto.VerificationResponse
// @Router /booking/success [get]
func (h *PaymentHandler) Success(c *gin.Context) {
	var q reqdto.PaymentRedirectQuery
	// Unbindable input is treated as empty; the verifier reports it.
	_ = c.ShouldBindQuery(&q)

	outcome := h.cmds.Verify(c.Request.Context(), commands.VerifyParams{
		Status:        q.Status,
		Reference:     q.TxRef,
		TransactionID: q.TransactionID,
	})

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resdto.FromVerificationOutcome(outcome))
}
