package api

import (
	"net/http"
	"strings"

	"hotel-booking-gateway/internal/domain/booking"
	reqdto "hotel-booking-gateway/internal/handler/dto/request"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/handler/httperr"
	"hotel-booking-gateway/internal/handler/middleware"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderIdempotencyKey = "Idempotency-Key"

var ErrInvalidIdempotencyKey = errs.New("invalid idempotency key format")

type BookingHandler struct {
	cmds     commands.BookingCommands
	attempts queries.AttemptQueries
}

func NewBookingHandler(cmds commands.BookingCommands, attempts queries.AttemptQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, attempts: attempts}
}

// @Summary Submit booking
// @Description Validate the draft, check availability, create the pending reservation and return the payment hand-off
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Submission attempt key; derived from the draft when absent and echoed back"
// @Param request body reqdto.SubmitBookingRequest true "Booking draft"
// @Success 201 {object} resdto.SubmitBookingResponse
// @Success 200 {object} resdto.SubmitBookingResponse "Replay of a finished attempt"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	key, err := attemptKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	draft := req.ToDraft()
	actor, _ := middleware.GetSession(c)
	if key == uuid.Nil {
		key = commands.DraftAttemptKey(draft, actor)
	}
	c.Header(HeaderIdempotencyKey, key.String())

	result, err := h.cmds.Submit(c.Request.Context(), key, draft, actor)
	if err != nil {
		status, detail := submitFailure(err)
		httperr.AbortWithError(c, status, err, commands.FailureMessage(err), detail)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromSubmitResult(result))
}

// @Summary Get submission attempt
// @Description Current state of a submission attempt
// @Tags bookings
// @Produce json
// @Param key path string true "Attempt key"
// @Success 200 {object} resdto.AttemptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/attempts/{key} [get]
func (h *BookingHandler) GetAttempt(c *gin.Context) {
	key, err := uuid.Parse(c.Param("key"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid attempt key", nil)
		return
	}

	rm, err := h.attempts.Get(c.Request.Context(), key)
	if err != nil {
		if errs.Is(err, queries.ErrAttemptNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Attempt not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load attempt", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptRM(rm))
}

// attemptKey returns uuid.Nil when the header is absent.
func attemptKey(c *gin.Context) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
	if raw == "" {
		return uuid.Nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil || key == uuid.Nil {
		return uuid.Nil, ErrInvalidIdempotencyKey
	}
	return key, nil
}

func submitFailure(err error) (int, any) {
	var vErr *booking.ValidationError
	switch {
	case errs.As(err, &vErr):
		return http.StatusUnprocessableEntity, gin.H{"field": vErr.Field}
	case errs.Is(err, commands.ErrValidation):
		return http.StatusUnprocessableEntity, nil
	case errs.Is(err, commands.ErrRoomUnavailable):
		return http.StatusConflict, gin.H{"kind": "availability"}
	case errs.Is(err, commands.ErrSubmissionInProgress):
		return http.StatusConflict, gin.H{"kind": "in_progress"}
	case errs.Is(err, commands.ErrAvailabilityCheckFailed):
		return http.StatusBadGateway, gin.H{"kind": "availability", "retryable": true}
	case errs.Is(err, commands.ErrSubmissionFailed):
		return http.StatusBadGateway, gin.H{"kind": "submission", "retryable": true}
	case errs.Is(err, commands.ErrPaymentInit):
		return http.StatusServiceUnavailable, gin.H{"kind": "payment_init", "retryable": true}
	default:
		return http.StatusInternalServerError, nil
	}
}
