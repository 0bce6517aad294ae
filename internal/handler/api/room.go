package api

import (
	"net/http"

	reqdto "hotel-booking-gateway/internal/handler/dto/request"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/handler/httperr"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary List rooms
// @Description Bookable room categories, optionally for a stay window
// @Tags rooms
// @Produce json
// @Param check_in query string false "YYYY-MM-DD"
// @Param check_out query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	checkIn, checkOut, err := q.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	rooms, err := h.q.ListRooms(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomOptions(rooms))
}

// @Summary Quote a stay
// @Description Advisory price for a room and stay; the reservation API sets the charged amount
// @Tags rooms
// @Produce json
// @Param room_id query string true "Room category id"
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/rooms/quote [get]
func (h *RoomHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "room_id is required", nil)
		return
	}
	checkIn, checkOut, err := q.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), q.RoomID, checkIn, checkOut)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *RoomHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrInvalidStay):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date.", nil)
	case errs.Is(err, queries.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, queries.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Rooms are unavailable right now. Please try again.", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
