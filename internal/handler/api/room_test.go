//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/handler/api"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/usecase/queries"
	"hotel-booking-gateway/tests/common/httptest"
	queriesmock "hotel-booking-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries)

	s.router.GET("/api/rooms", s.handler.List)
	s.router.GET("/api/rooms/quote", s.handler.Quote)
}

func (s *RoomHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

var (
	stayIn  = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stayOut = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	deluxe  = booking.RoomOption{ID: "deluxe", Name: "Deluxe", NightlyRate: booking.MoneyFromMajor(30500)}
)

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: rooms for a stay", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), stayIn, stayOut).
			Return([]booking.RoomOption{deluxe, {ID: "std", Name: "Standard", NightlyRate: booking.MoneyFromMajor(20000)}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms?check_in=2025-03-01&check_out=2025-03-04", nil, "")

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("deluxe", body[0].ID)
		s.InDelta(30500.0, body[0].NightlyRate, 0.001)
	})

	s.Run("success: no stay window", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), time.Time{}, time.Time{}).Return([]booking.RoomOption{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms?check_in=March", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 on reversed stay", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidStay)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms?check_in=2025-03-04&check_out=2025-03-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out date must be after check-in date.")
	})

	s.Run("error: 502 when the catalog is down", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("dial tcp: refused"), queries.ErrCatalogUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Rooms are unavailable")
	})
}

func (s *RoomHandlerTestSuite) TestQuote() {
	url := "/api/rooms/quote?room_id=deluxe&check_in=2025-03-01&check_out=2025-03-04"

	s.Run("success: quote with surcharge", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), "deluxe", stayIn, stayOut).Return(&queries.QuoteView{
			Room:     deluxe,
			CheckIn:  stayIn,
			CheckOut: stayOut,
			Quote:    booking.CalculateQuote(deluxe.NightlyRate, 3),
			Currency: "NGN",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Nights)
		s.InDelta(91500.0, body.Base, 0.001)
		s.InDelta(1830.0, body.Surcharge, 0.001)
		s.InDelta(93330.0, body.Total, 0.001)
		s.Equal("deluxe", body.Room.ID)
		s.Equal("2025-03-01", body.CheckIn)
	})

	s.Run("error: 400 without room_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/quote?check_in=2025-03-01&check_out=2025-03-04", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "room_id is required")
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
