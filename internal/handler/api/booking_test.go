//go:build unit

package api_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/handler/api"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/handler/middleware"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/pkg/session"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/queries"
	"hotel-booking-gateway/internal/usecase/readmodel"
	"hotel-booking-gateway/tests/common/authtest"
	"hotel-booking-gateway/tests/common/builder"
	"hotel-booking-gateway/tests/common/httptest"
	"hotel-booking-gateway/tests/common/testutil"
	commandsmock "hotel-booking-gateway/tests/mock/commands"
	queriesmock "hotel-booking-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockAttempts *queriesmock.MockAttemptQueries
	sessions     *authtest.SessionHelper
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockAttempts = queriesmock.NewMockAttemptQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockAttempts)

	s.sessions = authtest.NewSessionHelper(config.NewTestConfig().Session)
	sessionMiddleware := middleware.NewSessionMiddleware(s.sessions.Manager())

	s.router.Use(sessionMiddleware.OptionalSession())
	s.router.POST("/api/bookings", s.handler.Submit)
	s.router.GET("/api/bookings/attempts/:key", s.handler.GetAttempt)
}

func (s *BookingHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestDTO()
	key := b.AttemptKey.String()

	s.Run("success: 201 with hand-off and echoed key", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), b.AttemptKey, b.BuildDraft(), gomock.Nil()).
			Return(b.BuildSubmitResult(), nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.HeaderIdempotencyKey: key})

		var body resdto.SubmitBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderIdempotencyKey: key})
		s.Equal(b.Reference.String(), body.Reference)
		s.Equal(readmodel.AttemptDone, body.State)
		s.InDelta(91500.0, body.Amounts.Base, 0.001)
		s.InDelta(1830.0, body.Amounts.Surcharge, 0.001)
		s.InDelta(93330.0, body.Amounts.Total, 0.001)
		s.Require().NotNil(body.Payment)
		s.Equal("flutterwave", body.Payment.Provider)
		s.Equal(b.Reference.String(), body.Payment.Checkout.TxRef)
		s.InDelta(93330.0, body.Payment.Checkout.Amount, 0.001)
	})

	s.Run("success: replayed attempt returns 200", func() {
		result := b.BuildSubmitResult()
		result.IsReplayed = true
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.HeaderIdempotencyKey: key})

		var body resdto.SubmitBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("success: key is derived from the draft when the header is absent", func() {
		var got uuid.UUID
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, k uuid.UUID, _ booking.Draft, _ *session.Session) (*commands.SubmitResult, error) {
				got = k
				return b.BuildSubmitResult(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
		s.Equal(commands.DraftAttemptKey(b.BuildDraft(), nil), got)
		s.Equal(got.String(), rec.Header().Get(api.HeaderIdempotencyKey))
	})

	s.Run("success: concurrent identical drafts without a header share one key", func() {
		const n = 8
		var (
			mu   sync.Mutex
			keys []uuid.UUID
			wg   sync.WaitGroup
		)
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, k uuid.UUID, _ booking.Draft, _ *session.Session) (*commands.SubmitResult, error) {
				mu.Lock()
				keys = append(keys, k)
				mu.Unlock()
				return b.BuildSubmitResult(), nil
			}).Times(n)

		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			}()
		}
		wg.Wait()

		s.Require().Len(keys, n)
		for _, k := range keys {
			s.Equal(keys[0], k)
		}
	})

	s.Run("success: edited draft without a header gets a different key", func() {
		var keys []uuid.UUID
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, k uuid.UUID, _ booking.Draft, _ *session.Session) (*commands.SubmitResult, error) {
				keys = append(keys, k)
				return b.BuildSubmitResult(), nil
			}).Times(2)

		httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		edited := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", 3))
		httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, edited, "")

		s.Require().Len(keys, 2)
		s.NotEqual(keys[0], keys[1])
	})

	s.Run("success: staff session is passed as the actor", func() {
		token := s.sessions.GenerateToken(s.T(), "staff-1", session.RoleReceptionist)
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ booking.Draft, actor *session.Session) (*commands.SubmitResult, error) {
				s.Require().NotNil(actor)
				s.Equal("staff-1", actor.UserID)
				s.True(actor.IsFrontDesk())
				return b.BuildSubmitResult(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on malformed Idempotency-Key", func() {
		for _, bad := range []string{"not-a-uuid", uuid.Nil.String()} {
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
				map[string]string{api.HeaderIdempotencyKey: bad})
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
		}
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []string{"nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 on unparseable dates", func() {
		for _, field := range []string{"check_in", "check_out"} {
			s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, d booking.Draft, _ *session.Session) (*commands.SubmitResult, error) {
					s.True(d.MalformedDates)
					return nil, errs.Mark(d.Validate(), commands.ErrValidation)
				})

			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, "01/03/2025"))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "YYYY-MM-DD")
			s.Contains(rec.Body.String(), `"field":"dates"`)
		}
	})
}

func (s *BookingHandlerTestSuite) TestSubmitFailures() {
	url := "/api/bookings"
	reqBody := builder.NewBookingBuilder().BuildRequestDTO()

	tests := []struct {
		name         string
		err          error
		expectCode   int
		expectInBody string
	}{
		{
			name:         "validation error carries the field",
			err:          errs.Mark(&booking.ValidationError{Field: booking.FieldGuestEmail, Message: "Please enter a valid email address."}, commands.ErrValidation),
			expectCode:   http.StatusUnprocessableEntity,
			expectInBody: `"field":"guest_email"`,
		},
		{
			name:         "room unavailable",
			err:          commands.ErrRoomUnavailable,
			expectCode:   http.StatusConflict,
			expectInBody: "not available for these dates",
		},
		{
			name:         "submission in progress",
			err:          commands.ErrSubmissionInProgress,
			expectCode:   http.StatusConflict,
			expectInBody: "in_progress",
		},
		{
			name:         "availability check failed",
			err:          errs.Mark(infra.WrapRepoErr("availability returned 500", nil, infra.KindUpstreamFailure), commands.ErrAvailabilityCheckFailed),
			expectCode:   http.StatusBadGateway,
			expectInBody: "could not verify availability",
		},
		{
			name:         "reservation create failed",
			err:          errs.Mark(errs.New("timeout"), commands.ErrSubmissionFailed),
			expectCode:   http.StatusBadGateway,
			expectInBody: "could not create your reservation",
		},
		{
			name:         "payment init failed",
			err:          errs.Mark(errs.New("script load timeout"), commands.ErrPaymentInit),
			expectCode:   http.StatusServiceUnavailable,
			expectInBody: "could not start the payment",
		},
		{
			name:         "unexpected error",
			err:          errs.New("boom"),
			expectCode:   http.StatusInternalServerError,
			expectInBody: "Something went wrong",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			s.Contains(rec.Body.String(), tc.expectInBody)
			s.NotEmpty(rec.Header().Get(api.HeaderIdempotencyKey))
		})
	}
}

// ================================================================================
// TestGetAttempt
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAttempt() {
	b := builder.NewBookingBuilder()
	url := "/api/bookings/attempts/" + b.AttemptKey.String()

	s.Run("success: returns the attempt", func() {
		s.mockAttempts.EXPECT().Get(gomock.Any(), b.AttemptKey).
			Return(b.BuildAttemptRM(readmodel.AttemptAwaitingPayment), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AttemptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.AttemptKey, body.Key)
		s.Equal(readmodel.AttemptAwaitingPayment, body.State)
		s.Equal(b.Reference.String(), body.Reference)
		s.InDelta(93330.0, body.Total, 0.001)
	})

	s.Run("error: 404 when unknown", func() {
		s.mockAttempts.EXPECT().Get(gomock.Any(), b.AttemptKey).Return(nil, queries.ErrAttemptNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Attempt not found")
	})

	s.Run("error: 400 on malformed key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/attempts/xyz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid attempt key")
	})
}
