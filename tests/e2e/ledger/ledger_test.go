//go:build e2e

package ledger_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"hotel-booking-gateway/internal/handler/api"
	resdto "hotel-booking-gateway/internal/handler/dto/response"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/infra/readstore"
	"hotel-booking-gateway/internal/infra/repository"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/session"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/readmodel"
	"hotel-booking-gateway/tests/common/authtest"
	"hotel-booking-gateway/tests/common/builder"
	"hotel-booking-gateway/tests/common/dbtest"
	"hotel-booking-gateway/tests/common/httptest"
	"hotel-booking-gateway/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	successURL  = "/booking/success"
	attemptsURL = "/api/admin/payment-attempts"
)

type ledgerSuite struct {
	e2e.SharedSuite
	sessions *authtest.SessionHelper
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.sessions = authtest.NewSessionHelper(s.Config.Session)
}

func (s *ledgerSuite) supervisorToken() string {
	return s.sessions.GenerateToken(s.T(), "sup-1", session.RoleSupervisor)
}

func (s *ledgerSuite) submit(key uuid.UUID) resdto.SubmitBookingResponse {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL,
		builder.NewBookingBuilder().BuildRequestDTO(),
		map[string]string{api.HeaderIdempotencyKey: key.String()})

	var body resdto.SubmitBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

func successQuery(status, ref, txID string) string {
	q := url.Values{}
	q.Set("status", status)
	q.Set("tx_ref", ref)
	q.Set("transaction_id", txID)
	return successURL + "?" + q.Encode()
}

// ================================================================================
// Booking to payment
// ================================================================================

func (s *ledgerSuite) TestBookingLifecycle() {
	s.Run("submission records a pending ledger row", func() {
		body := s.submit(uuid.New())

		s.Equal(readmodel.AttemptDone, body.State)
		s.InDelta(93330.0, body.Amounts.Total, 0.001)
		s.Require().NotNil(body.Payment)
		s.Equal(body.Reference, body.Payment.Checkout.TxRef)
		s.Equal(readmodel.PaymentAttemptPending, dbtest.PaymentAttemptStatus(s.T(), s.DB, body.Reference))
	})

	s.Run("replaying the key does not create a second reservation", func() {
		key := uuid.New()
		first := s.submit(key)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL,
			builder.NewBookingBuilder().BuildRequestDTO(),
			map[string]string{api.HeaderIdempotencyKey: key.String()})

		var replay resdto.SubmitBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replay)
		s.True(replay.Replayed)
		s.Equal(first.Reference, replay.Reference)
		s.Equal(1, s.Hotel.Creates())
		s.Equal(1, dbtest.CountPaymentAttempts(s.T(), s.DB))
	})

	s.Run("unavailable room creates nothing", func() {
		s.Hotel.SetAvailable("deluxe", false)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			builder.NewBookingBuilder().BuildRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available for these dates")
		s.Zero(s.Hotel.Creates())
		s.Zero(dbtest.CountPaymentAttempts(s.T(), s.DB))
	})

	s.Run("verified redirect confirms the row", func() {
		body := s.submit(uuid.New())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			successQuery("successful", body.Reference, "tx-777"), nil, "")

		var outcome resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &outcome)
		s.Equal(commands.VerificationVerified, outcome.State)
		s.Require().NotNil(outcome.Receipt)
		s.Equal("Deluxe Room", outcome.Receipt.RoomName)
		s.InDelta(93330.0, outcome.Receipt.Amount, 0.001)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			attemptsURL+"/"+body.Reference, nil, s.supervisorToken())

		var row resdto.PaymentAttemptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &row)
		s.Equal(readmodel.PaymentAttemptConfirmed, row.Status)
		s.Require().NotNil(row.TransactionID)
		s.Equal("tx-777", *row.TransactionID)
		s.Equal(int64(9333000), row.AmountMinor)
		s.NotNil(row.VerifiedAt)
	})

	s.Run("declined verification marks the row failed", func() {
		body := s.submit(uuid.New())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			successQuery("successful", body.Reference, e2e.DeclinedTransactionID), nil, "")

		var outcome resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &outcome)
		s.Equal(commands.VerificationFailed, outcome.State)
		s.Equal(commands.ReasonNotConfirmed, outcome.Reason)
		s.Equal(readmodel.PaymentAttemptFailed, dbtest.PaymentAttemptStatus(s.T(), s.DB, body.Reference))
	})

	s.Run("cancelled redirect leaves the row pending", func() {
		body := s.submit(uuid.New())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			successQuery("cancelled", body.Reference, ""), nil, "")

		var outcome resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &outcome)
		s.Equal(commands.ReasonNotSuccessful, outcome.Reason)
		s.Equal(readmodel.PaymentAttemptPending, dbtest.PaymentAttemptStatus(s.T(), s.DB, body.Reference))
	})
}

// ================================================================================
// Staff ledger endpoints
// ================================================================================

func (s *ledgerSuite) TestAdminEndpoints() {
	base := time.Now().UTC().Truncate(time.Microsecond)

	seed := func() {
		for i, ref := range []string{"HTL-a-1", "HTL-a-2", "HTL-a-3"} {
			dbtest.InsertPaymentAttempt(s.T(), s.DB, readmodel.PaymentAttemptRM{
				Reference:   ref,
				AmountMinor: 9333000,
				CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			})
		}
		dbtest.InsertPaymentAttempt(s.T(), s.DB, readmodel.PaymentAttemptRM{
			Reference:   "HTL-old-1",
			AmountMinor: 100,
			CreatedAt:   base.Add(-2 * time.Hour),
		})
	}

	s.Run("pages newest first with a cursor", func() {
		seed()
		token := s.supervisorToken()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, attemptsURL+"?limit=2", nil, token)
		var page resdto.PaymentAttemptListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Items, 2)
		s.Equal("HTL-a-3", page.Items[0].Reference)
		s.Equal("HTL-a-2", page.Items[1].Reference)
		s.Require().NotNil(page.Next)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			attemptsURL+"?limit=2&after="+url.QueryEscape(page.Next.After), nil, token)
		var next resdto.PaymentAttemptListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &next)
		s.Require().Len(next.Items, 2)
		s.Equal("HTL-a-1", next.Items[0].Reference)
		s.Equal("HTL-old-1", next.Items[1].Reference)
	})

	s.Run("sweep expires stale pending rows only", func() {
		seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, attemptsURL+"/sweep", nil, s.supervisorToken())
		var out resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
		s.Equal(1, out.Expired)
		s.Equal(readmodel.PaymentAttemptExpired, dbtest.PaymentAttemptStatus(s.T(), s.DB, "HTL-old-1"))
		s.Equal(readmodel.PaymentAttemptPending, dbtest.PaymentAttemptStatus(s.T(), s.DB, "HTL-a-1"))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			attemptsURL+"?status=expired", nil, s.supervisorToken())
		var page resdto.PaymentAttemptListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal("HTL-old-1", page.Items[0].Reference)
	})

	s.Run("front desk staff below supervisor are refused", func() {
		token := s.sessions.GenerateToken(s.T(), "desk-1", session.RoleReceptionist)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, attemptsURL, nil, token)
		s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	})

	s.Run("guests are refused", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, attemptsURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code, rec.Body.String())
	})
}

// ================================================================================
// Stores against PostgreSQL
// ================================================================================

func (s *ledgerSuite) TestPaymentAttemptRepository() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	repo := repository.NewPaymentAttemptRepository(s.DB, clk)
	store := readstore.NewPaymentAttemptReadStore(s.DB)
	ctx := s.T().Context()

	pending := func(ref string) readmodel.PaymentAttemptRM {
		return readmodel.PaymentAttemptRM{
			Reference:   ref,
			AttemptKey:  uuid.New(),
			GuestEmail:  "jane@x.com",
			RoomID:      "deluxe",
			AmountMinor: 9333000,
			Currency:    "NGN",
			Source:      "web",
		}
	}

	s.Run("record pending is idempotent and refreshes the amount", func() {
		rm := pending("HTL-r-1")
		s.Require().NoError(repo.RecordPending(ctx, rm))

		rm.AmountMinor = 9000000
		rm.ReservationID = "bk-1"
		s.Require().NoError(repo.RecordPending(ctx, rm))

		got, err := store.FindByReference(ctx, "HTL-r-1")
		s.Require().NoError(err)
		s.Equal(int64(9000000), got.AmountMinor)
		s.Equal("bk-1", got.ReservationID)
		s.Equal(readmodel.PaymentAttemptPending, got.Status)
		s.True(got.CreatedAt.Equal(now))
	})

	s.Run("confirmed rows are not reopened by a late retry", func() {
		rm := pending("HTL-r-2")
		s.Require().NoError(repo.RecordPending(ctx, rm))
		s.Require().NoError(repo.MarkConfirmed(ctx, "HTL-r-2", "tx-1", 0, ""))

		rm.AmountMinor = 1
		s.Require().NoError(repo.RecordPending(ctx, rm))

		got, err := store.FindByReference(ctx, "HTL-r-2")
		s.Require().NoError(err)
		s.Equal(readmodel.PaymentAttemptConfirmed, got.Status)
		s.Equal(int64(9333000), got.AmountMinor)
		s.Require().NotNil(got.TransactionID)
		s.Equal("tx-1", *got.TransactionID)
	})

	s.Run("mark failed only moves pending rows", func() {
		s.Require().NoError(repo.RecordPending(ctx, pending("HTL-r-3")))
		s.Require().NoError(repo.MarkFailed(ctx, "HTL-r-3"))

		err := repo.MarkFailed(ctx, "HTL-r-3")
		s.True(infra.IsKind(err, infra.KindNotFound))

		err = repo.MarkConfirmed(ctx, "HTL-missing", "tx", 0, "")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("expired rows can still be confirmed", func() {
		s.Require().NoError(repo.RecordPending(ctx, pending("HTL-r-4")))
		clk.Add(time.Hour)

		expired, err := repo.ExpireStalePending(ctx, clk.Now().Add(-30*time.Minute))
		s.Require().NoError(err)
		s.Require().Len(expired, 1)
		s.Equal("HTL-r-4", expired[0].Reference)
		s.Equal(readmodel.PaymentAttemptExpired, expired[0].Status)

		s.Require().NoError(repo.MarkConfirmed(ctx, "HTL-r-4", "tx-4", 9333000, "NGN"))
		s.Equal(readmodel.PaymentAttemptConfirmed, dbtest.PaymentAttemptStatus(s.T(), s.DB, "HTL-r-4"))
	})

	s.Run("confirmed amount beyond int4 range is stored", func() {
		s.Require().NoError(repo.RecordPending(ctx, pending("HTL-r-5")))
		s.Require().NoError(repo.MarkConfirmed(ctx, "HTL-r-5", "tx-5", 3_000_000_000, "NGN"))

		got, err := store.FindByReference(ctx, "HTL-r-5")
		s.Require().NoError(err)
		s.Equal(int64(3_000_000_000), got.AmountMinor)
		s.Equal(readmodel.PaymentAttemptConfirmed, got.Status)
	})

	s.Run("keyset paging filters by status", func() {
		for i, ref := range []string{"HTL-k-1", "HTL-k-2", "HTL-k-3"} {
			dbtest.InsertPaymentAttempt(s.T(), s.DB, readmodel.PaymentAttemptRM{
				Reference: ref,
				CreatedAt: now.Add(time.Duration(i) * time.Second),
			})
		}
		dbtest.InsertPaymentAttempt(s.T(), s.DB, readmodel.PaymentAttemptRM{
			Reference: "HTL-k-f",
			Status:    readmodel.PaymentAttemptFailed,
			CreatedAt: now.Add(10 * time.Second),
		})

		first, err := store.ListFirstPage(ctx, readmodel.PaymentAttemptPending, 2)
		s.Require().NoError(err)
		s.Require().Len(first, 2)
		s.Equal("HTL-k-3", first[0].Reference)

		last := first[len(first)-1]
		rest, err := store.ListKeyset(ctx, readmodel.PaymentAttemptPending, last.CreatedAt, last.Reference, 2)
		s.Require().NoError(err)
		s.Require().Len(rest, 1)
		s.Equal("HTL-k-1", rest[0].Reference)

		all, err := store.ListFirstPage(ctx, "", 10)
		s.Require().NoError(err)
		s.Len(all, 4)
		s.Equal("HTL-k-f", all[0].Reference)
	})

	s.Run("unknown reference is not found", func() {
		_, err := store.FindByReference(ctx, "HTL-none")
		require.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}
