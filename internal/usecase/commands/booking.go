package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/domain/payment"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/pkg/session"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrValidation              = errs.New("booking draft is invalid")
	ErrRoomUnavailable         = errs.New("selected room is not available")
	ErrAvailabilityCheckFailed = errs.New("could not verify availability")
	ErrSubmissionFailed        = errs.New("could not create reservation")
	ErrPaymentInit             = errs.New("could not start payment")
	ErrSubmissionInProgress    = errs.New("submission already in progress")

	ErrMissingServerTotal = errs.New("reservation API returned no amount to charge")
)

// FailureMessage is the guest-facing text for a Submit error.
func FailureMessage(err error) string {
	var vErr *booking.ValidationError
	switch {
	case errs.As(err, &vErr):
		return vErr.Message
	case errs.Is(err, ErrRoomUnavailable):
		return "The selected room is not available for these dates."
	case errs.Is(err, ErrAvailabilityCheckFailed):
		return "We could not verify availability. Please try again."
	case errs.Is(err, ErrSubmissionInProgress):
		return "This booking is already being submitted."
	case errs.Is(err, ErrSubmissionFailed):
		return "We could not create your reservation. Please try again."
	case errs.Is(err, ErrPaymentInit):
		return "We could not start the payment. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

type SubmitResult struct {
	AttemptKey     uuid.UUID
	Reference      booking.Reference
	ReservationID  string
	State          string
	Base           booking.Money
	Surcharge      booking.Money
	Total          booking.Money
	Currency       string
	AmountAdjusted bool
	IsReplayed     bool
	Handoff        *payment.Handoff
}

type BookingCommands interface {
	Submit(ctx context.Context, attemptKey uuid.UUID, draft booking.Draft, actor *session.Session) (*SubmitResult, error)
}

type bookingCommandsImpl struct {
	oracle       AvailabilityOracle
	reservations ReservationAPI
	bridge       PaymentBridge
	attempts     AttemptStore
	ledger       PaymentLedger
	publisher    EventPublisher
	clock        clock.Clock
	currency     string
	timeout      time.Duration
}

func NewBookingCommands(
	oracle AvailabilityOracle,
	reservations ReservationAPI,
	bridge PaymentBridge,
	attempts AttemptStore,
	ledger PaymentLedger,
	publisher EventPublisher,
	clock clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		oracle:       oracle,
		reservations: reservations,
		bridge:       bridge,
		attempts:     attempts,
		ledger:       ledger,
		publisher:    publisher,
		clock:        clock,
		currency:     cfg.Payment.Currency,
		timeout:      cfg.Upstream.Timeout,
	}
}

// Submit runs one submission attempt: validate, check availability, create
// the pending reservation and hand off to the payment provider. It returns
// once the hand-off payload is ready and never waits for the payment itself.
//
// The attempt key ties retries together. A retry of the same draft reuses the
// reference, and once the reservation exists it only repeats the hand-off.
func (u *bookingCommandsImpl) Submit(
	ctx context.Context,
	attemptKey uuid.UUID,
	draft booking.Draft,
	actor *session.Session,
) (*SubmitResult, error) {
	if vErr := draft.Validate(); vErr != nil {
		slog.Info("Booking draft rejected", "attempt", attemptKey, "field", vErr.Field)
		return nil, errs.Mark(vErr, ErrValidation)
	}

	release, err := u.attempts.Acquire(ctx, attemptKey)
	if err != nil {
		if infra.IsKind(err, infra.KindLocked) {
			return nil, ErrSubmissionInProgress
		}
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}
	defer release()

	source := sourceOf(actor)

	att, err := u.loadAttempt(ctx, attemptKey, draftHash(draft, source))
	if err != nil {
		return nil, err
	}
	replayed := att.State == readmodel.AttemptDone

	if !att.Created {
		if err := u.createReservation(ctx, att, draft, source); err != nil {
			return nil, err
		}
	}

	return u.handOff(ctx, att, draft, source, replayed)
}

func (u *bookingCommandsImpl) loadAttempt(ctx context.Context, key uuid.UUID, hash string) (*readmodel.AttemptRM, error) {
	now := u.clock.Now()
	fresh := &readmodel.AttemptRM{
		Key:       key,
		DraftHash: hash,
		State:     readmodel.AttemptIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := u.attempts.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return fresh, nil
		}
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}

	if existing.DraftHash != hash {
		slog.Info("Draft changed since last attempt, starting over", "attempt", key, "previous_reference", existing.Reference)
		return fresh, nil
	}
	return existing, nil
}

func (u *bookingCommandsImpl) createReservation(
	ctx context.Context,
	att *readmodel.AttemptRM,
	draft booking.Draft,
	source booking.Source,
) error {
	u.transition(ctx, att, readmodel.AttemptValidating)
	u.transition(ctx, att, readmodel.AttemptCheckingAvailability)

	available, err := u.checkAvailability(ctx, draft)
	if err != nil {
		return u.fail(ctx, att, err, ErrAvailabilityCheckFailed)
	}
	if !available {
		return u.fail(ctx, att, nil, ErrRoomUnavailable)
	}

	if att.Reference == "" {
		att.Reference = booking.MakeReference().String()
	}
	// The reference must be stored before the create call so a retry reuses it.
	att.State = readmodel.AttemptSubmitting
	if err := u.save(ctx, att); err != nil {
		return u.fail(ctx, att, err, ErrSubmissionFailed)
	}

	created, err := u.createPending(ctx, booking.NewPendingReservation(booking.Reference(att.Reference), draft, source))
	if err != nil {
		return u.fail(ctx, att, err, ErrSubmissionFailed)
	}

	total := created.ChargeAmount()
	if !total.IsPositive() {
		return u.fail(ctx, att, ErrMissingServerTotal, ErrSubmissionFailed)
	}

	att.Created = true
	att.ReservationID = created.ID
	att.BaseMinor = created.Base.Minor()
	att.SurchargeMinor = created.Surcharge.Minor()
	att.TotalMinor = total.Minor()
	att.Currency = u.currency
	if !created.Reference.IsZero() && created.Reference.String() != att.Reference {
		slog.Warn("Reservation API returned a different reference",
			"sent", att.Reference, "received", created.Reference)
	}
	if err := u.save(ctx, att); err != nil {
		slog.Error("Reservation created but attempt not stored", "attempt", att.Key, "reference", att.Reference, "error", err)
		return errs.Mark(err, ErrSubmissionFailed)
	}

	u.recordPending(ctx, att, draft, source)
	return nil
}

func (u *bookingCommandsImpl) checkAvailability(ctx context.Context, draft booking.Draft) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.oracle.CheckAvailability(ctx, strings.TrimSpace(draft.RoomID), draft.CheckIn, draft.CheckOut)
}

func (u *bookingCommandsImpl) createPending(ctx context.Context, p booking.PendingReservation) (*booking.CreatedReservation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.reservations.CreatePending(ctx, p)
}

func (u *bookingCommandsImpl) handOff(
	ctx context.Context,
	att *readmodel.AttemptRM,
	draft booking.Draft,
	source booking.Source,
	replayed bool,
) (*SubmitResult, error) {
	u.transition(ctx, att, readmodel.AttemptAwaitingPayment)

	total := booking.NewMoney(att.TotalMinor)
	adjusted := draft.QuotedTotal != nil && draft.QuotedTotal.Minor() != total.Minor()
	if adjusted {
		slog.Warn("Quoted total differs from server total, charging server amount",
			"reference", att.Reference, "quoted", draft.QuotedTotal.String(), "charged", total.String())
	}

	handoff, err := u.bridge.Open(ctx, payment.Charge{
		Reference: booking.Reference(att.Reference),
		Amount:    total,
		Currency:  att.Currency,
		Customer: payment.Customer{
			Email:       strings.TrimSpace(draft.GuestEmail),
			PhoneNumber: strings.TrimSpace(draft.GuestPhone),
			Name:        strings.TrimSpace(draft.GuestName),
		},
	})
	if err != nil {
		return nil, u.fail(ctx, att, err, ErrPaymentInit)
	}

	u.transition(ctx, att, readmodel.AttemptDone)
	slog.Info("Payment handed off", "reference", att.Reference, "amount", total.String(),
		"currency", att.Currency, "source", source, "replayed", replayed)

	return &SubmitResult{
		AttemptKey:     att.Key,
		Reference:      booking.Reference(att.Reference),
		ReservationID:  att.ReservationID,
		State:          att.State,
		Base:           booking.NewMoney(att.BaseMinor),
		Surcharge:      booking.NewMoney(att.SurchargeMinor),
		Total:          total,
		Currency:       att.Currency,
		AmountAdjusted: adjusted,
		IsReplayed:     replayed,
		Handoff:        handoff,
	}, nil
}

// recordPending mirrors the new reservation into the ledger and announces it.
// Neither failure affects the booking.
func (u *bookingCommandsImpl) recordPending(ctx context.Context, att *readmodel.AttemptRM, draft booking.Draft, source booking.Source) {
	err := u.ledger.RecordPending(ctx, readmodel.PaymentAttemptRM{
		Reference:     att.Reference,
		AttemptKey:    att.Key,
		ReservationID: att.ReservationID,
		GuestEmail:    strings.TrimSpace(draft.GuestEmail),
		RoomID:        strings.TrimSpace(draft.RoomID),
		AmountMinor:   att.TotalMinor,
		Currency:      att.Currency,
		Source:        string(source),
		Status:        readmodel.PaymentAttemptPending,
	})
	if err != nil {
		slog.Warn("failed to record pending payment", "reference", att.Reference, "error", err)
	}

	err = u.publisher.Publish(ctx, booking.Event{
		Type:          booking.EventPending,
		Reference:     booking.Reference(att.Reference),
		ReservationID: att.ReservationID,
		Amount:        booking.NewMoney(att.TotalMinor).Major(),
		Currency:      att.Currency,
		GuestEmail:    strings.TrimSpace(draft.GuestEmail),
		Source:        source,
		OccurredAt:    u.clock.Now(),
	})
	if err != nil {
		slog.Warn("failed to publish pending event", "reference", att.Reference, "error", err)
	}
}

func (u *bookingCommandsImpl) transition(ctx context.Context, att *readmodel.AttemptRM, state string) {
	slog.Debug("Submission state changed", "attempt", att.Key, "from", att.State, "to", state)
	att.State = state
	if state != readmodel.AttemptIdle {
		att.LastError = ""
	}
	if err := u.save(ctx, att); err != nil {
		slog.Warn("failed to save submission attempt", "attempt", att.Key, "state", state, "error", err)
	}
}

// fail returns the attempt to idle and reports the failure marked with
// sentinel so callers can match it with errs.Is.
func (u *bookingCommandsImpl) fail(ctx context.Context, att *readmodel.AttemptRM, cause, sentinel error) error {
	err := sentinel
	if cause != nil {
		err = errs.Mark(cause, sentinel)
	}

	slog.Warn("Submission failed", "attempt", att.Key, "state", att.State, "reference", att.Reference, "error", err)
	att.State = readmodel.AttemptIdle
	att.LastError = FailureMessage(err)
	if saveErr := u.save(ctx, att); saveErr != nil {
		slog.Warn("failed to save failed attempt", "attempt", att.Key, "error", saveErr)
	}
	return err
}

func (u *bookingCommandsImpl) save(ctx context.Context, att *readmodel.AttemptRM) error {
	att.UpdatedAt = u.clock.Now()
	return u.attempts.Save(ctx, att)
}

// withTimeout bounds one upstream call. A zero timeout leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// attemptKeySpace namespaces attempt keys derived from drafts.
var attemptKeySpace = uuid.MustParse("6f1c2e4a-9b3d-5e8f-a7c1-0d2b4f6e8a90")

// DraftAttemptKey derives the attempt key for a submission sent without one.
// Identical drafts from the same kind of actor map to the same key, so they
// share one attempt and its lock.
func DraftAttemptKey(d booking.Draft, actor *session.Session) uuid.UUID {
	return uuid.NewSHA1(attemptKeySpace, []byte(draftHash(d, sourceOf(actor))))
}

func sourceOf(actor *session.Session) booking.Source {
	if actor.IsFrontDesk() {
		return booking.SourceFrontDesk
	}
	return booking.SourceWeb
}

// draftHash identifies the guest-visible booking so an edited draft starts a
// new attempt. The displayed quote is not part of it.
func draftHash(d booking.Draft, source booking.Source) string {
	data, _ := json.Marshal(struct {
		Name     string
		Email    string
		Phone    string
		RoomID   string
		CheckIn  string
		CheckOut string
		Guests   int
		Source   booking.Source
	}{
		Name:     strings.TrimSpace(d.GuestName),
		Email:    strings.ToLower(strings.TrimSpace(d.GuestEmail)),
		Phone:    strings.TrimSpace(d.GuestPhone),
		RoomID:   strings.TrimSpace(d.RoomID),
		CheckIn:  booking.FormatDate(d.CheckIn),
		CheckOut: booking.FormatDate(d.CheckOut),
		Guests:   d.NormalizedGuests(),
		Source:   source,
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
