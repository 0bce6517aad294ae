package commands

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/domain/payment"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
)

const (
	VerificationVerified = "verified"
	VerificationFailed   = "failed"
)

// Reasons attached to a failed verification.
const (
	ReasonNotSuccessful    = "not_successful"
	ReasonInvalidReference = "invalid_reference"
	ReasonNotConfirmed     = "not_confirmed"
)

// ProviderStatusSuccessful is the redirect status the provider sends for a
// completed charge.
const ProviderStatusSuccessful = "successful"

type VerifyParams struct {
	Status        string
	Reference     string
	TransactionID string
}

// VerificationOutcome is terminal for the page load. Failed outcomes carry at
// most the transaction reference.
type VerificationOutcome struct {
	State     string
	Reason    string
	Message   string
	Reference booking.Reference
	Receipt   *booking.Receipt
}

func (o *VerificationOutcome) Verified() bool {
	return o.State == VerificationVerified
}

type VerificationCommands interface {
	Verify(ctx context.Context, p VerifyParams) *VerificationOutcome
}

type verificationCommandsImpl struct {
	verifier     PaymentVerifier
	reservations ReservationAPI
	ledger       PaymentLedger
	publisher    EventPublisher
	clock        clock.Clock
	currency     string
	timeout      time.Duration
}

func NewVerificationCommands(
	verifier PaymentVerifier,
	reservations ReservationAPI,
	ledger PaymentLedger,
	publisher EventPublisher,
	clock clock.Clock,
	cfg config.Config,
) VerificationCommands {
	return &verificationCommandsImpl{
		verifier:     verifier,
		reservations: reservations,
		ledger:       ledger,
		publisher:    publisher,
		clock:        clock,
		currency:     cfg.Payment.Currency,
		timeout:      cfg.Upstream.Timeout,
	}
}

func (u *verificationCommandsImpl) Verify(ctx context.Context, p VerifyParams) *VerificationOutcome {
	rawRef := strings.TrimSpace(p.Reference)
	txID := strings.TrimSpace(p.TransactionID)

	// A malformed reference is never echoed back.
	ref, refErr := booking.ParseReference(rawRef)
	if refErr != nil {
		ref = ""
	}

	if !strings.EqualFold(strings.TrimSpace(p.Status), ProviderStatusSuccessful) {
		slog.Info("Payment not successful", "status", p.Status, "reference", ref)
		return failed(ReasonNotSuccessful, "Payment was not successful.", ref)
	}

	if (rawRef == "" && txID == "") || (rawRef != "" && refErr != nil) {
		slog.Warn("Payment redirect without a usable reference", "has_transaction_id", txID != "")
		return failed(ReasonInvalidReference, "Invalid payment reference.", "")
	}

	verification, err := u.verify(ctx, ref, txID)
	if err != nil || !verification.Confirmed {
		if err != nil {
			slog.Warn("Payment verification failed", "reference", ref, "error", err)
		} else {
			slog.Warn("Payment not confirmed by server", "reference", ref, "status", verification.Status)
		}
		if !ref.IsZero() {
			u.markFailed(ctx, ref)
		}
		return failed(ReasonNotConfirmed, notConfirmedMessage(ref), ref)
	}

	if !verification.Reference.IsZero() {
		ref = verification.Reference
	}
	currency := verification.Currency
	if currency == "" {
		currency = u.currency
	}

	receipt := u.receipt(ctx, ref, verification.Amount, currency)
	u.confirm(ctx, ref, verification.TransactionID, receipt)

	return &VerificationOutcome{
		State:     VerificationVerified,
		Message:   "Payment confirmed. Your booking is complete.",
		Reference: ref,
		Receipt:   &receipt,
	}
}

func (u *verificationCommandsImpl) verify(ctx context.Context, ref booking.Reference, txID string) (*payment.Verification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.verifier.Verify(ctx, ref, txID)
}

// receipt prefers the full reservation and falls back to what verification
// returned when the lookup fails.
func (u *verificationCommandsImpl) receipt(ctx context.Context, ref booking.Reference, amount booking.Money, currency string) booking.Receipt {
	if ref.IsZero() {
		return booking.NewMinimalReceipt(ref, amount, currency)
	}

	lookupCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	rec, err := u.reservations.GetByReference(lookupCtx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("Reservation not found after payment, using minimal receipt", "reference", ref)
		} else {
			slog.Warn("Reservation lookup failed after payment, using minimal receipt", "reference", ref, "error", err)
		}
		return booking.NewMinimalReceipt(ref, amount, currency)
	}
	return booking.NewReceipt(ref, *rec, amount, currency)
}

func (u *verificationCommandsImpl) confirm(ctx context.Context, ref booking.Reference, txID string, receipt booking.Receipt) {
	if err := u.ledger.MarkConfirmed(ctx, ref.String(), txID, receipt.Amount.Minor(), receipt.Currency); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("No ledger row for confirmed payment", "reference", ref)
		} else {
			slog.Warn("failed to mark payment confirmed", "reference", ref, "error", err)
		}
	}

	err := u.publisher.Publish(ctx, booking.Event{
		Type:          booking.EventConfirmed,
		Reference:     ref,
		Amount:        receipt.Amount.Major(),
		Currency:      receipt.Currency,
		GuestEmail:    receipt.GuestEmail,
		TransactionID: txID,
		OccurredAt:    u.clock.Now(),
	})
	if err != nil {
		slog.Warn("failed to publish confirmed event", "reference", ref, "error", err)
	}
}

func (u *verificationCommandsImpl) markFailed(ctx context.Context, ref booking.Reference) {
	if err := u.ledger.MarkFailed(ctx, ref.String()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		slog.Warn("failed to mark payment failed", "reference", ref, "error", err)
	}
}

func failed(reason, message string, ref booking.Reference) *VerificationOutcome {
	return &VerificationOutcome{
		State:     VerificationFailed,
		Reason:    reason,
		Message:   message,
		Reference: ref,
	}
}

func notConfirmedMessage(ref booking.Reference) string {
	if ref.IsZero() {
		return "We could not confirm your payment. Please contact support."
	}
	return "We could not confirm your payment. Please contact support with reference " + ref.String() + "."
}
