package commands

//go:generate mockgen -source=sweeper.go -destination=../../../tests/mock/commands/sweeper.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
)

// LedgerCommands reconciles payments the guest never finished. Reservations
// stay pending server-side; expiry only flags them for staff follow-up.
type LedgerCommands interface {
	ExpireStalePending(ctx context.Context) (int, error)
}

type ledgerCommandsImpl struct {
	ledger     PaymentLedger
	publisher  EventPublisher
	clock      clock.Clock
	pendingTTL time.Duration
}

func NewLedgerCommands(ledger PaymentLedger, publisher EventPublisher, clock clock.Clock, cfg config.Config) LedgerCommands {
	return &ledgerCommandsImpl{
		ledger:     ledger,
		publisher:  publisher,
		clock:      clock,
		pendingTTL: cfg.Ledger.PendingTTL,
	}
}

func (u *ledgerCommandsImpl) ExpireStalePending(ctx context.Context) (int, error) {
	cutoff := u.clock.Now().Add(-u.pendingTTL)
	expired, err := u.ledger.ExpireStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, rm := range expired {
		err := u.publisher.Publish(ctx, booking.Event{
			Type:          booking.EventExpired,
			Reference:     booking.Reference(rm.Reference),
			ReservationID: rm.ReservationID,
			Amount:        booking.NewMoney(rm.AmountMinor).Major(),
			Currency:      rm.Currency,
			GuestEmail:    rm.GuestEmail,
			Source:        booking.Source(rm.Source),
			OccurredAt:    u.clock.Now(),
		})
		if err != nil {
			slog.Warn("failed to publish expired event", "reference", rm.Reference, "error", err)
		}
	}

	if len(expired) > 0 {
		slog.Info("Expired stale pending payments", "count", len(expired), "cutoff", cutoff)
	}
	return len(expired), nil
}

// RunSweeper calls ExpireStalePending every interval until ctx is done.
func RunSweeper(ctx context.Context, cmds LedgerCommands, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := cmds.ExpireStalePending(ctx); err != nil {
				slog.Error("pending payment sweep failed", "error", err)
			}
		}
	}
}
