package repository

import (
	"context"
	"time"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/infra/db"
	"hotel-booking-gateway/internal/infra/repository/converter"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

// PaymentAttemptRepository is the write side of the payment ledger.
type PaymentAttemptRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewPaymentAttemptRepository(db db.DBTX, clock clock.Clock) *PaymentAttemptRepository {
	return &PaymentAttemptRepository{db: db, clock: clock}
}

// RecordPending inserts the handed-off payment. A retry of the same attempt
// refreshes the amount while the row is still pending.
func (r *PaymentAttemptRepository) RecordPending(ctx context.Context, rm readmodel.PaymentAttemptRM) error {
	now := r.clock.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO payment_attempts (
			reference, attempt_key, reservation_id, guest_email, room_id,
			amount_minor, currency, source, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9, $9)
		ON CONFLICT (reference) DO UPDATE SET
			reservation_id = EXCLUDED.reservation_id,
			amount_minor   = EXCLUDED.amount_minor,
			currency       = EXCLUDED.currency,
			updated_at     = EXCLUDED.updated_at
		WHERE payment_attempts.status = 'pending'`,
		rm.Reference, rm.AttemptKey, rm.ReservationID, rm.GuestEmail, rm.RoomID,
		rm.AmountMinor, rm.Currency, rm.Source, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record pending payment", err)
	}
	return nil
}

// MarkConfirmed records a verified payment. Rows already expired by the
// sweeper are confirmed too: the money arrived.
func (r *PaymentAttemptRepository) MarkConfirmed(ctx context.Context, reference, transactionID string, amountMinor int64, currency string) error {
	now := r.clock.Now()
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_attempts SET
			status         = 'confirmed',
			transaction_id = NULLIF($2, ''),
			amount_minor   = CASE WHEN $3::bigint > 0 THEN $3::bigint ELSE amount_minor END,
			currency       = COALESCE(NULLIF($4, ''), currency),
			verified_at    = $5,
			updated_at     = $5
		WHERE reference = $1`,
		reference, transactionID, amountMinor, currency, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment attempt not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentAttemptRepository) MarkFailed(ctx context.Context, reference string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_attempts SET status = 'failed', updated_at = $2
		WHERE reference = $1 AND status = 'pending'`,
		reference, r.clock.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment failed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending payment attempt not found", nil, infra.KindNotFound)
	}
	return nil
}

// ExpireStalePending moves rows still pending at cutoff to expired and
// returns them.
func (r *PaymentAttemptRepository) ExpireStalePending(ctx context.Context, cutoff time.Time) ([]readmodel.PaymentAttemptRM, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE payment_attempts SET status = 'expired', updated_at = $2
		WHERE status = 'pending' AND created_at < $1
		RETURNING `+converter.PaymentAttemptColumns,
		cutoff, r.clock.Now(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire pending payments", err)
	}

	expired, err := pgx.CollectRows(rows, converter.PaymentAttemptFromRow)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read expired payments", err)
	}
	return expired, nil
}

// NopPaymentAttemptRepository is used when no database is configured.
type NopPaymentAttemptRepository struct{}

func (NopPaymentAttemptRepository) RecordPending(context.Context, readmodel.PaymentAttemptRM) error {
	return nil
}

func (NopPaymentAttemptRepository) MarkConfirmed(context.Context, string, string, int64, string) error {
	return nil
}

func (NopPaymentAttemptRepository) MarkFailed(context.Context, string) error {
	return nil
}

func (NopPaymentAttemptRepository) ExpireStalePending(context.Context, time.Time) ([]readmodel.PaymentAttemptRM, error) {
	return nil, nil
}
