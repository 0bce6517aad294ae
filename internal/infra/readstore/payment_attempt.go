package readstore

import (
	"context"
	"time"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/infra/db"
	"hotel-booking-gateway/internal/infra/repository/converter"
	"hotel-booking-gateway/internal/pkg/pgconv"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

// PaymentAttemptReadStore is the staff-facing read side of the payment ledger.
type PaymentAttemptReadStore struct {
	db db.DBTX
}

func NewPaymentAttemptReadStore(db db.DBTX) *PaymentAttemptReadStore {
	return &PaymentAttemptReadStore{db: db}
}

// ListFirstPage returns the newest attempts first. An empty status lists
// every status.
func (r *PaymentAttemptReadStore) ListFirstPage(ctx context.Context, status string, limit int32) ([]readmodel.PaymentAttemptRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.PaymentAttemptColumns+`
		FROM payment_attempts
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, reference DESC
		LIMIT $2`,
		status, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment attempts", err)
	}
	return collectPaymentAttempts(rows)
}

// ListKeyset continues ListFirstPage after (lastCreatedAt, lastReference).
func (r *PaymentAttemptReadStore) ListKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastReference string, limit int32) ([]readmodel.PaymentAttemptRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.PaymentAttemptColumns+`
		FROM payment_attempts
		WHERE ($1 = '' OR status = $1)
		  AND (created_at, reference) < ($2, $3)
		ORDER BY created_at DESC, reference DESC
		LIMIT $4`,
		status, lastCreatedAt, lastReference, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment attempts", err)
	}
	return collectPaymentAttempts(rows)
}

func collectPaymentAttempts(rows pgx.Rows) ([]readmodel.PaymentAttemptRM, error) {
	items, err := pgx.CollectRows(rows, converter.PaymentAttemptFromRow)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read payment attempts", err)
	}
	return items, nil
}

func (r *PaymentAttemptReadStore) FindByReference(ctx context.Context, reference string) (*readmodel.PaymentAttemptRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.PaymentAttemptColumns+`
		FROM payment_attempts
		WHERE reference = $1`,
		reference,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment attempt", err)
	}

	rm, err := pgx.CollectExactlyOneRow(rows, converter.PaymentAttemptFromRow)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment attempt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read payment attempt", err)
	}
	return &rm, nil
}

// NopPaymentAttemptReadStore is used when no database is configured.
type NopPaymentAttemptReadStore struct{}

func (NopPaymentAttemptReadStore) ListFirstPage(context.Context, string, int32) ([]readmodel.PaymentAttemptRM, error) {
	return []readmodel.PaymentAttemptRM{}, nil
}

func (NopPaymentAttemptReadStore) ListKeyset(context.Context, string, time.Time, string, int32) ([]readmodel.PaymentAttemptRM, error) {
	return []readmodel.PaymentAttemptRM{}, nil
}

func (NopPaymentAttemptReadStore) FindByReference(context.Context, string) (*readmodel.PaymentAttemptRM, error) {
	return nil, infra.WrapRepoErr("payment attempt not found", nil, infra.KindNotFound)
}
