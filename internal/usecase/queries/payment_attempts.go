package queries

//go:generate mockgen -source=payment_attempts.go -destination=../../../tests/mock/queries/payment_attempts.go -package=queriesmock

import (
	"context"
	"strings"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/usecase/readmodel"
)

var (
	ErrInvalidStatus          = errs.New("invalid payment attempt status")
	ErrInvalidCursor          = errs.New("invalid cursor")
	ErrPaymentAttemptNotFound = errs.New("payment attempt not found")
)

type PaymentAttemptQueries interface {
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]readmodel.PaymentAttemptRM, *Cursor, error)
	GetByReference(ctx context.Context, reference string) (*readmodel.PaymentAttemptRM, error)
}

type paymentAttemptQueriesImpl struct {
	store PaymentAttemptReadStore
}

func NewPaymentAttemptQueries(store PaymentAttemptReadStore) PaymentAttemptQueries {
	return &paymentAttemptQueriesImpl{store: store}
}

func (q *paymentAttemptQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]readmodel.PaymentAttemptRM, *Cursor, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !readmodel.IsPaymentAttemptStatus(status) {
		return nil, nil, ErrInvalidStatus
	}

	limit = ValidateLimit(limit)
	var rows []readmodel.PaymentAttemptRM
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, status, int32(limit+1))
	} else {
		lastCreatedAt, lastRef, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, status, lastCreatedAt, lastRef.String(), int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, booking.Reference(last.Reference))}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *paymentAttemptQueriesImpl) GetByReference(ctx context.Context, reference string) (*readmodel.PaymentAttemptRM, error) {
	ref, err := booking.ParseReference(reference)
	if err != nil {
		return nil, ErrPaymentAttemptNotFound
	}
	rm, err := q.store.FindByReference(ctx, ref.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentAttemptNotFound
		}
		return nil, err
	}
	return rm, nil
}
