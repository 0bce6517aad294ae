package queries

//go:generate mockgen -source=attempts.go -destination=../../../tests/mock/queries/attempts.go -package=queriesmock

import (
	"context"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/errs"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrAttemptNotFound = errs.New("submission attempt not found")

type AttemptQueries interface {
	Get(ctx context.Context, key uuid.UUID) (*readmodel.AttemptRM, error)
}

type attemptQueriesImpl struct {
	reader AttemptReader
}

func NewAttemptQueries(reader AttemptReader) AttemptQueries {
	return &attemptQueriesImpl{reader: reader}
}

func (q *attemptQueriesImpl) Get(ctx context.Context, key uuid.UUID) (*readmodel.AttemptRM, error) {
	if key == uuid.Nil {
		return nil, ErrAttemptNotFound
	}
	rm, err := q.reader.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	return rm, nil
}
