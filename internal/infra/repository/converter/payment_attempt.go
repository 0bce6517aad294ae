package converter

import (
	"hotel-booking-gateway/internal/pkg/pgconv"
	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const PaymentAttemptColumns = `reference, attempt_key, reservation_id, guest_email, room_id,
	amount_minor, currency, source, status, transaction_id, verified_at, created_at, updated_at`

// PaymentAttemptFromRow scans a row selected with PaymentAttemptColumns.
func PaymentAttemptFromRow(row pgx.CollectableRow) (readmodel.PaymentAttemptRM, error) {
	var (
		rm            readmodel.PaymentAttemptRM
		transactionID pgtype.Text
		verifiedAt    pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.Reference, &rm.AttemptKey, &rm.ReservationID, &rm.GuestEmail, &rm.RoomID,
		&rm.AmountMinor, &rm.Currency, &rm.Source, &rm.Status, &transactionID,
		&verifiedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return readmodel.PaymentAttemptRM{}, err
	}

	rm.TransactionID = pgconv.StringPtrFromPgtype(transactionID)
	rm.VerifiedAt = pgconv.TimePtrFromPgtype(verifiedAt)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return rm, nil
}
