//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertPaymentAttempt writes a ledger row directly. Zero fields get defaults.
func InsertPaymentAttempt(t *testing.T, db DBLike, rm readmodel.PaymentAttemptRM) readmodel.PaymentAttemptRM {
	t.Helper()

	if rm.AttemptKey == uuid.Nil {
		rm.AttemptKey = uuid.New()
	}
	if rm.GuestEmail == "" {
		rm.GuestEmail = "jane@x.com"
	}
	if rm.RoomID == "" {
		rm.RoomID = "deluxe"
	}
	if rm.Currency == "" {
		rm.Currency = "NGN"
	}
	if rm.Source == "" {
		rm.Source = "web"
	}
	if rm.Status == "" {
		rm.Status = readmodel.PaymentAttemptPending
	}
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if rm.UpdatedAt.IsZero() {
		rm.UpdatedAt = rm.CreatedAt
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO payment_attempts (
			reference, attempt_key, reservation_id, guest_email, room_id,
			amount_minor, currency, source, status, transaction_id,
			verified_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rm.Reference, rm.AttemptKey, rm.ReservationID, rm.GuestEmail, rm.RoomID,
		rm.AmountMinor, rm.Currency, rm.Source, rm.Status, rm.TransactionID,
		rm.VerifiedAt, rm.CreatedAt, rm.UpdatedAt,
	)
	require.NoError(t, err)

	return rm
}

func PaymentAttemptStatus(t *testing.T, db DBLike, reference string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM payment_attempts WHERE reference = $1", reference).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountPaymentAttempts(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM payment_attempts").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
