package payment

import "hotel-booking-gateway/internal/domain/booking"

// Verification is the server's answer about a provider transaction.
type Verification struct {
	Confirmed     bool
	Status        string
	Reference     booking.Reference
	TransactionID string
	Amount        booking.Money
	Currency      string
}
