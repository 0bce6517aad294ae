package request

// PaymentRedirectQuery is what the provider appends to the success URL.
type PaymentRedirectQuery struct {
	Status        string `form:"status"`
	TxRef         string `form:"tx_ref"`
	TransactionID string `form:"transaction_id"`
}

type PaymentAttemptListQuery struct {
	Status string `form:"status"`
	After  string `form:"after"`
	Limit  int    `form:"limit"`
}
