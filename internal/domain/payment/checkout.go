package payment

import (
	"errors"
	"net/url"
	"strings"

	"hotel-booking-gateway/internal/domain/booking"
)

const SuccessPath = "/booking/success"

var (
	ErrMissingPublicKey     = errors.New("payment public key is not configured")
	ErrMissingReference     = errors.New("payment reference is required")
	ErrMissingAmount        = errors.New("payment amount is required")
	ErrMissingCurrency      = errors.New("payment currency is required")
	ErrMissingCustomerEmail = errors.New("customer email is required")
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrMissingBaseURL       = errors.New("application base URL is not configured")
	ErrInvalidBaseURL       = errors.New("application base URL is invalid")
)

type Customer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Name        string `json:"name"`
}

type Customizations struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// Charge is what the booking flow asks the bridge to collect.
type Charge struct {
	Reference booking.Reference
	Amount    booking.Money
	Currency  string
	Customer  Customer
}

// CheckoutConfig is the payload the provider's inline widget is opened with.
type CheckoutConfig struct {
	PublicKey      string
	Reference      booking.Reference
	Amount         booking.Money
	Currency       string
	Customer       Customer
	RedirectURL    string
	Customizations Customizations
}

// Validate reports the first missing required field.
func (c CheckoutConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.PublicKey) == "":
		return ErrMissingPublicKey
	case c.Reference.IsZero():
		return ErrMissingReference
	case !c.Amount.IsPositive():
		return ErrMissingAmount
	case strings.TrimSpace(c.Currency) == "":
		return ErrMissingCurrency
	case strings.TrimSpace(c.Customer.Email) == "":
		return ErrMissingCustomerEmail
	case strings.TrimSpace(c.Customer.Name) == "":
		return ErrMissingCustomerName
	}
	return nil
}

// WidgetPayload is the JSON object handed to the provider's checkout function.
type WidgetPayload struct {
	PublicKey      string         `json:"public_key"`
	TxRef          string         `json:"tx_ref"`
	Amount         float64        `json:"amount"`
	Currency       string         `json:"currency"`
	Customer       Customer       `json:"customer"`
	RedirectURL    string         `json:"redirect_url"`
	Customizations Customizations `json:"customizations"`
}

func (c CheckoutConfig) WidgetPayload() WidgetPayload {
	return WidgetPayload{
		PublicKey:      c.PublicKey,
		TxRef:          c.Reference.String(),
		Amount:         c.Amount.Major(),
		Currency:       c.Currency,
		Customer:       c.Customer,
		RedirectURL:    c.RedirectURL,
		Customizations: c.Customizations,
	}
}

// Handoff is everything the page needs to open the provider overlay. Completion
// is observed only through the redirect to RedirectURL.
type Handoff struct {
	Provider  string
	ScriptURL string
	Payload   WidgetPayload
}

// SuccessRedirectURL builds the fixed success route on baseURL. The provider
// requires a secure scheme, so http origins are rewritten to https.
func SuccessRedirectURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", ErrMissingBaseURL
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "", ErrInvalidBaseURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		u.Scheme = "https"
	default:
		return "", ErrInvalidBaseURL
	}

	u.Path = strings.TrimRight(u.Path, "/") + SuccessPath
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
