// Package hotelapi is the adapter for the hotel REST API that owns room
// inventory, reservations and payment verification. Every response-shape
// variant the API has shipped is normalized here.
package hotelapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"hotel-booking-gateway/internal/infra"
	"hotel-booking-gateway/internal/pkg/config"

	"github.com/go-resty/resty/v2"
)

const (
	pathAvailableRooms    = "/room-inventory/available"
	pathCheckAvailability = "/room-inventory/check-availability"
	pathCreateBooking     = "/bookings/public"
	pathBookingByRef      = "/bookings/by-reference/{ref}"
	pathVerifyPayment     = "/payments/verify"
)

type Client struct {
	http *resty.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		c.SetAuthToken(cfg.Token)
	}
	return &Client{http: c}
}

// NewClientWithResty is used by tests to point the adapter at a stub server.
func NewClientWithResty(c *resty.Client) *Client {
	return &Client{http: c}
}

func decode(resp *resty.Response, target any) error {
	body := resp.Body()
	if len(body) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(body, target)
}

func statusErr(op string, resp *resty.Response) error {
	msg := fmt.Sprintf("%s returned %d", op, resp.StatusCode())
	if detail := upstreamMessage(resp.Body()); detail != "" {
		msg += ": " + detail
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
	case resp.StatusCode() >= 500:
		return infra.WrapRepoErr(msg, nil, infra.KindUpstreamFailure)
	default:
		return infra.WrapRepoErr(msg, nil, infra.KindUpstreamRejected)
	}
}

func upstreamMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	if s, ok := envelope.Error.(string); ok {
		return s
	}
	return ""
}
