// Package payment adapts the provider's hosted inline checkout.
package payment

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	dompayment "hotel-booking-gateway/internal/domain/payment"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

const ProviderFlutterwave = "flutterwave"

var (
	ErrInvalidCheckout   = errs.New("invalid checkout configuration")
	ErrScriptUnavailable = errs.New("payment checkout script unavailable")
)

type FlutterwaveBridge struct {
	cfg     config.PaymentConfig
	baseURL string
	probe   *resty.Client
	group   singleflight.Group
	loaded  atomic.Bool
}

func NewFlutterwaveBridge(cfg config.Config) *FlutterwaveBridge {
	return &FlutterwaveBridge{
		cfg:     cfg.Payment,
		baseURL: cfg.App.BaseURL,
		probe:   resty.New().SetTimeout(cfg.Payment.LoadTimeout),
	}
}

// EnsureLoaded confirms the checkout script can be served. It is safe to call
// repeatedly and concurrently: once loaded it returns immediately, and callers
// arriving while a probe is in flight wait on that probe instead of starting
// another one.
func (b *FlutterwaveBridge) EnsureLoaded(ctx context.Context) error {
	if b.loaded.Load() {
		return nil
	}

	ch := b.group.DoChan("checkout-script", func() (any, error) {
		if b.loaded.Load() {
			return nil, nil
		}
		probeCtx, cancel := context.WithTimeout(context.Background(), b.cfg.LoadTimeout)
		defer cancel()
		if err := b.probeScript(probeCtx); err != nil {
			return nil, err
		}
		b.loaded.Store(true)
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return errs.Mark(ctx.Err(), ErrScriptUnavailable)
	}
}

func (b *FlutterwaveBridge) probeScript(ctx context.Context) error {
	if b.cfg.ScriptURL == "" {
		return errs.Wrap(ErrScriptUnavailable, "script URL not configured")
	}

	resp, err := b.probe.R().SetContext(ctx).Head(b.cfg.ScriptURL)
	if err == nil && resp.StatusCode() == http.StatusMethodNotAllowed {
		resp, err = b.probe.R().SetContext(ctx).Get(b.cfg.ScriptURL)
	}
	if err != nil {
		slog.Warn("checkout script probe failed", "url", b.cfg.ScriptURL, "error", err)
		return errs.Mark(err, ErrScriptUnavailable)
	}
	if resp.IsError() {
		slog.Warn("checkout script probe rejected", "url", b.cfg.ScriptURL, "status", resp.StatusCode())
		return errs.Wrapf(ErrScriptUnavailable, "script returned %d", resp.StatusCode())
	}
	return nil
}

// Open validates the checkout before touching the network, then makes sure
// the script is available and returns the payload for the page.
func (b *FlutterwaveBridge) Open(ctx context.Context, charge dompayment.Charge) (*dompayment.Handoff, error) {
	redirectURL, err := dompayment.SuccessRedirectURL(b.baseURL)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCheckout)
	}

	checkout := dompayment.CheckoutConfig{
		PublicKey:   b.cfg.PublicKey,
		Reference:   charge.Reference,
		Amount:      charge.Amount,
		Currency:    charge.Currency,
		Customer:    charge.Customer,
		RedirectURL: redirectURL,
		Customizations: dompayment.Customizations{
			Title:       b.cfg.Title,
			Description: b.cfg.Description,
			Logo:        b.cfg.LogoURL,
		},
	}
	if err := checkout.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCheckout)
	}

	if err := b.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	return &dompayment.Handoff{
		Provider:  ProviderFlutterwave,
		ScriptURL: b.cfg.ScriptURL,
		Payload:   checkout.WidgetPayload(),
	}, nil
}
