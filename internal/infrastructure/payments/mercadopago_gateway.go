package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cotador_telecom/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	// ErrInvalidSetupCharge means the request lacks the amount or the
	// proposal reference every setup charge must carry.
	ErrInvalidSetupCharge = errors.New("invalid setup charge")
)

// Options configures the gateway. With Mock set no request leaves the
// process and every charge is approved.
type Options struct {
	AccessToken string
	Mock        bool
	Clock       func() time.Time
}

// MercadoPagoGateway charges proposal setup fees through the Mercado Pago
// payments API.
type MercadoPagoGateway struct {
	client payment.Client
	mock   bool
	clock  func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{mock: opts.Mock, clock: opts.Clock}
	if g.clock == nil {
		g.clock = time.Now
	}
	if opts.Mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return g, nil
	}

	token := strings.TrimSpace(opts.AccessToken)
	if token == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(token)
	if err != nil {
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	g.client = payment.NewClient(cfg)
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")
	return g, nil
}

// setupCharge is the part of a payment request the gateway checks and logs.
type setupCharge struct {
	req payment.Request
}

func decodeSetupCharge(raw json.RawMessage) (setupCharge, error) {
	var c setupCharge
	if err := json.Unmarshal(raw, &c.req); err != nil {
		return setupCharge{}, fmt.Errorf("%w: %v", ErrInvalidSetupCharge, err)
	}
	if c.req.TransactionAmount <= 0 {
		return setupCharge{}, fmt.Errorf("%w: transaction_amount must be positive", ErrInvalidSetupCharge)
	}
	if strings.TrimSpace(c.req.ExternalReference) == "" {
		return setupCharge{}, fmt.Errorf("%w: external_reference is required", ErrInvalidSetupCharge)
	}
	return c, nil
}

// CreatePayment submits the charge and returns the provider id, status and
// raw response.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || (!g.mock && g.client == nil) {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	charge, err := decodeSetupCharge(requestPayload)
	if err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] rejected charge")
		return "", "", nil, err
	}
	logger := log.With().
		Str("external_reference", charge.req.ExternalReference).
		Float64("amount", charge.req.TransactionAmount).
		Bool("mock", g.mock).
		Logger()

	if g.mock {
		return g.approveLocally(charge)
	}

	resp, err := g.client.Create(ctx, charge.req)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	logger.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("[payment][gateway] charge created")
	return id, resp.Status, raw, nil
}

type localApproval struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	TransactionAmount float64 `json:"transaction_amount"`
	ExternalReference string  `json:"external_reference"`
	Description       string  `json:"description,omitempty"`
	PaymentMethodID   string  `json:"payment_method_id,omitempty"`
	DateCreated       string  `json:"date_created"`
	DateApproved      string  `json:"date_approved"`
}

func (g *MercadoPagoGateway) approveLocally(charge setupCharge) (string, string, json.RawMessage, error) {
	now := g.clock().UTC()
	stamp := now.Format(time.RFC3339Nano)
	out := localApproval{
		ID:                strconv.FormatInt(now.UnixNano(), 10),
		Status:            "approved",
		StatusDetail:      "accredited",
		TransactionAmount: charge.req.TransactionAmount,
		ExternalReference: charge.req.ExternalReference,
		Description:       charge.req.Description,
		PaymentMethodID:   charge.req.PaymentMethodID,
		DateCreated:       stamp,
		DateApproved:      stamp,
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "", "", nil, err
	}
	log.Info().Str("provider_payment_id", out.ID).Str("external_reference", out.ExternalReference).
		Msg("[payment][gateway] mock charge approved")
	return out.ID, out.Status, raw, nil
}
