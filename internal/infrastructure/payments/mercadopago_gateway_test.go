package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(Options{AccessToken: "  "}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{
		Mock:  true,
		Clock: func() time.Time { return time.Unix(1700000000, 0) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":3000,"external_reference":"p-1","payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1700000000000000000" || status != "approved" {
		t.Fatalf("unexpected id=%s status=%s", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if resp["external_reference"] != "p-1" || resp["status_detail"] != "accredited" || resp["transaction_amount"] != 3000.0 {
		t.Fatalf("unexpected mock response: %v", resp)
	}
	if resp["payment_method_id"] != "pix" || resp["date_approved"] != "2023-11-14T22:13:20Z" {
		t.Fatalf("unexpected mock response: %v", resp)
	}
}

func TestMercadoPagoGateway_RejectsIncompleteCharge(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]string{
		"not json":          `{`,
		"no amount":         `{"external_reference":"p-1"}`,
		"negative amount":   `{"transaction_amount":-1,"external_reference":"p-1"}`,
		"no proposal ref":   `{"transaction_amount":3000}`,
		"blank proposal id": `{"transaction_amount":3000,"external_reference":"  "}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(payload)); !errors.Is(err, ErrInvalidSetupCharge) {
				t.Fatalf("expected ErrInvalidSetupCharge, got %v", err)
			}
		})
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}

	live := &MercadoPagoGateway{}
	if _, _, _, err := live.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
