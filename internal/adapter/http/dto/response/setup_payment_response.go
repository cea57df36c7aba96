package response

import (
	"time"

	"cotador_telecom/internal/domain/entities"
)

type SetupPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ProposalID  string    `json:"proposal_id"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromSetupPayment(p entities.SetupPayment) SetupPaymentResponse {
	return SetupPaymentResponse{
		PaymentID:    p.ID,
		ProposalID:   p.ProposalID,
		Amount:       money(p.Amount),
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromSetupPayments(ps []entities.SetupPayment) []SetupPaymentResponse {
	out := make([]SetupPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromSetupPayment(p))
	}
	return out
}
