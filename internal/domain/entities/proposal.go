package entities

import (
	"time"

	"cotador_telecom/internal/domain/negotiation"
	"cotador_telecom/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the commercial lifecycle of a proposal.
type ProposalStatus string

const (
	ProposalStatusPendente  ProposalStatus = "pendente"
	ProposalStatusAprovada  ProposalStatus = "aprovada"
	ProposalStatusRejeitada ProposalStatus = "rejeitada"
	ProposalStatusCancelada ProposalStatus = "cancelada"
)

// CanTransitionTo allows moves out of pendente only.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	if s != ProposalStatusPendente {
		return false
	}
	switch next {
	case ProposalStatusAprovada, ProposalStatusRejeitada, ProposalStatusCancelada:
		return true
	}
	return false
}

type ClientInfo struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

type AccountManager struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Proposal is the commercial proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_by-index): created_by
//
// Totals are never stored as authoritative values; they are derived from
// LineItems on every read. Version drives optimistic concurrency.
type Proposal struct {
	ID                string                  `json:"id"`
	Number            string                  `json:"number"`
	Title             string                  `json:"title"`
	Client            ClientInfo              `json:"client"`
	AccountManager    AccountManager          `json:"account_manager"`
	LineItems         []pricing.LineItem      `json:"line_items"`
	PriceTableVersion int64                   `json:"price_table_version"`
	Negotiation       negotiation.Negotiation `json:"negotiation"`
	Status            ProposalStatus          `json:"status"`
	Notes             string                  `json:"notes,omitempty"`
	CreatedBy         string                  `json:"created_by"`
	Version           int64                   `json:"version"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func (p Proposal) Totals() pricing.Totals {
	return pricing.Aggregate(p.LineItems)
}

// FinalMonthlyTotal is the negotiated figure when a negotiation exists, else
// the aggregated monthly total.
func (p Proposal) FinalMonthlyTotal() decimal.Decimal {
	if p.Negotiation.State == "" {
		return p.Totals().TotalMonthly
	}
	return p.Negotiation.FinalMonthlyTotal()
}

func (p Proposal) RequiresManualQuote() bool {
	return pricing.RequiresManualQuote(p.LineItems)
}
