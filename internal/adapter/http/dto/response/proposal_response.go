package response

import (
	"time"

	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/domain/negotiation"
)

type RoundResponse struct {
	RoundNumber         int       `json:"round_number"`
	DiscountPercent     string    `json:"discount_percent"`
	Reason              string    `json:"reason"`
	AppliedMonthlyTotal string    `json:"applied_monthly_total"`
	AppliedBy           string    `json:"applied_by,omitempty"`
	AppliedAt           time.Time `json:"applied_at"`
}

type DirectorDiscountResponse struct {
	DiscountPercent     string    `json:"discount_percent"`
	Reason              string    `json:"reason"`
	AppliedMonthlyTotal string    `json:"applied_monthly_total"`
	AppliedBy           string    `json:"applied_by,omitempty"`
	AppliedAt           time.Time `json:"applied_at"`
}

type NegotiationResponse struct {
	State                string                    `json:"state"`
	OriginalMonthlyTotal string                    `json:"original_monthly_total"`
	Rounds               []RoundResponse           `json:"rounds"`
	DirectorDiscount     *DirectorDiscountResponse `json:"director_discount,omitempty"`
	FinalMonthlyTotal    string                    `json:"final_monthly_total"`
}

type ProposalResponse struct {
	ID                  string                  `json:"id"`
	Number              string                  `json:"number"`
	Title               string                  `json:"title,omitempty"`
	Client              entities.ClientInfo     `json:"client"`
	AccountManager      entities.AccountManager `json:"account_manager"`
	LineItems           []LineItemResponse      `json:"line_items"`
	PriceTableVersion   int64                   `json:"price_table_version"`
	TotalSetup          string                  `json:"total_setup"`
	TotalMonthly        string                  `json:"total_monthly"`
	FinalMonthlyTotal   string                  `json:"final_monthly_total"`
	RequiresManualQuote bool                    `json:"requires_manual_quote"`
	Negotiation         NegotiationResponse     `json:"negotiation"`
	Status              string                  `json:"status"`
	Notes               string                  `json:"notes,omitempty"`
	CreatedBy           string                  `json:"created_by"`
	Version             int64                   `json:"version"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	totals := p.Totals()
	return ProposalResponse{
		ID:                  p.ID,
		Number:              p.Number,
		Title:               p.Title,
		Client:              p.Client,
		AccountManager:      p.AccountManager,
		LineItems:           FromLineItems(p.LineItems),
		PriceTableVersion:   p.PriceTableVersion,
		TotalSetup:          money(totals.TotalSetup),
		TotalMonthly:        money(totals.TotalMonthly),
		FinalMonthlyTotal:   money(p.FinalMonthlyTotal()),
		RequiresManualQuote: p.RequiresManualQuote(),
		Negotiation:         fromNegotiation(p),
		Status:              string(p.Status),
		Notes:               p.Notes,
		CreatedBy:           p.CreatedBy,
		Version:             p.Version,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

func fromNegotiation(p entities.Proposal) NegotiationResponse {
	n := p.Negotiation
	state := n.State
	if state == "" {
		state = negotiation.StateNoDiscount
	}
	rounds := make([]RoundResponse, 0, len(n.Rounds))
	for _, r := range n.Rounds {
		rounds = append(rounds, RoundResponse{
			RoundNumber:         r.Number,
			DiscountPercent:     money(r.DiscountPercent),
			Reason:              r.Reason,
			AppliedMonthlyTotal: money(r.AppliedMonthlyTotal),
			AppliedBy:           r.AppliedBy,
			AppliedAt:           r.AppliedAt,
		})
	}
	out := NegotiationResponse{
		State:                string(state),
		OriginalMonthlyTotal: money(n.OriginalMonthlyTotal),
		Rounds:               rounds,
		FinalMonthlyTotal:    money(p.FinalMonthlyTotal()),
	}
	if d := n.Director; d != nil {
		out.DirectorDiscount = &DirectorDiscountResponse{
			DiscountPercent:     money(d.DiscountPercent),
			Reason:              d.Reason,
			AppliedMonthlyTotal: money(d.AppliedMonthlyTotal),
			AppliedBy:           d.AppliedBy,
			AppliedAt:           d.AppliedAt,
		}
	}
	return out
}
