package request

import (
	"strings"

	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase"

	"github.com/shopspring/decimal"
)

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document,omitempty" binding:"omitempty,document"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// ProposalRequest creates or replaces the editable part of a proposal.
type ProposalRequest struct {
	Title            string                 `json:"title"`
	Client           ClientRequest          `json:"client"`
	Notes            string                 `json:"notes,omitempty"`
	Configurations   []ConfigurationRequest `json:"configurations" binding:"required,min=1,dive"`
	ResetNegotiation bool                   `json:"reset_negotiation,omitempty"`
}

func (r ProposalRequest) ToCommand() usecase.ProposalCommand {
	cfgs := make([]pricing.Configuration, 0, len(r.Configurations))
	for _, c := range r.Configurations {
		cfgs = append(cfgs, c.ToDomain())
	}
	return usecase.ProposalCommand{
		Title: r.Title,
		Client: entities.ClientInfo{
			Name:     r.Client.Name,
			Document: digitsOnly(r.Client.Document),
			Email:    strings.TrimSpace(r.Client.Email),
			Phone:    r.Client.Phone,
			Contact:  r.Client.Contact,
		},
		Notes:            r.Notes,
		Configurations:   cfgs,
		ResetNegotiation: r.ResetNegotiation,
	}
}

// NegotiationRoundRequest applies the next salesperson discount round.
type NegotiationRoundRequest struct {
	RoundNumber     int             `json:"round_number" binding:"required,gt=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent" binding:"percent"`
	Reason          string          `json:"reason" binding:"required"`
}

type DirectorDiscountRequest struct {
	DiscountPercent decimal.Decimal `json:"discount_percent" binding:"percent"`
	Reason          string          `json:"reason" binding:"required"`
}
