package response

import (
	"cotador_telecom/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string ("1324.00").
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type ComponentResponse struct {
	Code       string `json:"code"`
	Kind       string `json:"kind"`
	Amount     string `json:"amount"`
	Negotiable bool   `json:"negotiable,omitempty"`
}

type LineItemResponse struct {
	ID                  string                `json:"id"`
	Family              string                `json:"family"`
	Description         string                `json:"description"`
	SetupFee            string                `json:"setup_fee"`
	MonthlyFee          string                `json:"monthly_fee"`
	Quantity            int                   `json:"quantity"`
	Components          []ComponentResponse   `json:"components"`
	RequiresManualQuote bool                  `json:"requires_manual_quote"`
	PriceTableVersion   int64                 `json:"price_table_version"`
	Configuration       pricing.Configuration `json:"configuration"`
}

func FromLineItem(li pricing.LineItem) LineItemResponse {
	comps := make([]ComponentResponse, 0, len(li.Components))
	for _, c := range li.Components {
		comps = append(comps, ComponentResponse{
			Code:       c.Code,
			Kind:       string(c.Kind),
			Amount:     money(c.Amount),
			Negotiable: c.Negotiable,
		})
	}
	return LineItemResponse{
		ID:                  li.ID,
		Family:              string(li.Family),
		Description:         li.Description,
		SetupFee:            money(li.SetupFee),
		MonthlyFee:          money(li.MonthlyFee),
		Quantity:            li.Quantity,
		Components:          comps,
		RequiresManualQuote: li.RequiresManualQuote,
		PriceTableVersion:   li.PriceTableVersion,
		Configuration:       li.Configuration,
	}
}

func FromLineItems(items []pricing.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLineItem(it))
	}
	return out
}
