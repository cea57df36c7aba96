package pricing

import "github.com/shopspring/decimal"

// Totals are proposal-level sums. They are always derived from line items.
type Totals struct {
	TotalSetup   decimal.Decimal `json:"total_setup"`
	TotalMonthly decimal.Decimal `json:"total_monthly"`
}

// Aggregate sums setup fees and quantity-weighted monthly fees. A quantity
// of zero or less counts as one. An empty list yields zero totals.
func Aggregate(items []LineItem) Totals {
	totals := Totals{TotalSetup: decimal.Zero, TotalMonthly: decimal.Zero}
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		totals.TotalSetup = totals.TotalSetup.Add(it.SetupFee)
		totals.TotalMonthly = totals.TotalMonthly.Add(it.MonthlyFee.Mul(decimal.NewFromInt(int64(qty))))
	}
	return totals
}

// RequiresManualQuote reports whether any item is flagged for manual quoting.
func RequiresManualQuote(items []LineItem) bool {
	for _, it := range items {
		if it.RequiresManualQuote {
			return true
		}
	}
	return false
}
