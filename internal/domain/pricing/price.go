package pricing

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// NegotiableLiteral is the JSON representation of a price that must be
// quoted manually ("a combinar").
const NegotiableLiteral = "a-combinar"

// Price is either a fixed amount or the Negotiable marker. The zero value is
// a fixed price of zero, which is a legitimate (free) price.
type Price struct {
	amount     decimal.Decimal
	negotiable bool
}

func Fixed(amount decimal.Decimal) Price {
	return Price{amount: amount}
}

// FixedString builds a fixed price from a decimal literal and panics on
// malformed input. Intended for seed tables and tests.
func FixedString(v string) Price {
	return Price{amount: decimal.RequireFromString(v)}
}

func FixedInt(v int64) Price {
	return Price{amount: decimal.NewFromInt(v)}
}

func Negotiable() Price {
	return Price{negotiable: true}
}

func (p Price) IsNegotiable() bool {
	return p.negotiable
}

// Amount returns the fixed amount. ok is false for Negotiable prices.
func (p Price) Amount() (decimal.Decimal, bool) {
	if p.negotiable {
		return decimal.Zero, false
	}
	return p.amount, true
}

func (p Price) String() string {
	if p.negotiable {
		return NegotiableLiteral
	}
	return p.amount.String()
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.negotiable {
		return []byte(`"` + NegotiableLiteral + `"`), nil
	}
	return []byte(p.amount.String()), nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte(`"`+NegotiableLiteral+`"`)) {
		*p = Negotiable()
		return nil
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("pricing: price cannot be null, use %q or an amount", NegotiableLiteral)
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("pricing: invalid price %s: %w", string(trimmed), err)
	}
	*p = Fixed(d)
	return nil
}

// RoundMoney rounds to cents, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
