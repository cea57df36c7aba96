// Package negotiation applies salesperson discount rounds and the director
// override to a proposal's monthly total.
//
// Rounds compound multiplicatively and are append-only. A director discount
// is computed from the pre-round total and, when present, is the final
// figure; rounds stay in the history but no longer drive the final total.
package negotiation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount  = errors.New("invalid discount")
	ErrRoundOutOfOrder  = errors.New("negotiation round out of order")
	ErrFinalized        = errors.New("negotiation finalized")
	ErrDirectorOverride = errors.New("director discount already set")
	ErrNegativeBaseline = errors.New("negative monthly total")
	ErrMissingReason    = errors.New("discount reason is required")
)

var hundred = decimal.NewFromInt(100)

type State string

const (
	StateNoDiscount       State = "sem_desconto"
	StateNegotiating      State = "negociando"
	StateDirectorOverride State = "desconto_diretor"
	StateFinalized        State = "finalizada"
)

// Round is one salesperson discount step.
type Round struct {
	Number              int             `json:"round_number"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	Reason              string          `json:"reason"`
	AppliedMonthlyTotal decimal.Decimal `json:"applied_monthly_total"`
	AppliedBy           string          `json:"applied_by,omitempty"`
	AppliedAt           time.Time       `json:"applied_at"`
}

type DirectorDiscount struct {
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	Reason              string          `json:"reason"`
	AppliedMonthlyTotal decimal.Decimal `json:"applied_monthly_total"`
	AppliedBy           string          `json:"applied_by,omitempty"`
	AppliedAt           time.Time       `json:"applied_at"`
}

// Negotiation is the discount history of one proposal. OriginalMonthlyTotal
// is set once by New and never overwritten.
type Negotiation struct {
	OriginalMonthlyTotal decimal.Decimal   `json:"original_monthly_total"`
	Rounds               []Round           `json:"rounds"`
	Director             *DirectorDiscount `json:"director_discount,omitempty"`
	State                State             `json:"state"`
}

func New(originalMonthlyTotal decimal.Decimal) (Negotiation, error) {
	if originalMonthlyTotal.IsNegative() {
		return Negotiation{}, ErrNegativeBaseline
	}
	return Negotiation{
		OriginalMonthlyTotal: originalMonthlyTotal,
		Rounds:               []Round{},
		State:                StateNoDiscount,
	}, nil
}

// ValidatePercent accepts discounts in (0, 100].
func ValidatePercent(pct decimal.Decimal) error {
	if !pct.IsPositive() || pct.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s%% must be greater than 0 and at most 100", ErrInvalidDiscount, pct.String())
	}
	return nil
}

// ApplyDiscount computes current × (1 − pct/100), rounded to cents.
func ApplyDiscount(current, pct decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidatePercent(pct); err != nil {
		return decimal.Zero, err
	}
	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	return current.Mul(factor).Round(2), nil
}

// CurrentRoundTotal is the running total of the round sequence, ignoring any
// director discount.
func (n Negotiation) CurrentRoundTotal() decimal.Decimal {
	if len(n.Rounds) == 0 {
		return n.OriginalMonthlyTotal
	}
	return n.Rounds[len(n.Rounds)-1].AppliedMonthlyTotal
}

// FinalMonthlyTotal is the authoritative figure presented to the client.
func (n Negotiation) FinalMonthlyTotal() decimal.Decimal {
	if n.Director != nil {
		return n.Director.AppliedMonthlyTotal
	}
	return n.CurrentRoundTotal()
}

// NextRoundNumber is the only round number ApplyRound accepts.
func (n Negotiation) NextRoundNumber() int {
	return len(n.Rounds) + 1
}

// ApplyRound appends round number on top of the running total. number must
// equal NextRoundNumber; duplicates and gaps are rejected.
func (n *Negotiation) ApplyRound(number int, pct decimal.Decimal, reason, by string, at time.Time) (Round, error) {
	switch n.State {
	case StateFinalized:
		return Round{}, ErrFinalized
	case StateDirectorOverride:
		return Round{}, ErrDirectorOverride
	}
	if number != n.NextRoundNumber() {
		return Round{}, fmt.Errorf("%w: got %d, expected %d", ErrRoundOutOfOrder, number, n.NextRoundNumber())
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Round{}, ErrMissingReason
	}
	applied, err := ApplyDiscount(n.CurrentRoundTotal(), pct)
	if err != nil {
		return Round{}, err
	}

	r := Round{
		Number:              number,
		DiscountPercent:     pct,
		Reason:              reason,
		AppliedMonthlyTotal: applied,
		AppliedBy:           by,
		AppliedAt:           at,
	}
	n.Rounds = append(n.Rounds, r)
	n.State = StateNegotiating
	return r, nil
}

// SetDirectorDiscount records the director decision against the pre-round
// total, replacing any earlier director discount.
func (n *Negotiation) SetDirectorDiscount(pct decimal.Decimal, reason, by string, at time.Time) (DirectorDiscount, error) {
	if n.State == StateFinalized {
		return DirectorDiscount{}, ErrFinalized
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return DirectorDiscount{}, ErrMissingReason
	}
	applied, err := ApplyDiscount(n.OriginalMonthlyTotal, pct)
	if err != nil {
		return DirectorDiscount{}, err
	}

	d := DirectorDiscount{
		DiscountPercent:     pct,
		Reason:              reason,
		AppliedMonthlyTotal: applied,
		AppliedBy:           by,
		AppliedAt:           at,
	}
	n.Director = &d
	n.State = StateDirectorOverride
	return d, nil
}

// Finalize marks the negotiation as saved. It is idempotent.
func (n *Negotiation) Finalize() {
	n.State = StateFinalized
}

// Reopen leaves the finalized state after an edit, restoring the state the
// history implies.
func (n *Negotiation) Reopen() {
	if n.State != StateFinalized {
		return
	}
	n.State = n.derivedState()
}

func (n Negotiation) HasDiscounts() bool {
	return len(n.Rounds) > 0 || n.Director != nil
}

func (n Negotiation) derivedState() State {
	switch {
	case n.Director != nil:
		return StateDirectorOverride
	case len(n.Rounds) > 0:
		return StateNegotiating
	default:
		return StateNoDiscount
	}
}
