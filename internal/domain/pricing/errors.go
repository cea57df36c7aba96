package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteConfiguration means a required selection is missing; the
	// caller must prompt for it instead of substituting a default.
	ErrIncompleteConfiguration = errors.New("incomplete configuration")
	// ErrBracketUnpriced means a resolved price is "a combinar". The line item
	// returned alongside it is valid and flagged for manual quoting.
	ErrBracketUnpriced = errors.New("bracket requires manual quote")

	ErrInvalidPriceTable = errors.New("invalid price table")
)

type IncompleteConfigurationError struct {
	Family Family
	Fields []string
}

func (e *IncompleteConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s missing %s", ErrIncompleteConfiguration, e.Family, strings.Join(e.Fields, ", "))
}

func (e *IncompleteConfigurationError) Is(target error) bool {
	return target == ErrIncompleteConfiguration
}

type BracketUnpricedError struct {
	Family     Family
	Components []string
}

func (e *BracketUnpricedError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrBracketUnpriced, e.Family, strings.Join(e.Components, ", "))
}

func (e *BracketUnpricedError) Is(target error) bool {
	return target == ErrBracketUnpriced
}

type PriceTableError struct {
	Problems []string
}

func (e *PriceTableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPriceTable, strings.Join(e.Problems, "; "))
}

func (e *PriceTableError) Is(target error) bool {
	return target == ErrInvalidPriceTable
}
