package usecase

import (
	"context"
	"errors"

	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/infrastructure/metrics"

	"github.com/rs/zerolog/log"
)

// IQuoteUseCase prices a single configuration without persisting anything.
type IQuoteUseCase interface {
	Calculate(ctx context.Context, cfg pricing.Configuration) (pricing.LineItem, error)
}

type QuoteUseCase struct {
	priceTables IPriceTableUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(priceTables IPriceTableUseCase) *QuoteUseCase {
	return &QuoteUseCase{priceTables: priceTables}
}

// Calculate returns the priced line item. An unpriced bracket is not an
// error here: the item comes back flagged RequiresManualQuote.
func (u *QuoteUseCase) Calculate(ctx context.Context, cfg pricing.Configuration) (pricing.LineItem, error) {
	table, err := u.priceTables.Current(ctx)
	if err != nil {
		return pricing.LineItem{}, err
	}
	return calculateItem(cfg, table)
}

func calculateItem(cfg pricing.Configuration, table pricing.PriceTable) (pricing.LineItem, error) {
	item, err := pricing.Calculate(cfg, table)
	switch {
	case err == nil:
		metrics.QuoteCalculations.WithLabelValues(string(cfg.Family), "ok").Inc()
		return item, nil
	case errors.Is(err, pricing.ErrBracketUnpriced):
		metrics.QuoteCalculations.WithLabelValues(string(cfg.Family), "manual_quote").Inc()
		log.Info().Str("family", string(cfg.Family)).Int64("price_table_version", table.Version).Str("detail", err.Error()).
			Msg("[quote][usecase] bracket requires manual quote")
		return item, nil
	case errors.Is(err, pricing.ErrIncompleteConfiguration):
		metrics.QuoteCalculations.WithLabelValues(string(cfg.Family), "incomplete").Inc()
		return pricing.LineItem{}, err
	default:
		metrics.QuoteCalculations.WithLabelValues(string(cfg.Family), "error").Inc()
		return pricing.LineItem{}, err
	}
}
