package interfaces

import (
	"context"

	"cotador_telecom/internal/domain/pricing"
)

// IPriceTableRepository stores immutable price table versions.
type IPriceTableRepository interface {
	// Latest reports ok=false when no version has been published yet.
	Latest(ctx context.Context) (table pricing.PriceTable, ok bool, err error)
	GetByVersion(ctx context.Context, version int64) (table pricing.PriceTable, ok bool, err error)
	// Create fails with ErrConcurrentUpdate when the version already exists.
	Create(ctx context.Context, table pricing.PriceTable) (pricing.PriceTable, error)
}

// IPriceTableCache holds the current snapshot between requests.
type IPriceTableCache interface {
	Get(ctx context.Context) (table pricing.PriceTable, ok bool, err error)
	Set(ctx context.Context, table pricing.PriceTable) error
	Invalidate(ctx context.Context) error
}
