package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/infrastructure/metrics"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrPriceTableNotFound       = errors.New("price table version not found")
	ErrInvalidPriceTableVersion = errors.New("invalid price table version")
)

// IPriceTableUseCase exposes the versioned price table.
type IPriceTableUseCase interface {
	Current(ctx context.Context) (pricing.PriceTable, error)
	GetVersion(ctx context.Context, version int64) (pricing.PriceTable, error)
	Publish(ctx context.Context, principal authz.Principal, table pricing.PriceTable) (pricing.PriceTable, error)
}

type PriceTableUseCase struct {
	repo  interfaces.IPriceTableRepository
	cache interfaces.IPriceTableCache
}

var _ IPriceTableUseCase = (*PriceTableUseCase)(nil)

// NewPriceTableUseCase builds the use case. cache may be nil.
func NewPriceTableUseCase(repo interfaces.IPriceTableRepository, cache interfaces.IPriceTableCache) *PriceTableUseCase {
	return &PriceTableUseCase{repo: repo, cache: cache}
}

// Current returns the snapshot in effect: cache, then repository, then the
// built-in seed table when nothing was published yet.
func (u *PriceTableUseCase) Current(ctx context.Context) (pricing.PriceTable, error) {
	if u.cache != nil {
		table, ok, err := u.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.PriceTableCache.WithLabelValues("error").Inc()
			log.Warn().Err(err).Msg("[pricetable][usecase] cache read failed; falling back to repository")
		case ok:
			metrics.PriceTableCache.WithLabelValues("hit").Inc()
			return table, nil
		default:
			metrics.PriceTableCache.WithLabelValues("miss").Inc()
		}
	}

	table, ok, err := u.repo.Latest(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[pricetable][usecase] load latest failed")
		return pricing.PriceTable{}, err
	}
	if !ok {
		log.Debug().Msg("[pricetable][usecase] no published table; using seed table")
		return pricing.DefaultPriceTable(), nil
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, table); err != nil {
			log.Warn().Err(err).Int64("version", table.Version).Msg("[pricetable][usecase] cache write failed")
		}
	}
	return table, nil
}

func (u *PriceTableUseCase) GetVersion(ctx context.Context, version int64) (pricing.PriceTable, error) {
	if version < 0 {
		return pricing.PriceTable{}, ErrInvalidPriceTableVersion
	}
	table, ok, err := u.repo.GetByVersion(ctx, version)
	if err != nil {
		return pricing.PriceTable{}, err
	}
	if !ok {
		if version == 0 {
			return pricing.DefaultPriceTable(), nil
		}
		return pricing.PriceTable{}, ErrPriceTableNotFound
	}
	return table, nil
}

// Publish stores table as the next version and makes it the cached snapshot.
// Stored versions are never rewritten, so proposals keep pointing at the
// snapshot they were priced on.
func (u *PriceTableUseCase) Publish(ctx context.Context, principal authz.Principal, table pricing.PriceTable) (pricing.PriceTable, error) {
	if !authz.Can(principal, authz.ActionPriceTableEdit) {
		return pricing.PriceTable{}, ErrForbidden
	}
	if err := table.Validate(); err != nil {
		return pricing.PriceTable{}, err
	}

	latest, ok, err := u.repo.Latest(ctx)
	if err != nil {
		return pricing.PriceTable{}, err
	}
	next := int64(1)
	if ok {
		next = latest.Version + 1
	}

	table.Version = next
	table.EffectiveAt = time.Now().UTC()
	table.UpdatedBy = strings.TrimSpace(principal.UserID)

	created, err := u.repo.Create(ctx, table)
	if err != nil {
		if errors.Is(err, interfaces.ErrConcurrentUpdate) {
			return pricing.PriceTable{}, fmt.Errorf("publish version %d: %w", next, err)
		}
		log.Error().Err(err).Int64("version", next).Msg("[pricetable][usecase] publish failed")
		return pricing.PriceTable{}, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, created); err != nil {
			log.Warn().Err(err).Int64("version", created.Version).Msg("[pricetable][usecase] cache refresh failed; invalidating")
			if err := u.cache.Invalidate(ctx); err != nil {
				log.Warn().Err(err).Msg("[pricetable][usecase] cache invalidation failed")
			}
		}
	}
	log.Info().Int64("version", created.Version).Str("updated_by", created.UpdatedBy).Msg("[pricetable][usecase] published")
	return created, nil
}
