package usecase

import (
	"context"
	"errors"
	"testing"

	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase/interfaces"
	mock_interfaces "cotador_telecom/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPriceTableUseCase_Current(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceTableCache(ctrl)
		uc := NewPriceTableUseCase(repo, cache)

		cached := pricing.DefaultPriceTable()
		cached.Version = 7
		cache.EXPECT().Get(gomock.Any()).Return(cached, true, nil)

		got, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 7 {
			t.Fatalf("expected cached version 7, got %d", got.Version)
		}
	})

	t.Run("cache miss loads and stores latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceTableCache(ctrl)
		uc := NewPriceTableUseCase(repo, cache)

		latest := pricing.DefaultPriceTable()
		latest.Version = 3
		cache.EXPECT().Get(gomock.Any()).Return(pricing.PriceTable{}, false, nil)
		repo.EXPECT().Latest(gomock.Any()).Return(latest, true, nil)
		cache.EXPECT().Set(gomock.Any(), latest).Return(nil)

		got, err := uc.Current(context.Background())
		if err != nil || got.Version != 3 {
			t.Fatalf("expected version 3, got %d err=%v", got.Version, err)
		}
	})

	t.Run("cache error falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceTableCache(ctrl)
		uc := NewPriceTableUseCase(repo, cache)

		cache.EXPECT().Get(gomock.Any()).Return(pricing.PriceTable{}, false, errors.New("redis down"))
		repo.EXPECT().Latest(gomock.Any()).Return(pricing.PriceTable{}, false, nil)

		got, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 0 || len(got.PABX) == 0 {
			t.Fatalf("expected seed table, got %+v", got)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPriceTableUseCase(repo, nil)

		repo.EXPECT().Latest(gomock.Any()).Return(pricing.PriceTable{}, false, errors.New("db"))

		if _, err := uc.Current(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPriceTableUseCase_GetVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
	uc := NewPriceTableUseCase(repo, nil)

	if _, err := uc.GetVersion(context.Background(), -1); !errors.Is(err, ErrInvalidPriceTableVersion) {
		t.Fatalf("expected ErrInvalidPriceTableVersion, got %v", err)
	}

	repo.EXPECT().GetByVersion(gomock.Any(), int64(9)).Return(pricing.PriceTable{}, false, nil)
	if _, err := uc.GetVersion(context.Background(), 9); !errors.Is(err, ErrPriceTableNotFound) {
		t.Fatalf("expected ErrPriceTableNotFound, got %v", err)
	}

	repo.EXPECT().GetByVersion(gomock.Any(), int64(0)).Return(pricing.PriceTable{}, false, nil)
	seed, err := uc.GetVersion(context.Background(), 0)
	if err != nil || len(seed.PABX) == 0 {
		t.Fatalf("expected seed table for version 0, got err=%v", err)
	}
}

func TestPriceTableUseCase_Publish(t *testing.T) {
	t.Run("non admin is forbidden", func(t *testing.T) {
		uc := NewPriceTableUseCase(nil, nil)
		if _, err := uc.Publish(context.Background(), salesUser, pricing.DefaultPriceTable()); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid table is rejected before persistence", func(t *testing.T) {
		uc := NewPriceTableUseCase(nil, nil)
		table := pricing.DefaultPriceTable()
		table.PABX[2].UpTo = 1

		if _, err := uc.Publish(context.Background(), admin, table); !errors.Is(err, pricing.ErrInvalidPriceTable) {
			t.Fatalf("expected ErrInvalidPriceTable, got %v", err)
		}
	})

	t.Run("assigns next version and caches it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceTableCache(ctrl)
		uc := NewPriceTableUseCase(repo, cache)

		latest := pricing.DefaultPriceTable()
		latest.Version = 4
		repo.EXPECT().Latest(gomock.Any()).Return(latest, true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(pricing.PriceTable{})).DoAndReturn(
			func(_ context.Context, table pricing.PriceTable) (pricing.PriceTable, error) {
				if table.Version != 5 || table.UpdatedBy != admin.UserID || table.EffectiveAt.IsZero() {
					t.Fatalf("unexpected table metadata: version=%d by=%q at=%v", table.Version, table.UpdatedBy, table.EffectiveAt)
				}
				return table, nil
			},
		)
		cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(pricing.PriceTable{})).DoAndReturn(
			func(_ context.Context, table pricing.PriceTable) error {
				if table.Version != 5 {
					t.Fatalf("expected published version cached, got %d", table.Version)
				}
				return nil
			},
		)

		got, err := uc.Publish(context.Background(), admin, pricing.DefaultPriceTable())
		if err != nil || got.Version != 5 {
			t.Fatalf("expected version 5, got %d err=%v", got.Version, err)
		}
	})

	t.Run("invalidates cache when refresh fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceTableCache(ctrl)
		uc := NewPriceTableUseCase(repo, cache)

		repo.EXPECT().Latest(gomock.Any()).Return(pricing.PriceTable{}, false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, table pricing.PriceTable) (pricing.PriceTable, error) { return table, nil },
		)
		gomock.InOrder(
			cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down")),
			cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		)

		if _, err := uc.Publish(context.Background(), admin, pricing.DefaultPriceTable()); err != nil {
			t.Fatalf("cache failure must not fail publish: %v", err)
		}
	})

	t.Run("first publish is version 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPriceTableUseCase(repo, nil)

		repo.EXPECT().Latest(gomock.Any()).Return(pricing.PriceTable{}, false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, table pricing.PriceTable) (pricing.PriceTable, error) { return table, nil },
		)

		got, err := uc.Publish(context.Background(), admin, pricing.DefaultPriceTable())
		if err != nil || got.Version != 1 {
			t.Fatalf("expected version 1, got %d err=%v", got.Version, err)
		}
	})

	t.Run("version race surfaces as concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPriceTableUseCase(repo, nil)

		repo.EXPECT().Latest(gomock.Any()).Return(pricing.PriceTable{}, false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pricing.PriceTable{}, interfaces.ErrConcurrentUpdate)

		if _, err := uc.Publish(context.Background(), admin, pricing.DefaultPriceTable()); !errors.Is(err, interfaces.ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}
