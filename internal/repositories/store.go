package repositories

import (
	"context"
	"fmt"

	"cardcost/internal/config"
)

// Store is an opened ClearingCostRepository together with the function that
// releases its connections.
type Store struct {
	ClearingCosts ClearingCostRepository
	Close         func() error
}

// OpenStore opens the backend selected by cfg.Store.Driver.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := OpenPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Store{
			ClearingCosts: NewClearingCostRepository(db),
			Close:         func() error { return CloseDB(db) },
		}, nil
	case config.StoreRedis:
		client, err := OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Store{
			ClearingCosts: NewRedisClearingCostRepository(client),
			Close:         client.Close,
		}, nil
	case config.StoreMemory:
		return &Store{
			ClearingCosts: NewMemoryClearingCostRepository(),
			Close:         func() error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
