package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"cardcost/internal/models"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	clearingCostHashKey = "clearing_costs:records"
	clearingCostSeqKey  = "clearing_costs:seq"
)

// redisClearingCostRepository keeps every record as a JSON value in a single
// hash keyed by country code. HSETNX enforces one record per country.
type redisClearingCostRepository struct {
	client *redis.Client
}

func NewRedisClearingCostRepository(client *redis.Client) ClearingCostRepository {
	return &redisClearingCostRepository{client: client}
}

func (r *redisClearingCostRepository) FindByCountryCode(ctx context.Context, countryCode string) (*models.ClearingCost, error) {
	data, err := r.client.HGet(ctx, clearingCostHashKey, countryCode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrClearingCostNotFound
		}
		return nil, pkgerrors.Wrapf(err, "failed to get clearing cost for %s", countryCode)
	}
	return decodeClearingCost(data)
}

func (r *redisClearingCostRepository) Save(ctx context.Context, cost *models.ClearingCost) error {
	if cost.ID == 0 {
		return r.create(ctx, cost)
	}
	return r.update(ctx, cost)
}

func (r *redisClearingCostRepository) create(ctx context.Context, cost *models.ClearingCost) error {
	id, err := r.client.Incr(ctx, clearingCostSeqKey).Result()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to allocate clearing cost id")
	}

	record := *cost
	record.ID = uint(id)
	record.CreatedAt = time.Now().UTC()
	record.UpdatedAt = record.CreatedAt

	data, err := json.Marshal(&record)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to encode clearing cost")
	}

	created, err := r.client.HSetNX(ctx, clearingCostHashKey, record.CountryCode, data).Result()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to save clearing cost")
	}
	if !created {
		return ErrDuplicateCountryCode
	}

	*cost = record
	return nil
}

func (r *redisClearingCostRepository) update(ctx context.Context, cost *models.ClearingCost) error {
	record := *cost
	record.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(&record)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to encode clearing cost")
	}

	// WATCH keeps a concurrent delete from being undone by this write.
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, clearingCostHashKey, record.CountryCode).Result()
		if err != nil {
			return err
		}
		if !exists {
			return ErrClearingCostNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, clearingCostHashKey, record.CountryCode, data)
			return nil
		})
		return err
	}, clearingCostHashKey)
	if err != nil {
		if errors.Is(err, ErrClearingCostNotFound) {
			return err
		}
		return pkgerrors.Wrap(err, "failed to save clearing cost")
	}

	*cost = record
	return nil
}

func (r *redisClearingCostRepository) Delete(ctx context.Context, cost *models.ClearingCost) error {
	removed, err := r.client.HDel(ctx, clearingCostHashKey, cost.CountryCode).Result()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to delete clearing cost")
	}
	if removed == 0 {
		return ErrClearingCostNotFound
	}
	return nil
}

func (r *redisClearingCostRepository) FindAll(ctx context.Context) ([]*models.ClearingCost, error) {
	values, err := r.client.HVals(ctx, clearingCostHashKey).Result()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list clearing costs")
	}

	costs := make([]*models.ClearingCost, 0, len(values))
	for _, v := range values {
		cost, err := decodeClearingCost([]byte(v))
		if err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}
	sort.Slice(costs, func(i, j int) bool { return costs[i].ID < costs[j].ID })
	return costs, nil
}

func (r *redisClearingCostRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return pkgerrors.Wrap(err, "redis connection failed")
	}
	return nil
}

func decodeClearingCost(data []byte) (*models.ClearingCost, error) {
	var cost models.ClearingCost
	if err := json.Unmarshal(data, &cost); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to decode clearing cost")
	}
	return &cost, nil
}
