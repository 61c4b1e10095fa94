package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"cardcost/internal/models"
)

// memoryClearingCostRepository is a process-local store for development and tests.
type memoryClearingCostRepository struct {
	mu      sync.RWMutex
	records map[string]models.ClearingCost
	seq     uint
}

func NewMemoryClearingCostRepository() ClearingCostRepository {
	return &memoryClearingCostRepository{
		records: make(map[string]models.ClearingCost),
	}
}

func (r *memoryClearingCostRepository) FindByCountryCode(_ context.Context, countryCode string) (*models.ClearingCost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[countryCode]
	if !ok {
		return nil, ErrClearingCostNotFound
	}
	return &record, nil
}

func (r *memoryClearingCostRepository) Save(_ context.Context, cost *models.ClearingCost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	existing, exists := r.records[cost.CountryCode]

	if cost.ID == 0 {
		if exists {
			return ErrDuplicateCountryCode
		}
		r.seq++
		cost.ID = r.seq
		cost.CreatedAt = now
	} else if !exists || existing.ID != cost.ID {
		return ErrClearingCostNotFound
	}

	cost.UpdatedAt = now
	r.records[cost.CountryCode] = *cost
	return nil
}

func (r *memoryClearingCostRepository) Delete(_ context.Context, cost *models.ClearingCost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[cost.CountryCode]; !ok {
		return ErrClearingCostNotFound
	}
	delete(r.records, cost.CountryCode)
	return nil
}

func (r *memoryClearingCostRepository) FindAll(_ context.Context) ([]*models.ClearingCost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	costs := make([]*models.ClearingCost, 0, len(r.records))
	for _, record := range r.records {
		record := record
		costs = append(costs, &record)
	}
	sort.Slice(costs, func(i, j int) bool { return costs[i].ID < costs[j].ID })
	return costs, nil
}

func (r *memoryClearingCostRepository) Ping(context.Context) error {
	return nil
}
