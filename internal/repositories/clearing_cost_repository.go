package repositories

import (
	"context"
	"errors"

	"cardcost/internal/models"
)

var (
	ErrClearingCostNotFound = errors.New("clearing cost not found")
	ErrDuplicateCountryCode = errors.New("clearing cost already exists for country code")
)

// ClearingCostRepository persists clearing costs keyed by country code.
// Implementations own uniqueness of CountryCode and their own concurrency control.
type ClearingCostRepository interface {
	// FindByCountryCode returns ErrClearingCostNotFound when no record matches.
	FindByCountryCode(ctx context.Context, countryCode string) (*models.ClearingCost, error)
	// Save inserts the record when its ID is zero and updates it otherwise.
	// Inserting a second record for a country returns ErrDuplicateCountryCode.
	Save(ctx context.Context, cost *models.ClearingCost) error
	Delete(ctx context.Context, cost *models.ClearingCost) error
	// FindAll returns every record in insertion (ID) order.
	FindAll(ctx context.Context) ([]*models.ClearingCost, error)
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
