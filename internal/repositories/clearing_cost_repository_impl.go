package repositories

import (
	"context"
	"errors"

	"cardcost/internal/models"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type clearingCostRepository struct {
	db *gorm.DB
}

// NewClearingCostRepository returns a gorm-backed repository. The *gorm.DB
// should be opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
func NewClearingCostRepository(db *gorm.DB) ClearingCostRepository {
	return &clearingCostRepository{
		db: db,
	}
}

func (r *clearingCostRepository) FindByCountryCode(ctx context.Context, countryCode string) (*models.ClearingCost, error) {
	var cost models.ClearingCost
	if err := r.db.WithContext(ctx).Where("country_code = ?", countryCode).First(&cost).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClearingCostNotFound
		}
		return nil, pkgerrors.Wrapf(err, "failed to get clearing cost for %s", countryCode)
	}
	return &cost, nil
}

func (r *clearingCostRepository) Save(ctx context.Context, cost *models.ClearingCost) error {
	if cost.ID == 0 {
		if err := r.db.WithContext(ctx).Create(cost).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCountryCode
			}
			return pkgerrors.Wrap(err, "failed to save clearing cost")
		}
		return nil
	}

	// Never upsert: a record deleted since it was read stays deleted.
	result := r.db.WithContext(ctx).Model(cost).Update("cost", cost.Cost)
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to update clearing cost")
	}
	if result.RowsAffected == 0 {
		return ErrClearingCostNotFound
	}
	return nil
}

func (r *clearingCostRepository) Delete(ctx context.Context, cost *models.ClearingCost) error {
	result := r.db.WithContext(ctx).Delete(&models.ClearingCost{}, cost.ID)
	if result.Error != nil {
		return pkgerrors.Wrap(result.Error, "failed to delete clearing cost")
	}
	if result.RowsAffected == 0 {
		return ErrClearingCostNotFound
	}
	return nil
}

func (r *clearingCostRepository) FindAll(ctx context.Context) ([]*models.ClearingCost, error) {
	var costs []*models.ClearingCost
	if err := r.db.WithContext(ctx).Order("id").Find(&costs).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list clearing costs")
	}
	return costs, nil
}

func (r *clearingCostRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to get database instance")
	}
	return sqlDB.PingContext(ctx)
}
