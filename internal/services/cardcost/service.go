package cardcost

import (
	"context"
	"errors"
	"fmt"

	apperrors "cardcost/internal/errors"
	"cardcost/internal/models"
	"cardcost/internal/repositories"
	"cardcost/internal/services/binlist"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"
)

// Service validates clearing cost requests and prices cards by issuing country.
type Service struct {
	repo     repositories.ClearingCostRepository
	resolver binlist.Resolver
}

// NewService creates a clearing cost service over repo, resolving card
// countries through resolver.
func NewService(repo repositories.ClearingCostRepository, resolver binlist.Resolver) *Service {
	if repo == nil {
		panic("repo is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	return &Service{
		repo:     repo,
		resolver: resolver,
	}
}

// CreateClearingCost stores a new cost for a country. Uniqueness of the
// country code is left to the store.
func (s *Service) CreateClearingCost(ctx context.Context, input models.ClearingCostInput) error {
	if err := validateCountryCode(input.CountryCode); err != nil {
		return err
	}
	if err := validateCost(input.Cost); err != nil {
		return err
	}

	record := &models.ClearingCost{
		CountryCode: input.CountryCode,
		Cost:        *input.Cost,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCountryCode) {
			return apperrors.Newf(apperrors.CodeConflict, "Clearing cost for country %s already exists.", input.CountryCode)
		}
		return fmt.Errorf("failed to create clearing cost: %w", err)
	}
	return nil
}

// DeleteClearingCost removes the record for countryCode permanently.
func (s *Service) DeleteClearingCost(ctx context.Context, countryCode string) error {
	if err := validateCountryCode(countryCode); err != nil {
		return err
	}

	record, err := s.find(ctx, countryCode)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrClearingCostNotFound) {
			return countryNotFound()
		}
		return fmt.Errorf("failed to delete clearing cost: %w", err)
	}
	return nil
}

// UpdateClearingCost overwrites the cost of an existing record. The country
// code identifies the record and is never changed.
func (s *Service) UpdateClearingCost(ctx context.Context, input models.ClearingCostInput) (*models.ClearingCostResponse, error) {
	if err := validateCountryCode(input.CountryCode); err != nil {
		return nil, err
	}
	if err := validateCost(input.Cost); err != nil {
		return nil, err
	}

	record, err := s.find(ctx, input.CountryCode)
	if err != nil {
		return nil, err
	}

	record.Cost = *input.Cost
	if err := s.repo.Save(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrClearingCostNotFound) {
			return nil, countryNotFound()
		}
		return nil, fmt.Errorf("failed to update clearing cost: %w", err)
	}

	resp := record.ToResponse()
	return &resp, nil
}

// GetClearingCost returns the stored cost for countryCode.
func (s *Service) GetClearingCost(ctx context.Context, countryCode string) (*models.ClearingCostResponse, error) {
	if err := validateCountryCode(countryCode); err != nil {
		return nil, err
	}

	record, err := s.find(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	resp := record.ToResponse()
	return &resp, nil
}

// GetAllClearingCosts lists every record in store order. An empty store is
// reported as NOT_FOUND rather than an empty list.
func (s *Service) GetAllClearingCosts(ctx context.Context) ([]models.ClearingCostResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clearing costs: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "No clearing costs found.")
	}

	costs := make([]models.ClearingCostResponse, 0, len(records))
	for _, record := range records {
		costs = append(costs, record.ToResponse())
	}
	return costs, nil
}

// GetCardCost resolves the issuing country of cardNumber and returns the
// clearing cost for it, or models.DefaultClearingCost if none is stored.
func (s *Service) GetCardCost(ctx context.Context, cardNumber *decimal.Decimal) (*models.ClearingCostResponse, error) {
	digits, err := validateCardNumber(cardNumber)
	if err != nil {
		return nil, err
	}

	countryCode, err := s.resolver.ResolveCountry(ctx, digits)
	if err != nil {
		return nil, lookupFailure(err)
	}

	cost := models.DefaultClearingCost
	record, err := s.repo.FindByCountryCode(ctx, countryCode)
	switch {
	case err == nil:
		cost = record.Cost
	case !errors.Is(err, repositories.ErrClearingCostNotFound):
		logger.WithError(err).WithField("country_code", countryCode).
			Warn("clearing cost lookup failed, applying default cost")
	}

	return &models.ClearingCostResponse{
		CountryCode: countryCode,
		Cost:        cost,
	}, nil
}

func (s *Service) find(ctx context.Context, countryCode string) (*models.ClearingCost, error) {
	record, err := s.repo.FindByCountryCode(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repositories.ErrClearingCostNotFound) {
			return nil, countryNotFound()
		}
		return nil, fmt.Errorf("failed to get clearing cost: %w", err)
	}
	return record, nil
}

func countryNotFound() error {
	return apperrors.New(apperrors.CodeNotFound, "Country not found.")
}

// lookupFailure maps a resolver error onto the domain taxonomy.
func lookupFailure(err error) error {
	var lerr *binlist.LookupError
	if !errors.As(err, &lerr) {
		return apperrors.New(apperrors.CodeUpstream, "An error occurred. Error: "+err.Error())
	}

	switch lerr.Kind {
	case binlist.KindNotFound:
		return apperrors.New(apperrors.CodeNotFound, "Country not found. Error: "+lerr.Message)
	case binlist.KindRateLimited:
		return apperrors.New(apperrors.CodeRateLimited, "Too many requests. Error: "+lerr.Message)
	default:
		return apperrors.New(apperrors.CodeUpstream, "An error occurred. Error: "+lerr.Message)
	}
}
