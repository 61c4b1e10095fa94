package cardcost

import (
	"context"
	"errors"

	apperrors "cardcost/internal/errors"
	"cardcost/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByCountryCode(ctx context.Context, countryCode string) (*models.ClearingCost, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClearingCost), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, cost *models.ClearingCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, cost *models.ClearingCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*models.ClearingCost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ClearingCost), args.Error(1)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveCountry(ctx context.Context, cardNumber string) (string, error) {
	args := m.Called(ctx, cardNumber)
	return args.String(0), args.Error(1)
}

// codeOf returns the code of the first DomainError in err's chain, or "".
func codeOf(err error) apperrors.Code {
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
