package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultClearingCost applies to any country without a stored ClearingCost.
const DefaultClearingCost = 10.0

// ClearingCost is the per-country fee applied to card transactions.
type ClearingCost struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CountryCode string    `gorm:"size:2;not null;uniqueIndex" json:"countryCode"`
	Cost        float64   `gorm:"not null" json:"cost"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ClearingCost) TableName() string {
	return "clearing_costs"
}

// ClearingCostInput is the payload for creating or updating a clearing cost.
// Cost is a pointer so that an absent value can be told apart from zero.
type ClearingCostInput struct {
	CountryCode string   `json:"countryCode"`
	Cost        *float64 `json:"cost"`
}

// ClearingCostResponse is the country/cost pair returned to callers.
type ClearingCostResponse struct {
	CountryCode string  `json:"countryCode"`
	Cost        float64 `json:"cost"`
}

// CountryCodeInput is the payload for deleting a clearing cost.
type CountryCodeInput struct {
	CountryCode string `json:"countryCode"`
}

// CardNumberInput is the payload for a card cost lookup. The number is kept
// as a decimal so 19-digit card numbers survive JSON decoding intact; both
// JSON numbers and numeric strings are accepted.
type CardNumberInput struct {
	CardNumber *decimal.Decimal `json:"cardNumber"`
}

// ToResponse converts the stored record to its wire form.
func (c *ClearingCost) ToResponse() ClearingCostResponse {
	return ClearingCostResponse{
		CountryCode: c.CountryCode,
		Cost:        c.Cost,
	}
}
