package cardcost

import (
	"unicode/utf8"

	apperrors "cardcost/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	countryCodeLength = 2
	minCardDigits     = 8
	maxCardDigits     = 19
)

func validateCountryCode(countryCode string) error {
	if utf8.RuneCountInString(countryCode) != countryCodeLength {
		return apperrors.New(apperrors.CodeInvalidArgument, "Country code must have 2 characters.")
	}
	return nil
}

func validateCost(cost *float64) error {
	if cost == nil || *cost < 0 {
		return apperrors.New(apperrors.CodeInvalidArgument, "Cost cannot be null or negative.")
	}
	return nil
}

// validateCardNumber returns the card number as a plain decimal digit string.
func validateCardNumber(cardNumber *decimal.Decimal) (string, error) {
	if cardNumber == nil {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "Card number cannot be null.")
	}
	if !cardNumber.IsInteger() || cardNumber.Sign() <= 0 {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "Card number must be a positive integer.")
	}

	digits := cardNumber.String()
	if len(digits) < minCardDigits || len(digits) > maxCardDigits {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "Card number must have between 8 and 19 digits.")
	}
	return digits, nil
}
