package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsKey is the fiber Locals key holding verified JWT claims.
const ClaimsKey = "claims"

// GetClaims extracts the token claims stored by the bearer auth middleware.
// It returns an error if the claims are missing or of an invalid type.
func GetClaims(c *fiber.Ctx) (*jwt.RegisteredClaims, error) {
	v := c.Locals(ClaimsKey)
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}
