// Package middleware provides HTTP middleware components for the application.
// It includes authentication and request logging middleware for the fiber
// web framework.
package middleware

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"cardcost/internal/config"
	"cardcost/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// NewAuth builds the authentication middleware for the configured mode.
func NewAuth(cfg config.AuthConfig) (fiber.Handler, error) {
	switch cfg.Mode {
	case config.AuthNone, "":
		return func(c *fiber.Ctx) error { return c.Next() }, nil
	case config.AuthBasic:
		return newBasicAuth(cfg.Username, cfg.PasswordHash)
	case config.AuthJWT:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("jwt auth requires a secret")
		}
		return NewBearerAuth([]byte(cfg.JWTSecret)), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// newBasicAuth checks HTTP basic credentials against a single user whose
// password is stored as a bcrypt hash.
func newBasicAuth(username, passwordHash string) (fiber.Handler, error) {
	hash := []byte(passwordHash)
	if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}

	return basicauth.New(basicauth.Config{
		Realm: "cardcost",
		Authorizer: func(user, pass string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passOK := bcrypt.CompareHashAndPassword(hash, []byte(pass)) == nil
			return userOK && passOK
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="cardcost"`)
			return utils.Unauthorized(c, "invalid credentials")
		},
	}), nil
}

// NewBearerAuth validates HS256-signed JWTs from the Authorization header and
// stores the claims in the request locals.
func NewBearerAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.Unauthorized(c, "missing authorization header")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "invalid authorization format")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			logger.WithError(err).Debug("token validation failed")
			return utils.Unauthorized(c, "invalid token")
		}

		c.Locals(utils.ClaimsKey, claims)
		return c.Next()
	}
}
