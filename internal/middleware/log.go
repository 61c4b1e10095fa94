package middleware

import (
	"time"

	"cardcost/internal/utils"

	"github.com/gofiber/fiber/v2"
	logger "github.com/sirupsen/logrus"
)

// RequestLogger writes one structured access log entry per request, at
// error level for 5xx responses and warn level for 4xx.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		statusCode := c.Response().StatusCode()
		entry := logger.WithFields(logger.Fields{
			"statusCode": statusCode,
			"latency":    time.Since(start).String(),
			"clientIp":   c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"requestId":  c.Locals("requestid"),
			"dataLength": len(c.Response().Body()),
		})
		if claims, err := utils.GetClaims(c); err == nil {
			entry = entry.WithField("subject", claims.Subject)
		}

		switch {
		case statusCode > 499:
			entry.Error("request completed")
		case statusCode > 399:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
		return nil
	}
}
