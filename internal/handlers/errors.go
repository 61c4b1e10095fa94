package handlers

import (
	"errors"

	apperrors "cardcost/internal/errors"
	"cardcost/internal/utils"

	"github.com/gofiber/fiber/v2"
	logger "github.com/sirupsen/logrus"
)

// errorStatuses maps domain error kinds to HTTP statuses, matched with errors.Is.
var errorStatuses = []struct {
	target error
	status int
}{
	{apperrors.ErrInvalidArgument, fiber.StatusBadRequest},
	{apperrors.ErrNotFound, fiber.StatusNotFound},
	{apperrors.ErrConflict, fiber.StatusConflict},
	{apperrors.ErrRateLimited, fiber.StatusTooManyRequests},
	{apperrors.ErrUpstream, fiber.StatusInternalServerError},
}

// respondError maps a service error to its HTTP status. Errors outside the
// domain taxonomy are logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, err error) error {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return utils.Error(c, e.status, err.Error())
		}
	}

	logger.WithError(err).WithFields(logger.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("request failed")
	return utils.InternalError(c, "Internal server error")
}

// ErrorHandler renders errors returned from handlers and middleware as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.Error(c, fe.Code, fe.Message)
	}
	return respondError(c, err)
}
