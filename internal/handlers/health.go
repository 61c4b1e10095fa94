package handlers

import (
	"context"
	"time"

	"cardcost/internal/repositories"

	"github.com/gofiber/fiber/v2"
	logger "github.com/sirupsen/logrus"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	repo    repositories.ClearingCostRepository
	version string
}

func NewHealthHandler(repo repositories.ClearingCostRepository, version string) *HealthHandler {
	return &HealthHandler{repo: repo, version: version}
}

// Live reports that the process is serving requests.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready reports whether the clearing cost store is reachable.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		logger.WithError(err).Warn("readiness check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"store":  "disconnected",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"store":  "connected",
	})
}
