// Package routes builds the fiber application and defines the API routing
// configuration, including middleware and authentication requirements.
package routes

import (
	"time"

	"cardcost/internal/config"
	"cardcost/internal/handlers"
	"cardcost/internal/middleware"
	"cardcost/internal/repositories"
	"cardcost/internal/services/binlist"
	"cardcost/internal/services/cardcost"
	"cardcost/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const Version = "1.0.0"

// NewApp creates the fiber app with its middleware stack and all routes.
func NewApp(cfg *config.Config, repo repositories.ClearingCostRepository, resolver binlist.Resolver) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      "cardcost",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE",
	}))

	if err := SetupRoutes(app, cfg, repo, resolver); err != nil {
		return nil, err
	}
	return app, nil
}

// SetupRoutes registers the health endpoints and the authenticated
// /card-cost API.
func SetupRoutes(app *fiber.App, cfg *config.Config, repo repositories.ClearingCostRepository, resolver binlist.Resolver) error {
	auth, err := middleware.NewAuth(cfg.Auth)
	if err != nil {
		return err
	}

	cardCostHandler := handlers.NewCardCostHandler(cardcost.NewService(repo, resolver))
	healthHandler := handlers.NewHealthHandler(repo, Version)

	// Public endpoints
	app.Get("/health", healthHandler.Live)
	app.Get("/ready", healthHandler.Ready)

	cardCost := app.Group("/card-cost", auth)
	cardCost.Post("/", cardCostHandler.CreateClearingCost)
	cardCost.Delete("/", cardCostHandler.DeleteClearingCost)
	cardCost.Put("/", cardCostHandler.UpdateClearingCost)
	cardCost.Get("/", cardCostHandler.GetAllClearingCosts)
	cardCost.Post("/payment-cards-cost", cardCostRateLimit(cfg.Server.CardCostRateLimit), cardCostHandler.GetCardCost)
	cardCost.Get("/:countryCode", cardCostHandler.GetClearingCost)

	return nil
}

// cardCostRateLimit caps card lookups per client IP to protect the BIN
// service quota. A limit of 0 disables it.
func cardCostRateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.TooManyRequests(c, "Too many requests. Please try again later.")
		},
	})
}
