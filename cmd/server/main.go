// Package main is the entry point for the card cost API.
// It loads configuration, opens the clearing cost store, sets up the HTTP
// server and shuts it down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardcost/internal/config"
	"cardcost/internal/logging"
	"cardcost/internal/repositories"
	"cardcost/internal/routes"
	"cardcost/internal/services/binlist"

	logger "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

func main() {
	config.LoadEnv()

	if err := run(); err != nil {
		logger.Fatal(err)
	}
	logger.Info("Server exited")
}

// run serves until SIGINT/SIGTERM. Returning instead of exiting lets the
// store close on every path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Setup(cfg.Server.LogLevel, cfg.IsProduction())

	store, err := repositories.OpenStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf("Failed to close store: %v", err)
		}
	}()

	app, err := routes.NewApp(cfg, store.ClearingCosts, binlist.NewClient(cfg.Binlist.BaseURL, nil))
	if err != nil {
		return fmt.Errorf("failed to set up routes: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	listenErr := make(chan error, 1)
	go func() {
		logger.WithFields(logger.Fields{
			"addr":  addr,
			"store": cfg.Store.Driver,
			"auth":  cfg.Auth.Mode,
		}).Info("Starting HTTP server")
		listenErr <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-quit:
	}
	logger.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("server shutdown failure: %w", err)
	}
	return nil
}
