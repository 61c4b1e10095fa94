// Command seed loads clearing costs from a JSON file into the configured
// store. Countries that already have a cost are updated in place.
//
//	seed -file costs.json
//
// where costs.json holds [{"countryCode": "US", "cost": 5}, ...].
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"cardcost/internal/config"
	apperrors "cardcost/internal/errors"
	"cardcost/internal/logging"
	"cardcost/internal/models"
	"cardcost/internal/repositories"
	"cardcost/internal/services/binlist"
	"cardcost/internal/services/cardcost"

	logger "github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "clearing_costs.json", "JSON file with clearing costs")
	flag.Parse()

	config.LoadEnv()
	if err := run(*file); err != nil {
		logger.Fatal(err)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Setup(cfg.Server.LogLevel, cfg.IsProduction())

	inputs, err := readInputs(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ctx := context.Background()
	store, err := repositories.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf("Failed to close store: %v", err)
		}
	}()

	svc := cardcost.NewService(store.ClearingCosts, binlist.NewClient(cfg.Binlist.BaseURL, nil))
	created, updated, err := seed(ctx, svc, inputs)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.WithFields(logger.Fields{
		"created": created,
		"updated": updated,
	}).Info("Clearing costs seeded")
	return nil
}

func readInputs(path string) ([]models.ClearingCostInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inputs []models.ClearingCostInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, err
	}
	return inputs, nil
}

// seed creates each clearing cost, falling back to an update when the
// country already has one.
func seed(ctx context.Context, svc *cardcost.Service, inputs []models.ClearingCostInput) (created, updated int, err error) {
	for _, input := range inputs {
		err := svc.CreateClearingCost(ctx, input)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrConflict):
			if _, err := svc.UpdateClearingCost(ctx, input); err != nil {
				return created, updated, err
			}
			updated++
		default:
			return created, updated, err
		}
	}
	return created, updated, nil
}
