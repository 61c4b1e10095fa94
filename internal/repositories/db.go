// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"time"

	"cardcost/internal/config"
	"cardcost/internal/models"

	pkgerrors "github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenPostgres connects to PostgreSQL, applies the pool settings and
// migrates the schema.
func OpenPostgres(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), newGormConfig())
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get database instance")
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.WithField("database", cfg.Name).Info("PostgreSQL connected & migrations applied")
	return db, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ClearingCost{}); err != nil {
		return pkgerrors.Wrap(err, "failed to migrate schema")
	}
	return nil
}

// CloseDB closes the connection pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to get database instance")
	}
	return sqlDB.Close()
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		// "record not found" is an expected outcome of FindByCountryCode.
		Logger: gormlogger.New(
			logger.StandardLogger(),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
