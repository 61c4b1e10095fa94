// Package config loads application settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

// Auth modes.
const (
	AuthNone  = "none"
	AuthBasic = "basic"
	AuthJWT   = "jwt"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `validate:"required"`
	Store    StoreConfig    `validate:"required"`
	Database DatabaseConfig `validate:"required"`
	Redis    RedisConfig    `validate:"required"`
	Binlist  BinlistConfig  `validate:"required"`
	Auth     AuthConfig     `validate:"required"`
}

type ServerConfig struct {
	Port             int    `validate:"required,gt=0,lt=65536"`
	Env              string `validate:"required"`
	LogLevel         string `validate:"required,oneof=debug info warn error"`
	CORSAllowOrigins string
	// CardCostRateLimit is requests per minute per client IP; 0 disables limiting.
	CardCostRateLimit int `validate:"gte=0"`
}

type StoreConfig struct {
	Driver string `validate:"required,oneof=postgres redis memory"`
}

type DatabaseConfig struct {
	Host            string `validate:"required"`
	Port            int    `validate:"gt=0,lt=65536"`
	User            string
	Password        string
	Name            string `validate:"required"`
	SSLMode         string `validate:"required"`
	MaxIdleConns    int    `validate:"gte=0"`
	MaxOpenConns    int    `validate:"gte=0"`
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	Password string
	DB       int `validate:"gte=0"`
}

type BinlistConfig struct {
	BaseURL string `validate:"required,url"`
}

type AuthConfig struct {
	Mode         string `validate:"required,oneof=none basic jwt"`
	Username     string `validate:"required_if=Mode basic"`
	PasswordHash string `validate:"required_if=Mode basic"`
	JWTSecret    string `validate:"required_if=Mode jwt,omitempty,min=32"`
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// Addr returns the redis host:port address.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file found: %v", err)
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              GetIntEnv("PORT", 3000),
			Env:               GetEnv("ENV", "development"),
			LogLevel:          GetEnv("LOG_LEVEL", "info"),
			CORSAllowOrigins:  GetEnv("CORS_ALLOW_ORIGINS", "*"),
			CardCostRateLimit: GetIntEnv("CARD_COST_RATE_LIMIT", 0),
		},
		Store: StoreConfig{
			Driver: GetEnv("STORE_DRIVER", StorePostgres),
		},
		Database: DatabaseConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetIntEnv("DB_PORT", 5432),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "cardcost"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		Binlist: BinlistConfig{
			BaseURL: GetEnv("BINLIST_URL", "https://lookup.binlist.net/"),
		},
		Auth: AuthConfig{
			Mode:         GetEnv("AUTH_MODE", AuthNone),
			Username:     GetEnv("AUTH_USERNAME", ""),
			PasswordHash: GetEnv("AUTH_PASSWORD_HASH", ""),
			JWTSecret:    GetEnv("AUTH_JWT_SECRET", ""),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
