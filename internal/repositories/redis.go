package repositories

import (
	"context"

	"cardcost/internal/config"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	logger "github.com/sirupsen/logrus"
)

// OpenRedis creates a client for cfg and verifies the connection.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, pkgerrors.Wrapf(err, "failed to connect to redis at %s", cfg.Addr())
	}

	logger.WithField("addr", cfg.Addr()).Info("Redis connected")
	return client, nil
}
