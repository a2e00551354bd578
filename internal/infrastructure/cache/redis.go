package cache

import (
	"context"
	"fmt"
	"time"

	"healthtrack/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis when a host is configured. A nil client
// with a nil error means caching is disabled.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		logrus.Info("Redis host not configured, pick-list cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}
