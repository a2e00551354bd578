package service

import (
	"context"
	"encoding/json"
	"time"

	"healthtrack/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	DoctorDirectoryKey  = "clinic:directory:doctors"
	PatientDirectoryKey = "clinic:directory:patients"
)

// DirectoryCache keeps the doctor and patient pick-lists in Redis. Every
// method falls back to the loader when Redis is absent or failing, so the
// database stays the source of truth.
type DirectoryCache interface {
	Doctors(ctx context.Context, load func() ([]entity.Doctor, error)) ([]entity.Doctor, error)
	Patients(ctx context.Context, load func() ([]entity.Patient, error)) ([]entity.Patient, error)
	InvalidateDoctors(ctx context.Context)
	InvalidatePatients(ctx context.Context)
}

type directoryCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

// NewDirectoryCache builds a cache over redisClient. A nil client yields a
// pass-through cache.
func NewDirectoryCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) DirectoryCache {
	return &directoryCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *directoryCache) Doctors(ctx context.Context, load func() ([]entity.Doctor, error)) ([]entity.Doctor, error) {
	return readThrough(ctx, c, DoctorDirectoryKey, load)
}

func (c *directoryCache) Patients(ctx context.Context, load func() ([]entity.Patient, error)) ([]entity.Patient, error) {
	return readThrough(ctx, c, PatientDirectoryKey, load)
}

func (c *directoryCache) InvalidateDoctors(ctx context.Context) {
	c.invalidate(ctx, DoctorDirectoryKey)
}

func (c *directoryCache) InvalidatePatients(ctx context.Context) {
	c.invalidate(ctx, PatientDirectoryKey)
}

func (c *directoryCache) invalidate(ctx context.Context, key string) {
	if c.redisClient == nil {
		return
	}
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.log.Warnf("Failed to invalidate %s: %+v", key, err)
	}
}

func readThrough[T any](ctx context.Context, c *directoryCache, key string, load func() ([]T, error)) ([]T, error) {
	if c.redisClient == nil {
		return load()
	}

	cached, err := c.redisClient.Get(ctx, key).Result()
	switch {
	case err == nil:
		var items []T
		if jsonErr := json.Unmarshal([]byte(cached), &items); jsonErr == nil {
			return items, nil
		}
		c.log.Warnf("Discarding malformed cache entry %s", key)
	case err != redis.Nil:
		c.log.Warnf("Failed to read %s from Redis: %+v", key, err)
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		c.log.Warnf("Failed to encode %s: %+v", key, err)
		return items, nil
	}
	if err := c.redisClient.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write %s to Redis: %+v", key, err)
	}
	return items, nil
}
