package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// ErrCacheMiss is returned by GetCached when the key does not exist.
var ErrCacheMiss = redis.Nil

// SetCached stores a JSON-encoded value under key with a TTL. Used as the
// time-boxed page cache for read-only endpoints; entries are never
// invalidated on writes, only expired.
func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Error("Failed to write cache entry", err, map[string]interface{}{
			"key": key,
		})
		return err
	}
	return nil
}

// GetCached loads a JSON-encoded value into dest. Returns ErrCacheMiss when
// the key is absent or expired.
func GetCached(ctx context.Context, key string, dest interface{}) error {
	if client == nil {
		return ErrCacheMiss
	}

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Error("Failed to read cache entry", err, map[string]interface{}{
				"key": key,
			})
		}
		return err
	}
	return json.Unmarshal(data, dest)
}
