// Package redis opens the Redis connection backing the list cache.
package redis

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance named by REDIS_HOST,
// REDIS_PORT and REDIS_PASSWORD. Missing host/port default to the local
// instance. The connection is verified with a short ping before being
// handed out.
func NewRedisClient() (*redis.Client, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", rdb.Options().Addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", rdb.Options().Addr)
	return rdb, nil
}
