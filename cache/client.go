package cache

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the process-wide Redis client from the environment.
// Returns nil when REDIS_HOST is unset; callers treat a nil client as
// "caching disabled" and read straight from the database.
func NewRedisClient() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     host + ":" + os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
