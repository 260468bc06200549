package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis, used for caching the admin-picked
// creations served on the home screen.
func NewRedisClient(cfg *Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
