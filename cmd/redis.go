package main

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// initRedis leaves a.Redis nil when REDIS_ADDR is not set.
func (a *App) initRedis(ctx context.Context) error {
	if a.Config.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	a.Redis = client

	return nil
}
