package db

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis dials the provider-cache store. The app runs without it; the
// caller decides whether a missing REDIS_URL is acceptable.
func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(context.Background()).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
