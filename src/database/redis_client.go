package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisOptions accepts either host:port (เช่น localhost:6379) or a redis:// URL.
func RedisOptions(uri string) (*redis.Options, error) {
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		return redis.ParseURL(uri)
	}
	return &redis.Options{Addr: uri, DB: 0}, nil
}

func NewRedis(ctx context.Context, uri string) (*redis.Client, error) {
	opts, err := RedisOptions(uri)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect Redis: %w", err)
	}
	return client, nil
}
