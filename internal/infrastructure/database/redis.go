package database

import (
	"context"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct{ *redis.Client }

// NewRedis returns a client for the given address; it does not dial.
func NewRedis(addr, pass string, db int) *RedisClient {
	return &RedisClient{redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (c *RedisClient) Ping(ctx context.Context) error { return c.Client.Ping(ctx).Err() }
