package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/barman/pkg/metrics"
)

// Redis is a Store backed by a shared Redis instance.
type Redis struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedis connects to addr and verifies the connection with a ping.
func NewRedis(addr, password string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}

	return &Redis{rdb: rdb, ctx: ctx}, nil
}

func (r *Redis) Get(key string, dest interface{}) bool {
	val, err := r.rdb.Get(r.ctx, key).Result()
	if err != nil {
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues("redis").Inc()
	return true
}

func (r *Redis) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.rdb.Set(r.ctx, key, data, ttl).Err()
}

func (r *Redis) Del(keys ...string) error {
	return r.rdb.Del(r.ctx, keys...).Err()
}
