package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService owns the client used to read the published inventory snapshot.
type RedisService struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisService(rdb *redis.Client, prefix string) *RedisService {
	return &RedisService{
		rdb:    rdb,
		prefix: prefix,
	}
}

// Connect builds a client and pings it.
func Connect(ctx context.Context, opts *redis.Options, prefix string) (*RedisService, error) {
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", opts.Addr, err)
	}
	return NewRedisService(rdb, prefix), nil
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

// Key namespaces name under the configured prefix.
func (a *RedisService) Key(name string) string {
	if a.prefix == "" {
		return name
	}
	return a.prefix + ":" + name
}

// Get returns the raw value stored at the namespaced key.
func (a *RedisService) Get(ctx context.Context, name string) ([]byte, error) {
	return a.rdb.Get(ctx, a.Key(name)).Bytes()
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
