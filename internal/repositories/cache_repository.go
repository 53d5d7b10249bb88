package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss - chave ausente no cache.
var ErrCacheMiss = errors.New("cache: chave não encontrada")

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}
