package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value []byte, exp time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
}
