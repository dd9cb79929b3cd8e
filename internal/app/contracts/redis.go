package contracts

import (
	"context"
	"time"
)

// RedisRepository is the key-value store boundary. Values are opaque strings;
// a missing key is reported through the found flag so absence stays
// distinguishable from an empty value.
type RedisRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error)
}
