package ratelimiter

import (
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// GetterSetter stores the limiter bookkeeping values: token counts for the
// HTTP bucket limiter and unix-milli timestamps for the chat cooldown gate.
type GetterSetter interface {
	Get(key string) (int64, error)
	Set(key string, value int64) error
	SetWithExpiration(key string, value int64, expiration time.Duration) error
	Close() error
}
