package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request tracked under key is admitted right now.
// Implementations own the counter state; callers treat an error as "do not
// admit" and surface it rather than silently allowing or denying.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisSlidingWindow admits up to limit requests per rolling window, counted
// in a Redis sorted set shared by every process behind the same key. Each
// check appends a member scored with the current time, trims members older
// than the window and counts what remains, so the decision is always
// "admissions in the trailing window", not "admissions since a reset".
//
// A denied check still consumes a slot: the member is added before counting.
type RedisSlidingWindow struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisSlidingWindow(client *redis.Client, limit int64, window time.Duration) *RedisSlidingWindow {
	return &RedisSlidingWindow{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisSlidingWindow) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now()
	windowStart := now.Add(-l.window)
	member := ulid.Make().String()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixMilli(), 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: member})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update rate limit window: %w", err)
	}

	return count.Val() <= l.limit, nil
}
