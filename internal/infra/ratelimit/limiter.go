package ratelimit

import (
	"context"
	"time"

	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Token bucket kept in a redis hash, refilled one token per interval.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
    tokens = capacity
    last_refill = now_ms
end

if interval_ms > 0 then
    local elapsed = math.max(0, now_ms - last_refill)
    local intervals = math.floor(elapsed / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + intervals)
        last_refill = last_refill + (intervals * interval_ms)
    end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
    allowed = 1
    tokens = tokens - 1
else
    retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type Limiter struct {
	rdb      redis.Scripter
	clock    clock.Clock
	capacity int
	interval time.Duration
	prefix   string
}

func NewLimiter(rdb redis.Scripter, clk clock.Clock, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{
		rdb:      rdb,
		clock:    clk,
		capacity: cfg.Capacity,
		interval: cfg.Refill,
		prefix:   "turfbook:rl",
	}
}

func (l *Limiter) Capacity() int { return l.capacity }

// Allow takes one token from the bucket named key.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	ttl := time.Duration(l.capacity+1) * l.interval
	if ttl < time.Second {
		ttl = time.Second
	}

	res, err := tokenBucket.Run(ctx, l.rdb, []string{l.prefix + ":" + key},
		l.clock.Now().UnixMilli(),
		l.capacity,
		l.interval.Milliseconds(),
		int64(ttl/time.Second),
	).Int64Slice()
	if err != nil {
		return Decision{}, errs.Wrap(err, "run token bucket")
	}
	if len(res) != 3 {
		return Decision{}, errs.Newf("unexpected token bucket reply: %v", res)
	}

	return Decision{
		Allowed:    res[0] == 1,
		Remaining:  res[1],
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}
