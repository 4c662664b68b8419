package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"Event_Showcase/internal/pkg"
)

const (
	RateLimitKeyPrefix = "ratelimit:vote" // ratelimit:vote:{fingerprint}

	DefaultRateLimit  = 10
	DefaultRateWindow = time.Minute
)

// 滑动窗口：清掉窗口外的记录，数一下窗口内还剩多少，
// 没超限就记一笔并续期。四步必须在一次 EVAL 里做完，
// 否则并发请求会在 ZCARD 和 ZADD 之间互相穿插把限额冲破。
var slidingWindowScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], 0, ARGV[1])
local n = redis.call("ZCARD", KEYS[1])
if n >= tonumber(ARGV[2]) then
  return 0
end
redis.call("ZADD", KEYS[1], ARGV[3], ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return 1
`)

// RateLimiter 按指纹限制投票频率，窗口内最多 limit 次
type RateLimiter struct {
	limit  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &RateLimiter{limit: limit, window: window}
}

// Allow 本次请求是否放行。限流器打不通 Redis 时返回错误，由上层决定怎么失败。
func (l *RateLimiter) Allow(ctx context.Context, fingerprint string) (bool, error) {
	key := fmt.Sprintf("%s:%s", RateLimitKeyPrefix, fingerprint)
	now := time.Now()
	windowStart := now.Add(-l.window).UnixMilli()
	// member 要在同一毫秒内也互不相同，补个随机尾巴
	member := fmt.Sprintf("%d-%s", now.UnixNano(), pkg.RandBase36(4))

	res, err := slidingWindowScript.Run(ctx, Client,
		[]string{key},
		windowStart, l.limit, now.UnixMilli(), member, l.window.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
