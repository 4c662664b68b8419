package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Event_Showcase/internal/repository/redis"
)

const ContextFingerprintKey = "voter_fingerprint"

// Fingerprint 投票人身份：反向代理传来的 X-Forwarded-For 第一跳，
// 没有就退回 gin 解析的客户端 IP。只是尽力而为的去重依据，不是强身份。
func Fingerprint(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit 投票前的频率闸门，按指纹滑动窗口限流。
// 限流器打不通 Redis 时直接 500，不做放行降级。
func RateLimit(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		fp := Fingerprint(c)
		c.Set(ContextFingerprintKey, fp)

		allowed, err := limiter.Allow(c.Request.Context(), fp)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "Too many requests. Try again later."})
			return
		}
		c.Next()
	}
}
