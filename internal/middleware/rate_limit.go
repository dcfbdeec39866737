package middleware

import (
	"net/http"

	"recipe-api/internal/utils"
	"recipe-api/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 按客户端IP限流，用于凭证类接口
// limiter为nil时（未配置Redis）直接放行
func RateLimitMiddleware(limiter *redis_limiter.RedisLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis不可用时不阻断业务请求
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "请求过于频繁，请稍后重试")
			c.Abort()
			return
		}

		c.Next()
	}
}
