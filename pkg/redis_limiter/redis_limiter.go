package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter 基于Redis的固定窗口计数限流器
type RedisLimiter struct {
	client    *redis.Client
	maxCount  int
	keyPrefix string
	window    time.Duration
}

// NewRedisLimiter 创建基于Redis的限流器
func NewRedisLimiter(client *redis.Client, maxCount int, keyPrefix string, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		maxCount:  maxCount,
		keyPrefix: keyPrefix,
		window:    window,
	}
}

// Allow 判断key在当前窗口内是否还允许一次请求
// 使用Lua脚本保证计数与过期设置的原子性：
// 首次计数时设置窗口过期时间，之后只递增
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rl.keyPrefix + key

	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
		end
		return count`,
	)

	result, err := script.Run(ctx, rl.client, []string{redisKey}, int(rl.window.Seconds())).Result()
	if err != nil {
		return false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	count := int(result.(int64))
	return count <= rl.maxCount, nil
}

// GetCurrent 获取当前窗口内的计数
func (rl *RedisLimiter) GetCurrent(ctx context.Context, key string) (int, error) {
	redisKey := rl.keyPrefix + key
	current, err := rl.client.Get(ctx, redisKey).Int()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("获取当前计数失败: %w", err)
	}
	if err == redis.Nil {
		return 0, nil
	}
	return current, nil
}

// GetMaxCount 获取窗口内允许的最大请求数
func (rl *RedisLimiter) GetMaxCount() int {
	return rl.maxCount
}
