package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sneaker-store/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache Redis JSON 缓存；未启用时所有操作为空操作
type Cache struct {
	client *redis.Client
	prefix string
}

// New 根据配置创建缓存，未启用 Redis 时返回禁用状态的实例
func New(cfg *config.RedisConfig) *Cache {
	if cfg == nil || !cfg.Enabled {
		return &Cache{}
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "ss"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: client, prefix: prefix}
}

// Enabled 判断缓存是否启用
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Client 获取 Redis 客户端
func (c *Cache) Client() *redis.Client {
	if !c.Enabled() {
		return nil
	}
	return c.client
}

// Ping 检查 Redis 连通性
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close 关闭客户端
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// GetJSON 获取 JSON 缓存
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	val, err := c.client.Get(ctx, c.buildKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.buildKey(key), payload, ttl).Err()
}

// Key 返回带前缀的完整 key
func (c *Cache) Key(key string) string {
	return c.buildKey(key)
}

func (c *Cache) buildKey(key string) string {
	prefix := ""
	if c != nil {
		prefix = c.prefix
	}
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return prefix
	}
	if prefix == "" {
		return trimmed
	}
	return fmt.Sprintf("%s:%s", prefix, trimmed)
}
