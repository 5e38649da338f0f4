package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("Connected to Redis")
}

// GetJSON loads a cached value into dest. Returns false on miss or when the
// cache is not configured.
func GetJSON(key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores a value under key with a TTL. Cache errors are ignored; the
// catalog queries work without Redis.
func SetJSON(key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	Client.Set(Ctx, key, raw, ttl)
}

// Invalidate drops cached keys by exact name.
func Invalidate(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	Client.Del(Ctx, keys...)
}
