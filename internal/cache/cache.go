package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaidikvista/panchang-api/internal/location"
	"github.com/vaidikvista/panchang-api/internal/panchang"
)

// MonthCache stores built monthly calendars in Redis. A nil *MonthCache is
// valid and behaves as a cache that never hits, so callers need no
// enabled/disabled branching.
type MonthCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, redisURL string, ttl time.Duration) (*MonthCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &MonthCache{client: client, ttl: ttl}, nil
}

// Close releases the Redis connection.
func (c *MonthCache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

// Key derives the cache key for a month/location pair. The offset is part
// of the key because the upstream result depends on it.
func Key(year, month int, loc location.Location) string {
	return fmt.Sprintf("panchang:month:%04d-%02d:%.4f:%.4f:%s",
		year, month, loc.Latitude, loc.Longitude, loc.TimezoneOffset)
}

// Get returns the cached calendar for key, or ok=false on miss. Redis
// errors are logged and treated as misses.
func (c *MonthCache) Get(ctx context.Context, key string) ([]panchang.CalendarDay, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("month cache get %s: %v", key, err)
		return nil, false
	}

	var days []panchang.CalendarDay
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		log.Printf("month cache decode %s: %v", key, err)
		return nil, false
	}
	return days, true
}

// Set stores a built calendar under key. Failures are logged only.
func (c *MonthCache) Set(ctx context.Context, key string, days []panchang.CalendarDay) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(days)
	if err != nil {
		log.Printf("month cache encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("month cache set %s: %v", key, err)
	}
}
