package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pdfsettings/internal/config"
	"pdfsettings/internal/model"
)

const keyPrefix = "pdfsettings:"

// Entries are hashes {ver, data}. ver is the record's UpdatedAt in unix
// microseconds; a tombstone has ver and no data. A write older than the stored
// ver is refused so a slow read cannot overwrite a newer Put or a Delete.
var versionedSet = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'ver')
if cur and tonumber(cur) > tonumber(ARGV[1]) then
  return 0
end
redis.call('DEL', KEYS[1])
if ARGV[2] == '' then
  redis.call('HSET', KEYS[1], 'ver', ARGV[1])
else
  redis.call('HSET', KEYS[1], 'ver', ARGV[1], 'data', ARGV[2])
end
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis wraps an existing client. A non-positive ttl falls back to one minute.
func NewRedis(rdb *redis.Client, ttl time.Duration) SettingsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisCache{rdb: rdb, ttl: ttl}
}

// Open connects to Redis and checks it responds. The caller owns the returned client.
func Open(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func key(appID string) string {
	return keyPrefix + appID
}

func (c *redisCache) Get(ctx context.Context, appID string) (*model.AppSettings, bool, error) {
	b, err := c.rdb.HGet(ctx, key(appID), "data").Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var s model.AppSettings
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, false, fmt.Errorf("decode cached settings: %w", err)
	}
	return &s, true, nil
}

func (c *redisCache) Set(ctx context.Context, s *model.AppSettings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return c.write(ctx, s.AppID, s.UpdatedAt, string(b))
}

func (c *redisCache) Invalidate(ctx context.Context, appID string, at time.Time) error {
	return c.write(ctx, appID, at, "")
}

func (c *redisCache) write(ctx context.Context, appID string, ver time.Time, data string) error {
	return versionedSet.Run(ctx, c.rdb, []string{key(appID)},
		ver.UnixMicro(), data, c.ttl.Milliseconds()).Err()
}
