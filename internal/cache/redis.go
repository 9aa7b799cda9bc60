package cache

import (
	"context"
	"encoding/json"
	"time"

	"railBooker/internal/config"
	"railBooker/internal/models"

	"github.com/redis/go-redis/v9"
)

const trainsKey = "cache:trains:active"

// RedisCache keeps the active-train listing warm between reads. A nil
// *RedisCache is a valid no-op value; services check for it and fall
// through to storage.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and returns nil if the server is unreachable,
// so callers degrade to uncached reads instead of failing startup.
func New(cfg config.Cache) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return &RedisCache{client: client, ttl: cfg.TTL}
}

// GetTrains returns the cached listing, or (nil, nil) on a cache miss.
func (c *RedisCache) GetTrains(ctx context.Context) ([]models.Train, error) {
	data, err := c.client.Get(ctx, trainsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var trains []models.Train
	if err := json.Unmarshal(data, &trains); err != nil {
		return nil, err
	}

	return trains, nil
}

func (c *RedisCache) SetTrains(ctx context.Context, trains []models.Train) error {
	payload, err := json.Marshal(trains)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, trainsKey, payload, c.ttl).Err()
}

// InvalidateTrains drops the cached listing; called when the catalog
// changes.
func (c *RedisCache) InvalidateTrains(ctx context.Context) error {
	return c.client.Del(ctx, trainsKey).Err()
}
