package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kogoapp/kogo-server/internal/geo"
	"github.com/kogoapp/kogo-server/internal/models"
)

// Cache stores normalized directions results per coordinate pair. Routes
// between fixed places do not change within the TTL, and the upstream quota
// is the scarce resource.
type Cache interface {
	Get(ctx context.Context, start, end geo.Coord) (models.DirectionsResult, bool)
	Set(ctx context.Context, start, end geo.Coord, result models.DirectionsResult) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  10 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, start, end geo.Coord) (models.DirectionsResult, bool) {
	data, err := c.client.Get(ctx, routeKey(start, end)).Bytes()
	if err != nil {
		return models.DirectionsResult{}, false
	}

	var result models.DirectionsResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.DirectionsResult{}, false
	}
	return result, true
}

func (c *RedisCache) Set(ctx context.Context, start, end geo.Coord, result models.DirectionsResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(start, end), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, start, end geo.Coord) (models.DirectionsResult, bool) {
	return models.DirectionsResult{}, false
}

func (c *NoOpCache) Set(ctx context.Context, start, end geo.Coord, result models.DirectionsResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func routeKey(start, end geo.Coord) string {
	raw := fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", start.Lat, start.Lng, end.Lat, end.Lng)
	hash := sha256.Sum256([]byte(raw))
	return "directions:" + hex.EncodeToString(hash[:])
}
