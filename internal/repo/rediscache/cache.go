package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/redis/go-redis/v9"
)

// cacheKey holds the serialized unfiltered listing.
const cacheKey = "cache:tareas"

// CacheRepository caches the full task listing in redis with a TTL. It shares
// the client handed to it; it never owns the connection.
type CacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

func (c *CacheRepository) SetTareas(ctx context.Context, tareas []entity.Tarea, ttl time.Duration) error {
	data, err := json.Marshal(tareas)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, data, ttl).Err()
}

// GetTareas returns nil with no error on a cache miss.
func (c *CacheRepository) GetTareas(ctx context.Context) ([]entity.Tarea, error) {
	data, err := c.client.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var tareas []entity.Tarea
	if err := json.Unmarshal([]byte(data), &tareas); err != nil {
		return nil, err
	}
	return tareas, nil
}

func (c *CacheRepository) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, cacheKey).Err()
}
