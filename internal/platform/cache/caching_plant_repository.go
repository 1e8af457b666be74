// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MiranSiddique/FLORO/internal/feature/plants/domain/entity"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/usecase"
)

// CachingPlantRepository decorates a PlantRepository with Redis caching of the
// recent-list query. Writes go straight through and invalidate the cached
// lists. Identification responses themselves are never cached; only this
// read-side admin query is.
type CachingPlantRepository struct {
	inner     usecase.PlantRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PlantRepository = (*CachingPlantRepository)(nil)

// NewCachingPlantRepository decorates a PlantRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "plants".
func NewCachingPlantRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PlantRepository, namespace string) *CachingPlantRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "plants"
	}
	return &CachingPlantRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Save inserts the record and invalidates cached lists.
func (c *CachingPlantRepository) Save(ctx context.Context, plant *entity.Plant) error {
	if err := c.inner.Save(ctx, plant); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// ListRecent checks the cache first and falls back to the database.
func (c *CachingPlantRepository) ListRecent(ctx context.Context, limit int) ([]entity.Plant, error) {
	if c.rdb == nil {
		return c.inner.ListRecent(ctx, limit)
	}

	key := c.listKey(limit)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Plant
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	// Best effort: a failed cache write never fails the query
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a passthrough; single records are not cached.
func (c *CachingPlantRepository) FindByID(ctx context.Context, id uint) (*entity.Plant, error) {
	return c.inner.FindByID(ctx, id)
}

// Delete removes the record and invalidates cached lists.
func (c *CachingPlantRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

func (c *CachingPlantRepository) listKey(limit int) string {
	return fmt.Sprintf("%s:recent:%d", c.namespace, limit)
}

// invalidateLists deletes every cached list variant, best effort.
func (c *CachingPlantRepository) invalidateLists(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	pattern := fmt.Sprintf("%s:recent:*", c.namespace)
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return
			}
		}
		cursor = cur
		if cursor == 0 {
			return
		}
	}
}
