package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MiranSiddique/FLORO/internal/feature/plants/adapters"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/usecase"
	"github.com/MiranSiddique/FLORO/internal/platform/cache"
)

// NewPlantRepository creates the plant record repository. When Redis is
// available the recent-list query is served through the cache decorator;
// a nil client falls back to the database directly.
func NewPlantRepository(rdb *redis.Client, db *gorm.DB) usecase.PlantRepository {
	repo := adapters.NewPlantRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingPlantRepository(rdb, 5*time.Minute, repo, "plants")
}
