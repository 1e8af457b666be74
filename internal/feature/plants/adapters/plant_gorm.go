// Package adapters provides the repository implementations of the plants feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MiranSiddique/FLORO/internal/feature/plants/domain/entity"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/usecase"
)

// plantGorm is the gorm implementation of PlantRepository.
type plantGorm struct {
	db *gorm.DB
}

var _ usecase.PlantRepository = (*plantGorm)(nil)

// NewPlantRepository creates a new plantGorm repository with the given DB connection.
func NewPlantRepository(db *gorm.DB) *plantGorm {
	return &plantGorm{db: db}
}

// Save inserts a new identification record.
func (r *plantGorm) Save(ctx context.Context, plant *entity.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

// ListRecent returns up to limit records, newest first.
func (r *plantGorm) ListRecent(ctx context.Context, limit int) ([]entity.Plant, error) {
	var plants []entity.Plant
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

// FindByID returns one record, or ErrPlantNotFound.
func (r *plantGorm) FindByID(ctx context.Context, id uint) (*entity.Plant, error) {
	var plant entity.Plant
	if err := r.db.WithContext(ctx).First(&plant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlantNotFound
		}
		return nil, err
	}
	return &plant, nil
}

// Delete removes one record, or returns ErrPlantNotFound when it does not exist.
func (r *plantGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Plant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPlantNotFound
	}
	return nil
}
