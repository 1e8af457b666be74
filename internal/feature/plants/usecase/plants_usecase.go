// Package usecase implements the business logic of the plants feature.
package usecase

import (
	"context"
	"errors"

	"github.com/MiranSiddique/FLORO/internal/feature/plants/domain/entity"
)

const (
	// DefaultListLimit is the number of records returned when none is requested.
	DefaultListLimit = 20
	// MaxListLimit caps one page of records.
	MaxListLimit = 100
)

// ErrPlantNotFound is returned when no record exists for the given ID.
var ErrPlantNotFound = errors.New("plant record not found")

// PlantRepository persists identification records.
// Following Go convention, the interface is defined on the consumer (usecase) side.
type PlantRepository interface {
	Save(ctx context.Context, plant *entity.Plant) error
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]entity.Plant, error)
	FindByID(ctx context.Context, id uint) (*entity.Plant, error)
	Delete(ctx context.Context, id uint) error
}

// plantsUsecase provides the admin view over stored identifications.
type plantsUsecase struct {
	repo PlantRepository
}

// NewPlantsUsecase creates a new plantsUsecase.
func NewPlantsUsecase(repo PlantRepository) *plantsUsecase {
	return &plantsUsecase{repo: repo}
}

// ListRecent returns the most recent records. Out-of-range limits are clamped.
func (u *plantsUsecase) ListRecent(ctx context.Context, limit int) ([]entity.Plant, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return u.repo.ListRecent(ctx, limit)
}

// Get returns one record by ID.
func (u *plantsUsecase) Get(ctx context.Context, id uint) (*entity.Plant, error) {
	return u.repo.FindByID(ctx, id)
}

// Delete removes one record by ID.
func (u *plantsUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
