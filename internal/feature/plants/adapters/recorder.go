package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	identifyentity "github.com/MiranSiddique/FLORO/internal/feature/identify/domain/entity"
	identifyusecase "github.com/MiranSiddique/FLORO/internal/feature/identify/usecase"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/domain/entity"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/usecase"
)

// storedCandidate is the JSON shape candidates are serialized under in the
// Results column.
type storedCandidate struct {
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	Score          float64  `json:"score"`
}

// identificationRecorder converts completed identification results into
// durable plant records.
type identificationRecorder struct {
	repo usecase.PlantRepository
}

var _ identifyusecase.PlantRecorder = (*identificationRecorder)(nil)

// NewIdentificationRecorder creates a recorder backed by the given repository.
func NewIdentificationRecorder(repo usecase.PlantRepository) *identificationRecorder {
	return &identificationRecorder{repo: repo}
}

// Record stores one identification result.
func (r *identificationRecorder) Record(ctx context.Context, result *identifyentity.IdentificationResult) error {
	stored := make([]storedCandidate, 0, len(result.Candidates))
	for _, cand := range result.Candidates {
		stored = append(stored, storedCandidate{
			ScientificName: cand.ScientificName,
			CommonNames:    cand.CommonNames,
			Score:          cand.Score,
		})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("serialize candidates: %w", err)
	}

	return r.repo.Save(ctx, &entity.Plant{
		BestMatchScientificName: result.BestMatchScientificName,
		BestMatchCommonNames:    result.BestMatchCommonNames,
		Results:                 string(raw),
	})
}
