// Package usecase implements the business logic of the details feature.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MiranSiddique/FLORO/internal/feature/details/domain/entity"
)

// PromptTemplate is the user prompt sent alongside the fixed system instruction.
const PromptTemplate = "Tell me about %s"

var (
	// ErrNameRequired is returned when the plant name is empty.
	ErrNameRequired = errors.New("plant name is required")

	// ErrNotConfigured is returned when no language model client is available,
	// typically because the API key is missing.
	ErrNotConfigured = errors.New("plant details service is not configured")
)

// ParseError indicates the model returned text that is not valid JSON.
// Raw carries the unparsed text for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "language model returned invalid JSON"
}

// InstructionGenerator produces one completion for a prompt.
// Following Go convention, the interface is defined on the consumer (usecase) side.
type InstructionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// detailsUsecase fetches and parses descriptive text for a plant name.
type detailsUsecase struct {
	generator InstructionGenerator
}

// NewDetailsUsecase creates a new detailsUsecase. A nil generator makes every
// call fail with ErrNotConfigured, mirroring a missing credential at runtime.
func NewDetailsUsecase(generator InstructionGenerator) *detailsUsecase {
	return &detailsUsecase{generator: generator}
}

// GetPlantDetails issues one synchronous completion call for the named plant
// and parses the returned text as a PlantDetails JSON document. No retries,
// no caching, no streaming.
func (u *detailsUsecase) GetPlantDetails(ctx context.Context, plantName string) (*entity.PlantDetails, error) {
	if strings.TrimSpace(plantName) == "" {
		return nil, ErrNameRequired
	}
	if u.generator == nil {
		return nil, ErrNotConfigured
	}

	text, err := u.generator.Generate(ctx, fmt.Sprintf(PromptTemplate, plantName))
	if err != nil {
		return nil, fmt.Errorf("generate details for %q: %w", plantName, err)
	}

	var details entity.PlantDetails
	if err := json.Unmarshal([]byte(text), &details); err != nil {
		return nil, &ParseError{Raw: text}
	}
	return &details, nil
}
