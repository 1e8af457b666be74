package di

import (
	"context"
	"os"

	"github.com/MiranSiddique/FLORO/internal/feature/details/adapters/gemini"
)

// NewPlantInstructor creates the Gemini plant-description client from
// GEMINI_API_KEY. Callers treat an error as "run without the details service":
// the endpoint then answers 500 not-configured per request, matching runtime
// credential checking.
func NewPlantInstructor(ctx context.Context) (*gemini.PlantInstructor, error) {
	return gemini.NewPlantInstructor(ctx, os.Getenv("GEMINI_API_KEY"))
}
