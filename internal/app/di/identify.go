// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/MiranSiddique/FLORO/internal/feature/identify/adapters/plantnet"
	infrahttp "github.com/MiranSiddique/FLORO/internal/platform/http"
)

// NewPlantIdentifier creates a fully configured PlantNet client with HTTP client.
func NewPlantIdentifier() *plantnet.Client {
	cfg := plantnet.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return plantnet.NewClient(cfg, httpClient)
}
