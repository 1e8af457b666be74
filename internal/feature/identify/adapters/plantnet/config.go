// Package plantnet provides a client for the PlantNet identification API.
package plantnet

import (
	"os"
	"time"
)

// DefaultBaseURL is the production PlantNet endpoint.
const DefaultBaseURL = "https://my-api.plantnet.org"

// Config holds configuration for the PlantNet API client.
type Config struct {
	APIKey  string        // API key, attached as a query parameter
	BaseURL string        // Base URL (e.g. "https://my-api.plantnet.org")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads PlantNet configuration from environment variables.
// A missing API key is reported per request, not at startup.
func LoadConfig() Config {
	base := os.Getenv("PLANTNET_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("PLANTNET_API_KEY"),
		BaseURL: base,
		Timeout: 30 * time.Second,
	}
}
