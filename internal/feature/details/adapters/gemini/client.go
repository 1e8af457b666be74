// Package gemini provides a Google Gemini client for plant descriptions.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/MiranSiddique/FLORO/internal/feature/details/usecase"
)

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"
	// maxOutputTokens is the output ceiling for one completion.
	maxOutputTokens = 1024
)

// systemInstruction pins the model to the JSON document shape the app parses.
const systemInstruction = "You are a plant instructor in an app called FLORO. " +
	"You'll be provided with the name of a specific plant. Provide information in these categories: " +
	"'introduction' (brief overview), 'history' (origins and cultural significance), " +
	"'facts' (list of interesting facts as an array), and 'usage' (list of ways the plant is used as an array). " +
	"Answer in JSON format only."

// PlantInstructor generates plant descriptions using the Gemini API.
type PlantInstructor struct {
	client *genai.Client
	model  string
}

// Compile-time check that PlantInstructor implements InstructionGenerator.
var _ usecase.InstructionGenerator = (*PlantInstructor)(nil)

// NewPlantInstructor creates a new PlantInstructor authenticated with the
// given API key.
func NewPlantInstructor(ctx context.Context, apiKey string) (*PlantInstructor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &PlantInstructor{client: client, model: DefaultModel}, nil
}

// Generate issues one completion with forced JSON output, temperature 1 and a
// fixed output-token ceiling, and returns the model text verbatim.
func (g *PlantInstructor) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](1),
		TopP:              genai.Ptr[float32](1),
		MaxOutputTokens:   maxOutputTokens,
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
