package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MiranSiddique/FLORO/internal/feature/details/usecase"
)

// mockGenerator is a mock implementation of the InstructionGenerator interface.
type mockGenerator struct {
	GenerateFunc  func(ctx context.Context, prompt string) (string, error)
	GenerateCalls int
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("GenerateFunc is not implemented")
}

func TestDetailsUsecase_GetPlantDetails_Success(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			if prompt != "Tell me about Rosa rubiginosa" {
				t.Errorf("unexpected prompt: %q", prompt)
			}
			return `{
				"introduction": "A wild rose species.",
				"history": "Described by Linnaeus.",
				"facts": ["Leaves smell of apples."],
				"usage": ["Hips used for tea."]
			}`, nil
		},
	}
	uc := usecase.NewDetailsUsecase(gen)

	details, err := uc.GetPlantDetails(context.Background(), "Rosa rubiginosa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Introduction != "A wild rose species." {
		t.Errorf("unexpected introduction: %q", details.Introduction)
	}
	if len(details.Usage) != 1 || details.Usage[0] != "Hips used for tea." {
		t.Errorf("unexpected usage: %v", details.Usage)
	}
	if gen.GenerateCalls != 1 {
		t.Errorf("expected 1 generate call, got %d", gen.GenerateCalls)
	}
}

func TestDetailsUsecase_GetPlantDetails_EmptyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plantName string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &mockGenerator{}
			uc := usecase.NewDetailsUsecase(gen)

			_, err := uc.GetPlantDetails(context.Background(), tt.plantName)
			if !errors.Is(err, usecase.ErrNameRequired) {
				t.Fatalf("expected ErrNameRequired, got %v", err)
			}
			if gen.GenerateCalls != 0 {
				t.Error("generator must not be called without a name")
			}
		})
	}
}

func TestDetailsUsecase_GetPlantDetails_NilGenerator(t *testing.T) {
	t.Parallel()

	uc := usecase.NewDetailsUsecase(nil)

	_, err := uc.GetPlantDetails(context.Background(), "Rosa rubiginosa")
	if !errors.Is(err, usecase.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestDetailsUsecase_GetPlantDetails_InvalidJSON(t *testing.T) {
	t.Parallel()

	raw := "Sure! Here is some info about roses..."
	gen := &mockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return raw, nil
		},
	}
	uc := usecase.NewDetailsUsecase(gen)

	_, err := uc.GetPlantDetails(context.Background(), "Rosa rubiginosa")

	var parseErr *usecase.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("expected raw text preserved, got %q", parseErr.Raw)
	}
}

func TestDetailsUsecase_GetPlantDetails_GeneratorError(t *testing.T) {
	t.Parallel()

	genErr := errors.New("model unavailable")
	gen := &mockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", genErr
		},
	}
	uc := usecase.NewDetailsUsecase(gen)

	_, err := uc.GetPlantDetails(context.Background(), "Rosa rubiginosa")
	if !errors.Is(err, genErr) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
}
