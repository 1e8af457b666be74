package usecase

import (
	"errors"
	"testing"

	"github.com/MiranSiddique/FLORO/internal/feature/identify/adapters/plantnet/dto"
)

func TestNormalize_EmptyResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *dto.IdentifyResponse
	}{
		{"nil response", nil},
		{"nil results", &dto.IdentifyResponse{BestMatch: "Rosa"}},
		{"empty results", &dto.IdentifyResponse{BestMatch: "Rosa", Results: []dto.Result{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := normalize(tt.resp)
			if !errors.Is(err, ErrNoMatches) {
				t.Fatalf("expected ErrNoMatches, got %v", err)
			}
		})
	}
}

func TestNormalize_PrefersNameWithoutAuthor(t *testing.T) {
	t.Parallel()

	resp := &dto.IdentifyResponse{
		Results: []dto.Result{
			{
				Score: 0.8,
				Species: dto.Species{
					ScientificNameWithoutAuthor: "Rosa rubiginosa",
					ScientificName:              "Rosa rubiginosa L.",
				},
			},
			{
				Score: 0.1,
				Species: dto.Species{
					// No without-author variant: fall back to the full name.
					ScientificName: "Rosa canina L.",
				},
			},
		},
	}

	result, err := normalize(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Candidates[0].ScientificName != "Rosa rubiginosa" {
		t.Errorf("expected without-author name, got %q", result.Candidates[0].ScientificName)
	}
	if result.Candidates[1].ScientificName != "Rosa canina L." {
		t.Errorf("expected fallback to scientificName, got %q", result.Candidates[1].ScientificName)
	}
}

func TestNormalize_BestMatchFromTopCandidate(t *testing.T) {
	t.Parallel()

	resp := &dto.IdentifyResponse{
		BestMatch: "Upstream Reported Name",
		Results: []dto.Result{
			{Score: 0.9, Species: dto.Species{
				ScientificNameWithoutAuthor: "Rosa rubiginosa",
				CommonNames:                 []string{"Sweet Briar", "Eglantine"},
			}},
		},
	}

	result, err := normalize(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The top candidate wins over the separately reported best-match field.
	if result.BestMatchScientificName != "Rosa rubiginosa" {
		t.Errorf("expected top candidate name, got %q", result.BestMatchScientificName)
	}
	if result.BestMatchCommonNames != "Sweet Briar, Eglantine" {
		t.Errorf("expected joined common names, got %q", result.BestMatchCommonNames)
	}
	if result.UpstreamBestMatch != "Upstream Reported Name" {
		t.Errorf("expected upstream bestMatch passthrough, got %q", result.UpstreamBestMatch)
	}
}

func TestNormalize_BestMatchFallsBackToUpstreamField(t *testing.T) {
	t.Parallel()

	resp := &dto.IdentifyResponse{
		BestMatch: "Upstream Reported Name",
		Results: []dto.Result{
			{Score: 0.9, Species: dto.Species{}},
		},
	}

	result, err := normalize(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BestMatchScientificName != "Upstream Reported Name" {
		t.Errorf("expected upstream fallback, got %q", result.BestMatchScientificName)
	}
	if result.BestMatchCommonNames != "" {
		t.Errorf("expected empty joined names, got %q", result.BestMatchCommonNames)
	}
}

func TestNormalize_PreservesUpstreamOrder(t *testing.T) {
	t.Parallel()

	// Deliberately not sorted by score: upstream order must survive verbatim.
	resp := &dto.IdentifyResponse{
		Results: []dto.Result{
			{Score: 0.2, Species: dto.Species{ScientificNameWithoutAuthor: "A"}},
			{Score: 0.9, Species: dto.Species{ScientificNameWithoutAuthor: "B"}},
			{Score: 0.5, Species: dto.Species{ScientificNameWithoutAuthor: "C"}},
		},
	}

	result, err := normalize(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{}
	for _, c := range result.Candidates {
		got = append(got, c.ScientificName)
	}
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v, want %v", got, want)
		}
	}
}
