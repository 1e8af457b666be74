package usecase

import (
	"strings"

	"github.com/MiranSiddique/FLORO/internal/feature/identify/adapters/plantnet/dto"
	"github.com/MiranSiddique/FLORO/internal/feature/identify/domain/entity"
)

// normalize reshapes the heterogeneous upstream response into a stable result.
// Upstream ordering is preserved verbatim; entry 0 is the top candidate. The
// upstream bestMatch field is used only as a fallback when the top candidate
// has no scientific name of its own.
func normalize(resp *dto.IdentifyResponse) (*entity.IdentificationResult, error) {
	if resp == nil || len(resp.Results) == 0 {
		return nil, ErrNoMatches
	}

	candidates := make([]entity.IdentificationCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		// The without-author variant is cleaner for display; fall back to the
		// full scientific name when it is absent.
		name := r.Species.ScientificNameWithoutAuthor
		if name == "" {
			name = r.Species.ScientificName
		}
		candidates = append(candidates, entity.IdentificationCandidate{
			ScientificName: name,
			CommonNames:    r.Species.CommonNames,
			Score:          r.Score,
		})
	}

	top := candidates[0]
	best := top.ScientificName
	if best == "" {
		best = resp.BestMatch
	}

	return &entity.IdentificationResult{
		BestMatchScientificName: best,
		BestMatchCommonNames:    strings.Join(top.CommonNames, ", "),
		UpstreamBestMatch:       resp.BestMatch,
		Candidates:              candidates,
	}, nil
}
