// Package usecase implements the identification request pipeline: staging the
// uploaded image, invoking the upstream client, normalizing the response and
// synthesizing purchase links.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MiranSiddique/FLORO/internal/feature/identify/adapters/plantnet/dto"
	"github.com/MiranSiddique/FLORO/internal/feature/identify/domain/entity"
)

const (
	// MaxImageSize is the upload size limit (10MB).
	MaxImageSize = 10 * 1024 * 1024
	// StagedImageName is the fixed filename the upload is staged under inside
	// its per-request temporary directory.
	StagedImageName = "plant_image.jpg"
)

// PlantIdentifier performs one synchronous identification call against the
// upstream service. Implementations return the usecase error kinds defined in
// this package so the handler can map them to HTTP statuses.
// Following Go convention, the interface is defined on the consumer side.
type PlantIdentifier interface {
	// Identify submits the staged image and returns the parsed upstream body.
	Identify(ctx context.Context, image io.Reader) (*dto.IdentifyResponse, error)
}

// PlantRecorder persists a durable record of a completed identification.
// Recording is best-effort: it runs after the result is fully computed and a
// failure never alters the response.
type PlantRecorder interface {
	Record(ctx context.Context, result *entity.IdentificationResult) error
}

// identifyUsecase owns the per-request identification lifecycle.
type identifyUsecase struct {
	identifier PlantIdentifier
	recorder   PlantRecorder // nil disables record keeping
	sites      []PurchaseSite
}

// NewIdentifyUsecase creates a new identifyUsecase. A nil recorder disables
// durable record keeping; empty sites fall back to DefaultPurchaseSites.
func NewIdentifyUsecase(identifier PlantIdentifier, recorder PlantRecorder, sites []PurchaseSite) *identifyUsecase {
	if len(sites) == 0 {
		sites = DefaultPurchaseSites
	}
	return &identifyUsecase{identifier: identifier, recorder: recorder, sites: sites}
}

// Identify runs the full pipeline for one uploaded image. The image is staged
// into a uniquely allocated temporary directory which is removed on every exit
// path; cleanup failures are logged and never surfaced.
func (u *identifyUsecase) Identify(ctx context.Context, imageData []byte) (*entity.IdentificationResult, error) {
	if len(imageData) == 0 {
		return nil, ErrNoImage
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	dir, err := os.MkdirTemp("", "floro-identify-")
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.Warn("failed to remove staging directory", "dir", dir, "error", err)
		}
	}()

	staged := filepath.Join(dir, StagedImageName)
	if err := os.WriteFile(staged, imageData, 0o600); err != nil {
		return nil, fmt.Errorf("stage image: %w", err)
	}

	f, err := os.Open(staged)
	if err != nil {
		return nil, fmt.Errorf("open staged image: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close staged image", "error", err)
		}
	}()

	resp, err := u.identifier.Identify(ctx, f)
	if err != nil {
		return nil, err
	}

	result, err := normalize(resp)
	if err != nil {
		return nil, err
	}
	result.PurchaseLinks = synthesizePurchaseLinks(u.sites, result.Candidates[0], resp.BestMatch)

	if u.recorder != nil {
		if err := u.recorder.Record(ctx, result); err != nil {
			slog.Warn("failed to record identification", "error", err)
		}
	}

	return result, nil
}
