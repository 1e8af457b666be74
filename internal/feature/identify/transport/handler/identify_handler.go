// Package handler provides the HTTP boundary of the identify feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MiranSiddique/FLORO/internal/api"
	"github.com/MiranSiddique/FLORO/internal/feature/identify/domain/entity"
	"github.com/MiranSiddique/FLORO/internal/feature/identify/usecase"
)

// IdentifyUsecase runs the identification pipeline for one uploaded image.
// Following Go convention, the interface is defined on the consumer (handler) side.
type IdentifyUsecase interface {
	Identify(ctx context.Context, imageData []byte) (*entity.IdentificationResult, error)
}

// IdentifyHandler handles plant identification HTTP requests.
type IdentifyHandler struct {
	uc IdentifyUsecase
}

// NewIdentifyHandler creates a new IdentifyHandler.
func NewIdentifyHandler(uc IdentifyUsecase) *IdentifyHandler {
	return &IdentifyHandler{uc: uc}
}

// Identify accepts an uploaded plant photo and returns the identification payload.
//
// Endpoint: POST /api/identify
// Content-Type: multipart/form-data
// Field: image (binary image file)
//
// Every pipeline failure is converted to an HTTP response here; nothing
// propagates past this boundary.
func (h *IdentifyHandler) Identify(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("identify request without image", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No image provided"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An unexpected error occurred"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	result, err := h.uc.Identify(c.Request.Context(), imageData)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toIdentifyResponse(result))
}

// respondError maps a pipeline error kind to its HTTP response.
func (h *IdentifyHandler) respondError(c *gin.Context, err error) {
	var upstream *usecase.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrNoImage):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No image provided"})
	case errors.As(err, &upstream):
		slog.Error("plantnet rejected identification request", "status", upstream.StatusCode, "message", upstream.Message)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "Bad Request to PlantNet API",
			Details: upstream.Message,
		})
	case errors.Is(err, usecase.ErrNoMatches):
		slog.Warn("no results in plantnet response")
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No plant matches found"})
	case errors.Is(err, usecase.ErrNotConfigured):
		slog.Error("plantnet api key not configured")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "PlantNet API key not configured"})
	case errors.Is(err, usecase.ErrNetwork):
		slog.Error("network error calling plantnet", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	default:
		// The cause is logged in full but never leaked beyond its string form.
		slog.Error("unexpected identification error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An unexpected error occurred"})
	}
}

// toIdentifyResponse converts the domain result into the wire payload.
func toIdentifyResponse(result *entity.IdentificationResult) api.IdentifyResponse {
	candidates := make([]api.IdentificationCandidateResponse, 0, len(result.Candidates))
	for _, cand := range result.Candidates {
		names := cand.CommonNames
		if names == nil {
			names = []string{}
		}
		candidates = append(candidates, api.IdentificationCandidateResponse{
			ScientificName: cand.ScientificName,
			CommonNames:    names,
			Score:          cand.Score,
		})
	}

	links := make([]api.PurchaseLinkResponse, 0, len(result.PurchaseLinks))
	for _, l := range result.PurchaseLinks {
		links = append(links, api.PurchaseLinkResponse{SiteName: l.SiteName, URL: l.URL})
	}

	return api.IdentifyResponse{
		BestMatchScientificName: result.BestMatchScientificName,
		BestMatchCommonNames:    result.BestMatchCommonNames,
		Results: api.IdentificationResultsResponse{
			BestMatch: result.UpstreamBestMatch,
			Results:   candidates,
		},
		PurchaseLinks: links,
	}
}
