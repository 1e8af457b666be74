// Package handler provides the HTTP boundary of the details feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MiranSiddique/FLORO/internal/api"
	"github.com/MiranSiddique/FLORO/internal/feature/details/domain/entity"
	"github.com/MiranSiddique/FLORO/internal/feature/details/usecase"
)

// DetailsUsecase fetches structured descriptive text for a plant name.
type DetailsUsecase interface {
	GetPlantDetails(ctx context.Context, plantName string) (*entity.PlantDetails, error)
}

// DetailsHandler handles plant description HTTP requests.
type DetailsHandler struct {
	uc DetailsUsecase
}

// NewDetailsHandler creates a new DetailsHandler.
func NewDetailsHandler(uc DetailsUsecase) *DetailsHandler {
	return &DetailsHandler{uc: uc}
}

// GetPlantDetails returns descriptive text for the named plant.
//
// Endpoint: POST /api/plant-details
// Body: {"plant_name": "..."}
func (h *DetailsHandler) GetPlantDetails(c *gin.Context) {
	var req api.PlantDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("plant details request without name", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Plant name is required"})
		return
	}

	details, err := h.uc.GetPlantDetails(c.Request.Context(), req.PlantName)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.PlantDetailsResponse{
		Introduction: details.Introduction,
		History:      details.History,
		Facts:        details.Facts,
		Usage:        details.Usage,
	})
}

func (h *DetailsHandler) respondError(c *gin.Context, err error) {
	var parseErr *usecase.ParseError
	switch {
	case errors.Is(err, usecase.ErrNameRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Plant name is required"})
	case errors.Is(err, usecase.ErrNotConfigured):
		slog.Error("gemini api key not configured")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Gemini API key not configured"})
	case errors.As(err, &parseErr):
		slog.Error("invalid JSON in model response", "raw", parseErr.Raw)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error:       "Invalid response format from language model",
			RawResponse: parseErr.Raw,
		})
	default:
		slog.Error("failed to get plant details", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to get plant details"})
	}
}
