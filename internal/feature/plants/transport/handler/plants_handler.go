// Package handler provides the admin HTTP boundary of the plants feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MiranSiddique/FLORO/internal/api"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/domain/entity"
	"github.com/MiranSiddique/FLORO/internal/feature/plants/usecase"
)

// PlantsUsecase exposes stored identification records.
type PlantsUsecase interface {
	ListRecent(ctx context.Context, limit int) ([]entity.Plant, error)
	Get(ctx context.Context, id uint) (*entity.Plant, error)
	Delete(ctx context.Context, id uint) error
}

// PlantsHandler handles the admin record endpoints. All routes are mounted
// behind the JWT middleware.
type PlantsHandler struct {
	uc PlantsUsecase
}

// NewPlantsHandler creates a new PlantsHandler.
func NewPlantsHandler(uc PlantsUsecase) *PlantsHandler {
	return &PlantsHandler{uc: uc}
}

// List returns recent identification records.
//
// Endpoint: GET /api/plants?limit=20
func (h *PlantsHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
		return
	}

	plants, err := h.uc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		slog.Error("failed to list plant records", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list plant records"})
		return
	}

	out := make([]api.PlantRecordResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, toPlantRecordResponse(&p))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one identification record.
//
// Endpoint: GET /api/plants/:id
func (h *PlantsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plant, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "plant record not found"})
			return
		}
		slog.Error("failed to load plant record", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load plant record"})
		return
	}
	c.JSON(http.StatusOK, toPlantRecordResponse(plant))
}

// Delete removes one identification record.
//
// Endpoint: DELETE /api/plants/:id
func (h *PlantsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "plant record not found"})
			return
		}
		slog.Error("failed to delete plant record", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete plant record"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid plant id"})
		return 0, false
	}
	return uint(id), true
}

func toPlantRecordResponse(p *entity.Plant) api.PlantRecordResponse {
	return api.PlantRecordResponse{
		ID:                      p.ID,
		BestMatchScientificName: p.BestMatchScientificName,
		BestMatchCommonNames:    p.BestMatchCommonNames,
		Results:                 p.Results,
		CreatedAt:               p.CreatedAt,
	}
}
