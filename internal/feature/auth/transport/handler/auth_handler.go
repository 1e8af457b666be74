// Package handler provides the HTTP boundary of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MiranSiddique/FLORO/internal/api"
	"github.com/MiranSiddique/FLORO/internal/feature/auth/usecase"
)

// AuthUsecase authenticates the admin.
// Following Go convention, the interface is defined on the consumer (handler) side.
type AuthUsecase interface {
	// Login verifies the credential and returns a signed JWT on success.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles admin login requests.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles the admin login endpoint.
//
// Endpoint: POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrNotConfigured) {
			slog.Error("admin credential not configured")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "admin login not configured"})
			return
		}
		// Do not reveal which part of the credential failed.
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	slog.Info("admin login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
