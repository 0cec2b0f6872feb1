package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ai_calls_platform/backend/internal/models"
	"github.com/ai_calls_platform/backend/internal/service"
)

const (
	APIName    = "AI Calls Platform API"
	APIVersion = "1.0.0"
)

type Handler struct {
	Calls     *service.CallService
	Analysis  *service.AnalysisService
	Validator *validator.Validate
	Logger    zerolog.Logger
}

type RootResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
	Status       string `json:"status"`
	AIConfigured bool   `json:"aiConfigured"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// @Summary API index
// @Tags meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Name:    APIName,
		Version: APIVersion,
		Status:  "running",
		Endpoints: map[string]string{
			"health":  "/api/health",
			"calls":   "/api/calls",
			"stats":   "/api/calls/stats",
			"analyze": "/api/calls/:recordingId/analyze",
			"batch":   "/api/calls/analyze/batch",
			"schema":  "/api/schema/metadata",
		},
	})
}

// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Message:      "Backend is running!",
		Timestamp:    models.FormatISO(time.Now()),
		Status:       "healthy",
		AIConfigured: h.Analysis != nil && h.Analysis.Analyzer.Configured(),
	})
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}
