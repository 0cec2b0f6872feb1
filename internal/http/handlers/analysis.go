package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai_calls_platform/backend/internal/models"
	"github.com/ai_calls_platform/backend/internal/store"
)

type AnalyzeResponse struct {
	Success bool              `json:"success"`
	Data    models.AIAnalysis `json:"data"`
}

type BatchAnalyzeRequest struct {
	RecordingIDs []string `json:"recordingIds" validate:"required,min=1"`
}

type BatchAnalyzeResponse struct {
	Success bool                   `json:"success"`
	Data    []models.BatchAnalysis `json:"data"`
	Count   int                    `json:"count"`
}

// @Summary Analyze call
// @Description Summarize one call from its metadata. Falls back to a deterministic summary when no model is configured or the model fails.
// @Tags analysis
// @Produce json
// @Param recordingId path string true "Recording ID"
// @Success 200 {object} AnalyzeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/calls/{recordingId}/analyze [post]
func (h *Handler) AnalyzeCall(c *gin.Context) {
	analysis, err := h.Analysis.Analyze(c.Request.Context(), c.Param("recordingId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Call not found")
			return
		}
		h.Logger.Error().Err(err).Msg("analysis failed")
		writeError(c, http.StatusInternalServerError, "Failed to analyze call")
		return
	}
	c.JSON(http.StatusOK, AnalyzeResponse{Success: true, Data: analysis})
}

// @Summary Analyze calls in batch
// @Description Analyze up to 10 recordings concurrently. Unknown ids are omitted from the result.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body BatchAnalyzeRequest true "Recording IDs"
// @Success 200 {object} BatchAnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/calls/analyze/batch [post]
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid recordingIds array")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid recordingIds array")
		return
	}

	results := h.Analysis.AnalyzeBatch(c.Request.Context(), req.RecordingIDs)
	c.JSON(http.StatusOK, BatchAnalyzeResponse{Success: true, Data: results, Count: len(results)})
}
