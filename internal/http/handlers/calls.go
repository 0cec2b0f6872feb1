package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"github.com/ai_calls_platform/backend/internal/models"
)

type CallsListResponse struct {
	Success bool                 `json:"success"`
	Data    []models.CallSummary `json:"data"`
	Count   int                  `json:"count"`
}

type CallStatsResponse struct {
	Success bool             `json:"success"`
	Data    models.CallStats `json:"data"`
}

type CallDetailsResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data" swaggertype:"object"`
}

var (
	metadataSchemaOnce sync.Once
	metadataSchema     *jsonschema.Schema
)

// @Summary List calls
// @Description Summaries of every valid metadata document, newest first
// @Tags calls
// @Produce json
// @Success 200 {object} CallsListResponse
// @Router /api/calls [get]
func (h *Handler) CallsList(c *gin.Context) {
	calls := h.Calls.ListCalls(c.Request.Context())
	c.JSON(http.StatusOK, CallsListResponse{Success: true, Data: calls, Count: len(calls)})
}

// @Summary Call statistics
// @Tags calls
// @Produce json
// @Success 200 {object} CallStatsResponse
// @Router /api/calls/stats [get]
func (h *Handler) CallsStats(c *gin.Context) {
	c.JSON(http.StatusOK, CallStatsResponse{Success: true, Data: h.Calls.Stats(c.Request.Context())})
}

// @Summary Call metadata
// @Tags calls
// @Produce json
// @Description Returns the stored document as-is, after the space-key repair
// @Param recordingId path string true "Recording ID"
// @Success 200 {object} CallDetailsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/calls/{recordingId} [get]
func (h *Handler) CallDetails(c *gin.Context) {
	id := c.Param("recordingId")
	md, err := h.Calls.Store.Load(c.Request.Context(), id)
	if err != nil {
		h.Logger.Warn().Err(err).Str("recording_id", id).Msg("call lookup failed")
		writeError(c, http.StatusNotFound, "Call not found")
		return
	}
	c.JSON(http.StatusOK, CallDetailsResponse{Success: true, Data: md.Raw})
}

// @Summary Call audio
// @Tags calls
// @Produce audio/ogg
// @Param recordingId path string true "Recording ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /api/calls/{recordingId}/audio [get]
func (h *Handler) CallAudio(c *gin.Context) {
	path, err := h.Calls.Store.AudioPath(c.Param("recordingId"))
	if err != nil {
		writeError(c, http.StatusNotFound, "Audio file not found")
		return
	}
	c.Header("Content-Type", "audio/ogg")
	c.File(path)
}

// @Summary Metadata JSON Schema
// @Description JSON Schema describing the recording metadata document
// @Tags schema
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/schema/metadata [get]
func (h *Handler) MetadataSchema(c *gin.Context) {
	metadataSchemaOnce.Do(func() {
		r := &jsonschema.Reflector{DoNotReference: true}
		metadataSchema = r.Reflect(&models.CallMetadata{})
	})
	c.JSON(http.StatusOK, metadataSchema)
}
