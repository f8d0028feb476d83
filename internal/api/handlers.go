package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/pipeline"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/tagging"
)

// Handler handles HTTP requests for the normalization API.
type Handler struct {
	pipeline *pipeline.Pipeline
	tagger   *tagging.ContentTagger
	service  string
	version  string
	log      logger.Logger
}

// NewHandler creates an API handler.
func NewHandler(p *pipeline.Pipeline, tagger *tagging.ContentTagger, service, version string, log logger.Logger) *Handler {
	return &Handler{
		pipeline: p,
		tagger:   tagger,
		service:  service,
		version:  version,
		log:      log,
	}
}

// Normalize handles POST /api/v1/normalize with one RawContent document.
func (h *Handler) Normalize(c *gin.Context) {
	var raw domain.RawContent
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid raw content: " + err.Error()})
		return
	}
	if raw.ID == "" || raw.RawText == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id and rawText are required"})
		return
	}

	result := h.pipeline.Normalize(c.Request.Context(), raw)
	c.JSON(http.StatusOK, normalizeResponse(result))
}

// NormalizeBatch handles POST /api/v1/normalize/batch.
func (h *Handler) NormalizeBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid batch request: " + err.Error()})
		return
	}

	result := h.pipeline.NormalizeBatch(c.Request.Context(), req.Items)
	c.JSON(http.StatusOK, normalizeResponse(result))
}

// Tag handles POST /api/v1/tag with one NormalizedContent document,
// discriminated by its "type" field.
func (h *Handler) Tag(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "read body: " + err.Error()})
		return
	}

	content, err := domain.DecodeNormalizedContent(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result := h.tagger.Tag(c.Request.Context(), content)
	c.JSON(http.StatusOK, result)
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.pipeline.Stats())
}

// RemoveDedupEntry handles DELETE /api/v1/dedup/:id. Removed content can
// be re-inserted without being flagged as a duplicate of itself.
func (h *Handler) RemoveDedupEntry(c *gin.Context) {
	dedup := h.pipeline.Deduplicator()
	if dedup == nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "deduplication is disabled"})
		return
	}

	id := c.Param("id")
	dedup.Remove(id)
	h.log.Info("dedup entry removed", logger.String("content_id", id))
	c.Status(http.StatusNoContent)
}

// ClearDedupIndex handles DELETE /api/v1/dedup. Clearing is the only way
// to bound the otherwise unbounded index growth.
func (h *Handler) ClearDedupIndex(c *gin.Context) {
	dedup := h.pipeline.Deduplicator()
	if dedup == nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "deduplication is disabled"})
		return
	}

	dedup.Clear()
	h.log.Info("dedup index cleared")
	c.Status(http.StatusNoContent)
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: h.service,
		Version: h.version,
	})
}
