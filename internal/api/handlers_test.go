package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/dedup"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/pipeline"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/tagging"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/transform"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	recognizer := normalize.NewEntityRecognizer(gazetteer.NewStatic())
	transformers := []transform.Transformer{
		transform.NewWebTransformer(recognizer, log),
		transform.NewDocumentTransformer(recognizer, log),
	}
	opts := pipeline.DefaultOptions()
	p := pipeline.New(transformers, dedup.New(opts.DeduplicationThreshold, log), opts, nil, log)
	handler := NewHandler(p, tagging.NewContentTagger(nil, log), "normalizer", "test", log)

	router := gin.New()
	SetupRoutes(router, handler, nil)
	return router
}

// normalizeEnvelope mirrors NormalizeResponse with raw content documents so
// tests can decode the tagged union the way API clients do.
type normalizeEnvelope struct {
	Content           []json.RawMessage `json:"content"`
	Errors            []string          `json:"errors"`
	DuplicatesRemoved int               `json:"duplicatesRemoved"`
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNormalizeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/normalize", domain.RawContent{
		ID:          "r1",
		SourceURL:   "https://example.com/article",
		ContentType: domain.RawContentHTML,
		RawText:     "A quiet guide to slow travel across Europe by rail.",
		Metadata:    domain.Metadata{Title: "Slow travel"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp normalizeEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Content, 1)
	assert.Zero(t, resp.DuplicatesRemoved)

	content, err := domain.DecodeNormalizedContent(resp.Content[0])
	require.NoError(t, err)
	assert.NotEmpty(t, content.Common().ID)
}

func TestNormalizeEndpoint_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/normalize", domain.RawContent{ID: "r2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNormalizeBatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/normalize/batch", BatchRequest{
		Items: []domain.RawContent{
			{ID: "b1", ContentType: domain.RawContentHTML, RawText: "First about mountain huts."},
			{ID: "b2", ContentType: domain.RawContentHTML, RawText: "Second about coastal trains."},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp normalizeEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Content, 2)
	assert.Empty(t, resp.Errors)
}

func TestTagEndpoint(t *testing.T) {
	router := newTestRouter(t)

	activity := &domain.Activity{
		Base:        domain.Base{ID: "a1", Source: "test", Confidence: 0.7},
		Name:        "Scuba Diving Experience",
		Description: "Diving over the coral reef.",
	}
	body, err := json.Marshal(activity)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tag", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.TagResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.CategoryActivity, result.PrimaryCategory)
	require.NotEmpty(t, result.Tags)
}

func TestTagEndpoint_UnknownType(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tag", bytes.NewReader([]byte(`{"type":"mystery"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	postJSON(t, router, "/api/v1/normalize", domain.RawContent{
		ID:          "s1",
		ContentType: domain.RawContentHTML,
		RawText:     "Some content to count.",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var stats pipeline.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.ItemsProcessed)
}

func TestDedupEndpoints(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/dedup/some-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/dedup", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}
