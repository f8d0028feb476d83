package api

import (
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/pipeline"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BatchRequest carries the items of a batch normalization call.
type BatchRequest struct {
	Items []domain.RawContent `json:"items" binding:"required"`
}

// NormalizeResponse wraps a pipeline result with the typed grouping.
type NormalizeResponse struct {
	Content           []domain.NormalizedContent `json:"content"`
	Errors            []string                   `json:"errors"`
	DuplicatesRemoved int                        `json:"duplicatesRemoved"`
	ByType            pipeline.ContentGroups     `json:"byType"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func normalizeResponse(result *pipeline.Result) NormalizeResponse {
	return NormalizeResponse{
		Content:           result.Content,
		Errors:            result.Errors,
		DuplicatesRemoved: result.DuplicatesRemoved,
		ByType:            pipeline.ContentByType(result),
	}
}
