// Package pipeline orchestrates normalization: transform, optional
// deduplication, optional advisory validation, and error and duplicate
// accounting for single items and batches.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/dedup"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/telemetry"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/transform"
)

// Defaults for the pipeline option surface.
const (
	DefaultBatchSize   = 10
	DefaultConcurrency = 4
)

// Options controls pipeline behavior.
type Options struct {
	EnableDeduplication    bool    `json:"enableDeduplication"`
	DeduplicationThreshold float64 `json:"deduplicationThreshold"`
	ValidateOutput         bool    `json:"validateOutput"`
	BatchSize              int     `json:"batchSize"`
	Concurrency            int     `json:"concurrency"`
}

// DefaultOptions returns the standard configuration: dedup and validation
// on, threshold 0.8, batches of 10.
func DefaultOptions() Options {
	return Options{
		EnableDeduplication:    true,
		DeduplicationThreshold: dedup.DefaultThreshold,
		ValidateOutput:         true,
		BatchSize:              DefaultBatchSize,
		Concurrency:            DefaultConcurrency,
	}
}

// Result is the outcome of a normalization call. Duplicates are dropped
// from Content but counted, never treated as errors. Validation failures
// land in Errors while their content is still returned: validation is
// advisory, and the pipeline never silently drops data.
type Result struct {
	Content           []domain.NormalizedContent `json:"content"`
	Errors            []string                   `json:"errors"`
	DuplicatesRemoved int                        `json:"duplicatesRemoved"`
}

// Stats reports cumulative pipeline counters.
type Stats struct {
	ItemsProcessed     int64 `json:"itemsProcessed"`
	ItemsNormalized    int64 `json:"itemsNormalized"`
	DuplicatesRemoved  int64 `json:"duplicatesRemoved"`
	Errors             int64 `json:"errors"`
	ValidationFailures int64 `json:"validationFailures"`
	DedupIndexSize     int   `json:"dedupIndexSize"`
}

// Pipeline drives normalization. The deduplicator is injected so callers
// own its lifecycle (and its Clear/Remove entry points).
type Pipeline struct {
	transformers []transform.Transformer
	dedup        *dedup.Deduplicator
	validator    *Validator
	opts         Options
	telemetry    *telemetry.Provider
	log          logger.Logger

	processed          atomic.Int64
	normalized         atomic.Int64
	duplicates         atomic.Int64
	errorCount         atomic.Int64
	validationFailures atomic.Int64
}

// New creates a pipeline. A nil deduplicator with deduplication enabled
// gets a fresh index at the configured threshold. A nil telemetry provider
// disables metrics.
func New(transformers []transform.Transformer, deduplicator *dedup.Deduplicator, opts Options, tel *telemetry.Provider, log logger.Logger) *Pipeline {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.DeduplicationThreshold <= 0 || opts.DeduplicationThreshold > 1 {
		opts.DeduplicationThreshold = dedup.DefaultThreshold
	}
	if deduplicator == nil && opts.EnableDeduplication {
		deduplicator = dedup.New(opts.DeduplicationThreshold, log)
	}

	return &Pipeline{
		transformers: transformers,
		dedup:        deduplicator,
		validator:    NewValidator(),
		opts:         opts,
		telemetry:    tel,
		log:          log,
	}
}

// Normalize processes a single raw item. Content has zero entries only
// when the transform failed or the item was a duplicate.
func (p *Pipeline) Normalize(ctx context.Context, raw domain.RawContent) *Result {
	result := &Result{Content: []domain.NormalizedContent{}, Errors: []string{}}
	p.accumulate(ctx, raw, result)
	return result
}

// accumulate runs the per-item state machine and folds the outcome into
// the result. Transform failures become error strings, duplicates are
// counted, validation failures are appended with content still kept.
func (p *Pipeline) accumulate(ctx context.Context, raw domain.RawContent, result *Result) {
	p.processed.Add(1)
	start := time.Now()

	content, err := p.transformItem(raw)
	if err != nil {
		p.errorCount.Add(1)
		result.Errors = append(result.Errors, err.Error())
		if p.telemetry != nil {
			p.telemetry.RecordNormalizationFailure(ctx, "transform")
		}
		p.log.Warn("normalization failed",
			logger.String("content_id", raw.ID),
			logger.Error(err))
		return
	}

	if p.opts.EnableDeduplication && p.dedup != nil {
		if check := p.dedup.CheckAndStore(content); check.IsDuplicate {
			p.duplicates.Add(1)
			result.DuplicatesRemoved++
			if p.telemetry != nil {
				p.telemetry.RecordDuplicate(ctx)
				p.telemetry.SetDedupIndexSize(p.dedup.Size())
			}
			p.log.Debug("duplicate removed",
				logger.String("content_id", content.Common().ID),
				logger.String("matched_id", check.MatchedID),
				logger.Float64("similarity", check.Similarity))
			return
		}
		if p.telemetry != nil {
			p.telemetry.SetDedupIndexSize(p.dedup.Size())
		}
	}

	if p.opts.ValidateOutput {
		if failures := p.validator.Validate(content); len(failures) > 0 {
			p.validationFailures.Add(int64(len(failures)))
			result.Errors = append(result.Errors, failures...)
			if p.telemetry != nil {
				p.telemetry.RecordValidationFailures(ctx, len(failures))
			}
		}
	}

	p.normalized.Add(1)
	result.Content = append(result.Content, content)
	if p.telemetry != nil {
		p.telemetry.RecordNormalization(ctx, string(raw.ContentType), string(content.Kind()), time.Since(start))
	}
}

// transformItem routes the raw item to the first transformer that supports
// its content type.
func (p *Pipeline) transformItem(raw domain.RawContent) (domain.NormalizedContent, error) {
	for _, t := range p.transformers {
		if !t.Supports(raw.ContentType) {
			continue
		}
		content, err := t.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: transform failed: %w", raw.ID, err)
		}
		if content == nil {
			return nil, fmt.Errorf("%s: transformer produced no content for type %q", raw.ID, raw.ContentType)
		}
		return content, nil
	}
	return nil, fmt.Errorf("%s: unsupported content type %q", raw.ID, raw.ContentType)
}

// Stats returns cumulative counters since construction.
func (p *Pipeline) Stats() Stats {
	stats := Stats{
		ItemsProcessed:     p.processed.Load(),
		ItemsNormalized:    p.normalized.Load(),
		DuplicatesRemoved:  p.duplicates.Load(),
		Errors:             p.errorCount.Load(),
		ValidationFailures: p.validationFailures.Load(),
	}
	if p.dedup != nil {
		stats.DedupIndexSize = p.dedup.Size()
	}
	return stats
}

// Deduplicator exposes the injected dedup index for callers that manage
// its lifecycle (remove, clear).
func (p *Pipeline) Deduplicator() *dedup.Deduplicator {
	return p.dedup
}

// ContentGroups routes a result's content into typed lists.
type ContentGroups struct {
	Destinations    []*domain.Destination    `json:"destinations"`
	Activities      []*domain.Activity       `json:"activities"`
	Accommodations  []*domain.Accommodation  `json:"accommodations"`
	Transportations []*domain.Transportation `json:"transportations"`
	Itineraries     []*domain.Itinerary      `json:"itineraries"`
	Generic         []*domain.Generic        `json:"generic"`
}

// ContentByType groups a result by concrete variant for consumers that
// route by type.
func ContentByType(result *Result) ContentGroups {
	groups := ContentGroups{}
	for _, content := range result.Content {
		switch c := content.(type) {
		case *domain.Destination:
			groups.Destinations = append(groups.Destinations, c)
		case *domain.Activity:
			groups.Activities = append(groups.Activities, c)
		case *domain.Accommodation:
			groups.Accommodations = append(groups.Accommodations, c)
		case *domain.Transportation:
			groups.Transportations = append(groups.Transportations, c)
		case *domain.Itinerary:
			groups.Itineraries = append(groups.Itineraries, c)
		case *domain.Generic:
			groups.Generic = append(groups.Generic, c)
		}
	}
	return groups
}
