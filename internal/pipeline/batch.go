package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
)

// NormalizeBatch chunks the input into BatchSize groups and processes each
// group's items concurrently through a worker pool. Chunks run one after
// another, so cross-chunk order is preserved; results within a chunk are
// reassembled by input index. Dedup checks inside one chunk race each
// other (see the dedup package), so two near-identical items in the same
// chunk can both survive.
func (p *Pipeline) NormalizeBatch(ctx context.Context, items []domain.RawContent) *Result {
	combined := &Result{Content: []domain.NormalizedContent{}, Errors: []string{}}
	if len(items) == 0 {
		return combined
	}

	p.log.Info("starting batch normalization",
		logger.Int("batch_size", len(items)),
		logger.Int("chunk_size", p.opts.BatchSize),
		logger.Int("concurrency", p.opts.Concurrency))
	if p.telemetry != nil {
		p.telemetry.RecordBatch(ctx, len(items))
	}
	start := time.Now()

	for offset := 0; offset < len(items); offset += p.opts.BatchSize {
		end := offset + p.opts.BatchSize
		if end > len(items) {
			end = len(items)
		}
		p.normalizeChunk(ctx, items[offset:end], combined)
	}

	p.log.Info("batch normalization complete",
		logger.Int("total", len(items)),
		logger.Int("normalized", len(combined.Content)),
		logger.Int("duplicates", combined.DuplicatesRemoved),
		logger.Int("errors", len(combined.Errors)),
		logger.Duration("duration", time.Since(start)))
	return combined
}

// normalizeChunk fans the chunk's items out to workers and folds the
// per-item results into the combined result in input order.
func (p *Pipeline) normalizeChunk(ctx context.Context, chunk []domain.RawContent, combined *Result) {
	type job struct {
		index int
		raw   domain.RawContent
	}

	jobs := make(chan job, len(chunk))
	results := make([]*Result, len(chunk))

	var wg sync.WaitGroup
	workers := p.opts.Concurrency
	if workers > len(chunk) {
		workers = len(chunk)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					results[j.index] = &Result{Errors: []string{j.raw.ID + ": " + ctx.Err().Error()}}
					continue
				default:
				}
				item := &Result{}
				p.accumulate(ctx, j.raw, item)
				results[j.index] = item
			}
		}()
	}

	for i, raw := range chunk {
		jobs <- job{index: i, raw: raw}
	}
	close(jobs)
	wg.Wait()

	for _, item := range results {
		if item == nil {
			continue
		}
		combined.Content = append(combined.Content, item.Content...)
		combined.Errors = append(combined.Errors, item.Errors...)
		combined.DuplicatesRemoved += item.DuplicatesRemoved
	}
}
