// Command pipeline runs the normalization pipeline over a newline-delimited
// JSON stream of raw content items, one item per line, and writes normalized
// records to stdout in the same format.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/dedup"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/pipeline"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/tagging"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/transform"
)

// Lines of scraped output can carry large embedded text blocks.
const maxLineBytes = 4 * 1024 * 1024

type options struct {
	input          string
	output         string
	tag            bool
	batchSize      int
	concurrency    int
	dedupThreshold float64
	noDedup        bool
	noValidate     bool
	logLevel       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pipeline: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Normalize, deduplicate, and tag raw travel content",
		Long: `Reads raw content items as newline-delimited JSON from a file or stdin,
runs them through the normalization pipeline, and writes normalized records
as newline-delimited JSON. Errors and duplicate counts go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file, or - for stdout")
	cmd.Flags().BoolVar(&opts.tag, "tag", false, "run the tagger on each normalized item")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", pipeline.DefaultBatchSize, "items per batch")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", pipeline.DefaultConcurrency, "workers per batch")
	cmd.Flags().Float64Var(&opts.dedupThreshold, "dedup-threshold", 0.8, "similarity threshold for duplicates")
	cmd.Flags().BoolVar(&opts.noDedup, "no-dedup", false, "disable deduplication")
	cmd.Flags().BoolVar(&opts.noValidate, "no-validate", false, "disable output validation")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := logger.New(logger.Config{
		Level:       opts.logLevel,
		Format:      "json",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	items, err := readItems(opts.input)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	p := buildPipeline(opts, log)
	result := p.NormalizeBatch(ctx, items)

	var tagger *tagging.ContentTagger
	if opts.tag {
		tagger = tagging.NewContentTagger(nil, log)
	}

	if err := writeResults(ctx, opts.output, result, tagger); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "processed %d items: %d normalized, %d duplicates removed, %d errors\n",
		len(items), len(result.Content), result.DuplicatesRemoved, len(result.Errors))
	for _, msg := range result.Errors {
		fmt.Fprintf(os.Stderr, "  %s\n", msg)
	}
	return nil
}

func buildPipeline(opts *options, log logger.Logger) *pipeline.Pipeline {
	recognizer := normalize.NewEntityRecognizer(gazetteer.NewStatic())
	transformers := []transform.Transformer{
		transform.NewWebTransformer(recognizer, log),
		transform.NewDocumentTransformer(recognizer, log),
	}

	pipeOpts := pipeline.Options{
		EnableDeduplication:    !opts.noDedup,
		DeduplicationThreshold: opts.dedupThreshold,
		ValidateOutput:         !opts.noValidate,
		BatchSize:              opts.batchSize,
		Concurrency:            opts.concurrency,
	}

	var deduplicator *dedup.Deduplicator
	if pipeOpts.EnableDeduplication {
		deduplicator = dedup.New(pipeOpts.DeduplicationThreshold, log)
	}

	return pipeline.New(transformers, deduplicator, pipeOpts, nil, log)
}

func readItems(path string) ([]domain.RawContent, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []domain.RawContent
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var item domain.RawContent
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return items, nil
}

func writeResults(ctx context.Context, path string, result *pipeline.Result, tagger *tagging.ContentTagger) error {
	var w io.Writer
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	for _, content := range result.Content {
		if tagger != nil {
			tagger.Tag(ctx, content)
		}
		if err := enc.Encode(content); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
