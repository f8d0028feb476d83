package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/api"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/config"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/dedup"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/gazetteer"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/normalize"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/pipeline"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/tagging"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/telemetry"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/transform"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "normalizer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting normalization service",
		logger.String("name", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

	tel := telemetry.NewProvider()

	recognizer := normalize.NewEntityRecognizer(gazetteer.NewStatic())
	transformers := []transform.Transformer{
		transform.NewWebTransformer(recognizer, log),
		transform.NewDocumentTransformer(recognizer, log),
	}

	opts := pipeline.Options{
		EnableDeduplication:    cfg.Pipeline.EnableDeduplication,
		DeduplicationThreshold: cfg.Pipeline.DeduplicationThreshold,
		ValidateOutput:         cfg.Pipeline.ValidateOutput,
		BatchSize:              cfg.Pipeline.BatchSize,
		Concurrency:            cfg.Pipeline.Concurrency,
	}

	var deduplicator *dedup.Deduplicator
	if opts.EnableDeduplication {
		deduplicator = dedup.New(opts.DeduplicationThreshold, log)
	}

	p := pipeline.New(transformers, deduplicator, opts, tel, log)
	tagger := tagging.NewContentTagger(tel, log)

	handler := api.NewHandler(p, tagger, cfg.Service.Name, cfg.Service.Version, log)
	server := api.NewServer(cfg, handler, tel, log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		log.Info("server stopped")
	}
	return nil
}
