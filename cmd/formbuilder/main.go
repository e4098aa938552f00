package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/internal/shell"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/loader"
)

func main() {
	seed := flag.String("form", "", "form definition to load (JSON or YAML)")
	outputDir := flag.String("output", ".", "directory for exported questionnaires")
	previewPath := flag.String("preview", "preview.html", "path for the HTML preview file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger, err := buildLogger(*verbose)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := []shell.Option{
		shell.WithLogger(logger),
		shell.WithExporter(export.New(
			export.WithLogger(logger),
			export.WithOutputDir(*outputDir),
		)),
		shell.WithPreviewPath(*previewPath),
	}

	registry, err := formbuilder.DefaultRegistry()
	if err != nil {
		logger.Fatal("init renderers", zap.Error(err))
	}
	options = append(options, shell.WithRegistry(registry))

	if *seed != "" {
		form, err := loader.LoadFile(*seed)
		if err != nil {
			logger.Fatal("load form", zap.String("path", *seed), zap.Error(err))
		}
		options = append(options, shell.WithForm(form))
	}

	s, err := shell.New(options...)
	if err != nil {
		logger.Fatal("init shell", zap.Error(err))
	}

	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("builder session failed", zap.Error(err))
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
