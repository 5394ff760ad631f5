package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"unlocode/internal/config"
	"unlocode/internal/dataset"
	"unlocode/internal/geocode"
	"unlocode/internal/ingest"
	"unlocode/internal/providers/geoapify"
)

// The generate command converts raw UN/LOCODE distribution files into one
// normalized JSON dataset per country, back-filling missing coordinates
// through the geocoding provider. Files the pipeline cannot read are logged
// and skipped; the run continues with the rest.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	client := geoapify.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.APIKey, cfg.Geocode.Timeout, logger)
	resolver := geocode.NewService(client, geocode.Config{
		RequestDelay:  cfg.Geocode.RequestDelay,
		MaxConcurrent: cfg.Geocode.MaxConcurrent,
	}, logger)
	pipeline := ingest.NewService(resolver, ingest.FunctionDialect(cfg.Data.FunctionDialect), logger)
	store := dataset.NewStore(cfg.Data.OutputDir, logger)

	entries, err := os.ReadDir(cfg.Data.SourceDir)
	if err != nil {
		logger.Error("failed to read source directory", "dir", cfg.Data.SourceDir, "error", err)
		log.Fatal(err)
	}

	ctx := context.Background()
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(cfg.Data.SourceDir, entry.Name())
		src, ok := sourceFor(path)
		if !ok {
			logger.Warn("file format not accepted", "file", entry.Name())
			continue
		}

		logger.Info("processing source file", "file", entry.Name())

		data, err := pipeline.Ingest(src)
		if err != nil {
			logger.Error("failed to ingest source file", "file", entry.Name(), "error", err)
			continue
		}

		pipeline.Enrich(ctx, data)

		if err := store.WriteAll(data); err != nil {
			logger.Error("failed to write datasets", "file", entry.Name(), "error", err)
			continue
		}

		processed++
	}

	logger.Info("generation finished", "files", processed)
}

// sourceFor picks the source adapter by file extension. Only the two
// distribution formats are accepted.
func sourceFor(path string) (ingest.Source, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ingest.NewCSVFileSource(path), true
	case ".xlsx":
		return ingest.NewXLSXSource(path), true
	default:
		return nil, false
	}
}
