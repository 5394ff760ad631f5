package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"unlocode/internal/geocode"
	"unlocode/internal/types"
)

// Service turns raw source rows into per-country datasets and back-fills
// missing coordinates through the geocoding resolver.
type Service interface {
	// Ingest reads the source and groups normalized records by country code,
	// preserving source order within a country. Rows without a country or
	// location code are dropped.
	Ingest(src Source) (map[string][]*types.Record, error)

	// Enrich resolves coordinates for every record lacking them. Records the
	// resolver cannot place stay in the dataset with absent coordinates.
	Enrich(ctx context.Context, data map[string][]*types.Record)
}

type service struct {
	resolver geocode.Service
	dialect  FunctionDialect
	logger   *slog.Logger
}

// NewService creates an ingestion pipeline. The dialect selects how the
// function column is decoded; an empty value means positional.
func NewService(resolver geocode.Service, dialect FunctionDialect, logger *slog.Logger) Service {
	if dialect == "" {
		dialect = DialectPositional
	}
	return &service{
		resolver: resolver,
		dialect:  dialect,
		logger:   logger.With("component", "ingest-service"),
	}
}

func (s *service) Ingest(src Source) (map[string][]*types.Record, error) {
	data := make(map[string][]*types.Record)
	rows, dropped := 0, 0

	err := src.Iterate(func(raw RawRecord) error {
		rows++

		if raw.Country == "" || raw.Location == "" {
			dropped++
			return nil
		}

		rec := s.normalizeRow(raw)
		data[rec.Country] = append(data[rec.Country], rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan source: %w", err)
	}

	s.logger.Info("source ingested",
		"rows", rows,
		"dropped", dropped,
		"countries", len(data),
	)
	return data, nil
}

func (s *service) Enrich(ctx context.Context, data map[string][]*types.Record) {
	s.resolver.EnrichAll(ctx, data)

	for country, records := range data {
		for _, rec := range records {
			if rec.NeedsCoordinates() {
				s.logger.Warn("record left without coordinates",
					"country", country,
					"location", rec.Location,
					"name", rec.Name,
				)
			}
		}
	}
}
