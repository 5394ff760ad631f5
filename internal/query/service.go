package query

import (
	"context"
	"log/slog"

	"unlocode/internal/cache"
	"unlocode/internal/types"
)

// Result is the shaped answer to a location-code lookup. Subdivision is
// omitted entirely when unset; coordinates serialize as null when absent so
// "no position" stays distinguishable from an empty object.
type Result struct {
	FullCode    string               `json:"fullCode"`
	Name        string               `json:"locationName"`
	Subdivision string               `json:"subdivision,omitempty"`
	Status      types.Status         `json:"status"`
	Function    []types.FunctionCode `json:"functionCodes"`
	Coordinates *types.Coordinates   `json:"coordinates"`
	Geocoded    bool                 `json:"geocoded,omitempty"`
}

// Service is the public query entry point.
type Service interface {
	// Query resolves a two-part location code. The second return value is
	// false when the country has no dataset or the location code does not
	// appear in it; neither case is an error.
	Query(ctx context.Context, countryCode, locationCode string) (*Result, bool)
}

type service struct {
	datasets *cache.Cache
	logger   *slog.Logger
}

func NewService(datasets *cache.Cache, logger *slog.Logger) Service {
	return &service{
		datasets: datasets,
		logger:   logger.With("component", "query-service"),
	}
}

func (s *service) Query(ctx context.Context, countryCode, locationCode string) (*Result, bool) {
	records, ok := s.datasets.GetOrLoad(ctx, countryCode)
	if !ok {
		s.logger.Debug("unknown country", "country", countryCode)
		return nil, false
	}

	// First match wins: source data may contain duplicate codes. Matching is
	// exact and case-sensitive.
	for _, rec := range records {
		if rec.Location == locationCode {
			return shape(rec), true
		}
	}

	s.logger.Debug("unknown location",
		"country", countryCode,
		"location", locationCode,
	)
	return nil, false
}

func shape(rec *types.Record) *Result {
	return &Result{
		FullCode:    rec.FullCode(),
		Name:        rec.Name,
		Subdivision: rec.Subdivision,
		Status:      rec.Status,
		Function:    rec.Function,
		Coordinates: rec.Coordinates,
		Geocoded:    rec.Geocoded,
	}
}
