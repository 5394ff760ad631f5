package geocode

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"unlocode/internal/providers/geoapify"
	"unlocode/internal/types"

	"golang.org/x/sync/errgroup"
)

// CityFinder resolves a city by free-text search scoped to a country.
// A nil match means the provider knows no such city.
type CityFinder interface {
	FindCity(ctx context.Context, text, countryCode string) (*geoapify.CityMatch, error)
}

// POIFinder queries points of interest of a category inside a place.
type POIFinder interface {
	FindPointsOfInterest(ctx context.Context, category, placeID string) (*geoapify.CityMatch, error)
}

// AmenityFinder resolves an amenity by free-text search scoped to a country.
type AmenityFinder interface {
	FindAmenity(ctx context.Context, text, countryCode string) (*geoapify.CityMatch, error)
}

// Service back-fills missing coordinates through an ordered fallback chain
// against a geocoding provider.
type Service interface {
	// Resolve runs the fallback chain for a single record and reports whether
	// coordinates were found. Exhaustion is not an error.
	Resolve(ctx context.Context, rec *types.Record) bool

	// EnrichAll resolves every record in the dataset that lacks coordinates
	// and returns once all of them have settled.
	EnrichAll(ctx context.Context, data map[string][]*types.Record)
}

// Config tunes the resolver's outbound behavior.
type Config struct {
	// RequestDelay is slept before dispatching each record's chain, throttling
	// issuance to stay within the provider's request budget.
	RequestDelay time.Duration

	// MaxConcurrent bounds the number of chains in flight at once.
	MaxConcurrent int
}

type resolver struct {
	cityFinder    CityFinder
	poiFinder     POIFinder
	amenityFinder AmenityFinder
	cfg           Config
	logger        *slog.Logger
}

// NewService creates a resolver backed by a single Geoapify client.
func NewService(client *geoapify.Client, cfg Config, logger *slog.Logger) Service {
	return NewServiceWithProviders(client, client, client, cfg, logger)
}

// NewServiceWithProviders creates a resolver with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	cityFinder CityFinder,
	poiFinder POIFinder,
	amenityFinder AmenityFinder,
	cfg Config,
	logger *slog.Logger,
) Service {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &resolver{
		cityFinder:    cityFinder,
		poiFinder:     poiFinder,
		amenityFinder: amenityFinder,
		cfg:           cfg,
		logger:        logger.With("component", "geocode-resolver"),
	}
}

// Resolve tries each lookup strategy in order and stops at the first that
// yields coordinates. Steps 1 and 2 apply only to records classified as
// airports. Provider failures and empty results both advance the chain.
func (r *resolver) Resolve(ctx context.Context, rec *types.Record) bool {
	if rec.Name == "" {
		r.logger.Warn("record has no name to geocode",
			"country", rec.Country,
			"location", rec.Location,
		)
		return false
	}

	if rec.HasFunction(types.FunctionAirport) {
		if coords := r.airportByCity(ctx, rec); coords != nil {
			return r.apply(rec, coords, "airport-by-city")
		}
		if coords := r.amenityByName(ctx, rec); coords != nil {
			return r.apply(rec, coords, "amenity-by-name")
		}
	}

	if coords := r.cityByName(ctx, rec, true); coords != nil {
		return r.apply(rec, coords, "city-with-subdivision")
	}
	if coords := r.cityByName(ctx, rec, false); coords != nil {
		return r.apply(rec, coords, "city-by-name")
	}

	r.logger.Info("no coordinates found",
		"country", rec.Country,
		"location", rec.Location,
		"name", rec.Name,
	)
	return false
}

// EnrichAll dispatches one chain per unresolved record, at most MaxConcurrent
// in flight, pacing issuance by RequestDelay per record. It returns only after
// every chain has settled; individual exhaustion never fails the batch.
func (r *resolver) EnrichAll(ctx context.Context, data map[string][]*types.Record) {
	g := &errgroup.Group{}
	g.SetLimit(r.cfg.MaxConcurrent)

	total := 0
	for _, records := range data {
		for _, rec := range records {
			if !rec.NeedsCoordinates() {
				continue
			}

			if r.cfg.RequestDelay > 0 {
				time.Sleep(r.cfg.RequestDelay)
			}

			total++
			rec := rec
			g.Go(func() error {
				r.Resolve(ctx, rec)
				return nil
			})
		}
	}

	// Resolve never returns an error; Wait is purely a join barrier.
	_ = g.Wait()

	r.logger.Info("enrichment settled", "records", total)
}

func (r *resolver) apply(rec *types.Record, coords *types.Coordinates, strategy string) bool {
	rec.Coordinates = coords
	rec.Geocoded = true

	r.logger.Debug("coordinates resolved",
		"country", rec.Country,
		"location", rec.Location,
		"strategy", strategy,
	)
	return true
}

// airportByCity resolves the record's city to a place, then takes the first
// airport point of interest inside it.
func (r *resolver) airportByCity(ctx context.Context, rec *types.Record) *types.Coordinates {
	city, err := r.cityFinder.FindCity(ctx, cityQuery(rec, true), rec.Country)
	if err != nil {
		r.logger.Debug("city lookup failed", "name", rec.Name, "error", err)
		return nil
	}
	if city == nil {
		return nil
	}

	poi, err := r.poiFinder.FindPointsOfInterest(ctx, "airport", city.PlaceID)
	if err != nil {
		r.logger.Debug("points-of-interest lookup failed", "name", rec.Name, "error", err)
		return nil
	}
	if poi == nil {
		return nil
	}

	coords := poi.Coordinates
	return &coords
}

func (r *resolver) amenityByName(ctx context.Context, rec *types.Record) *types.Coordinates {
	match, err := r.amenityFinder.FindAmenity(ctx, rec.Name, rec.Country)
	if err != nil {
		r.logger.Debug("amenity lookup failed", "name", rec.Name, "error", err)
		return nil
	}
	if match == nil {
		return nil
	}

	coords := match.Coordinates
	return &coords
}

func (r *resolver) cityByName(ctx context.Context, rec *types.Record, withSubdivision bool) *types.Coordinates {
	match, err := r.cityFinder.FindCity(ctx, cityQuery(rec, withSubdivision), rec.Country)
	if err != nil {
		r.logger.Debug("city lookup failed", "name", rec.Name, "error", err)
		return nil
	}
	if match == nil {
		return nil
	}

	coords := match.Coordinates
	return &coords
}

func cityQuery(rec *types.Record, withSubdivision bool) string {
	if withSubdivision && rec.Subdivision != "" {
		return strings.Join([]string{rec.Name, rec.Subdivision}, " ")
	}
	return rec.Name
}
