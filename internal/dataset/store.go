package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"unlocode/internal/types"
)

// Store persists one JSON file per country code under a single directory.
// The file is an array of normalized records and is the cache's unit of load.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger.With("component", "dataset-store"),
	}
}

// WriteAll materializes every country of the dataset as <CC>.json.
func (s *Store) WriteAll(data map[string][]*types.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for country, records := range data {
		content, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal dataset %s: %w", country, err)
		}

		path := s.path(country)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write dataset %s: %w", country, err)
		}

		s.logger.Info("dataset written", "country", country, "records", len(records), "path", path)
	}

	return nil
}

// Load reads one country's dataset. A missing file or malformed content is an
// error; callers decide whether that means "country not found".
func (s *Store) Load(country string) ([]*types.Record, error) {
	content, err := os.ReadFile(s.path(country))
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", country, err)
	}

	var records []*types.Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", country, err)
	}

	return records, nil
}

func (s *Store) path(country string) string {
	return filepath.Join(s.dir, country+".json")
}
