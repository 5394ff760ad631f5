package ingest

import (
	"unlocode/internal/types"
)

// FunctionDialect selects how the function column is decoded.
type FunctionDialect string

const (
	// DialectPositional is the current distribution format: position i of the
	// eight-character column selects the classification.
	DialectPositional FunctionDialect = "positional"

	// DialectLegacy is the historical single-character format: the character
	// itself selects the classification.
	DialectLegacy FunctionDialect = "legacy"
)

// normalizeRow converts a raw source row into a normalized record. A
// malformed coordinate column degrades to absent coordinates instead of
// failing the row; status and function columns cannot fail at all.
func (s *service) normalizeRow(raw RawRecord) *types.Record {
	coords, err := types.ParseDMS(raw.Coordinates)
	if err != nil {
		s.logger.Debug("unparseable coordinates column",
			"country", raw.Country,
			"location", raw.Location,
			"raw", raw.Coordinates,
			"error", err,
		)
		coords = nil
	}

	var functions []types.FunctionCode
	if s.dialect == DialectLegacy {
		functions = types.ParseLegacyFunctionCodes(raw.Function)
	} else {
		functions = types.ParseFunctionCodes(raw.Function)
	}

	name := raw.Name
	if name == "" {
		name = raw.NameWoDiacritics
	}

	return &types.Record{
		Country:          raw.Country,
		Location:         raw.Location,
		Name:             name,
		NameWoDiacritics: raw.NameWoDiacritics,
		Subdivision:      raw.Subdivision,
		Status:           types.ParseStatus(raw.Status),
		Function:         functions,
		Coordinates:      coords,
	}
}
