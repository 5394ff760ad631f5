package types

// Record is one normalized UN/LOCODE entry. Records are created during
// ingestion, persisted in per-country dataset files and immutable afterwards.
//
// Coordinates is nil when neither the source nor the geocoding fallback
// produced a position; it serializes as JSON null rather than being omitted so
// consumers can distinguish the field from a truncated record. Geocoded is set
// only together with Coordinates, and only when the position was back-filled
// by the resolver instead of parsed from the source.
type Record struct {
	Country          string         `json:"country"`
	Location         string         `json:"location"`
	Name             string         `json:"name"`
	NameWoDiacritics string         `json:"nameWoDiacritics"`
	Subdivision      string         `json:"subdivision,omitempty"`
	Status           Status         `json:"status"`
	Function         []FunctionCode `json:"function"`
	Coordinates      *Coordinates   `json:"coordinates"`
	Geocoded         bool           `json:"geocoded,omitempty"`
}

// FullCode returns the concatenated country and location codes ("USNYC").
// Display only: datasets are keyed by country, never by the full code.
func (r *Record) FullCode() string {
	return r.Country + r.Location
}

// HasFunction reports whether the record carries the given classification.
func (r *Record) HasFunction(fc FunctionCode) bool {
	for _, f := range r.Function {
		if f == fc {
			return true
		}
	}
	return false
}

// NeedsCoordinates reports whether the record is a candidate for geocoding.
func (r *Record) NeedsCoordinates() bool {
	return r.Coordinates == nil
}
