package types

import "fmt"

const (
	latDegDigits = 2
	lonDegDigits = 3
	minuteDigits = 2
)

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinates(lat, lon float64) Coordinates {
	return Coordinates{
		Lat: lat,
		Lon: lon,
	}
}

// ParseDMS converts a UN/LOCODE coordinate column into decimal degrees.
//
// The column is a fixed-width degrees/minutes/hemisphere token: two latitude
// degree digits, two minute digits and N or S, followed by three longitude
// degree digits, two minute digits and E or W. The two halves may be joined
// directly or separated by a single space, as in the distribution files
// ("4042N 07400W"). An empty column means the source carries no coordinates
// and yields (nil, nil).
func ParseDMS(raw string) (*Coordinates, error) {
	if raw == "" {
		return nil, nil
	}

	const (
		latLen = latDegDigits + minuteDigits + 1
		lonLen = lonDegDigits + minuteDigits + 1
	)

	switch len(raw) {
	case latLen + lonLen:
	case latLen + 1 + lonLen:
		if raw[latLen] != ' ' {
			return nil, fmt.Errorf("unexpected separator %q in coordinates %q", raw[latLen], raw)
		}
		raw = raw[:latLen] + raw[latLen+1:]
	default:
		return nil, fmt.Errorf("unexpected coordinates width %d in %q", len(raw), raw)
	}

	lat, err := parseHalf(raw[:latLen], latDegDigits, 'N', 'S')
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude: %w", err)
	}

	lon, err := parseHalf(raw[latLen:], lonDegDigits, 'E', 'W')
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude: %w", err)
	}

	c := NewCoordinates(lat, lon)
	return &c, nil
}

// parseHalf decodes one coordinate half: degDigits degree digits, two minute
// digits and a hemisphere letter. The value is negated for the negative
// hemisphere.
func parseHalf(s string, degDigits int, positive, negative byte) (float64, error) {
	deg, err := parseDigits(s[:degDigits])
	if err != nil {
		return 0, err
	}

	min, err := parseDigits(s[degDigits : degDigits+minuteDigits])
	if err != nil {
		return 0, err
	}

	value := float64(deg) + float64(min)/60

	switch s[degDigits+minuteDigits] {
	case positive:
	case negative:
		value = -value
	default:
		return 0, fmt.Errorf("unknown hemisphere %q in %q", s[degDigits+minuteDigits], s)
	}

	return value, nil
}

func parseDigits(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character %q in %q", s[i], s)
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, nil
}
