package geoapify

import "unlocode/internal/types"

// GeocodeAPIResponse is the body of /v1/geocode/search with format=json.
type GeocodeAPIResponse struct {
	Results []GeocodeResult `json:"results"`
	Query   struct {
		Text string `json:"text"`
	} `json:"query"`
}

type GeocodeResult struct {
	PlaceID     string  `json:"place_id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	State       string  `json:"state"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	ResultType  string  `json:"result_type"`
	Formatted   string  `json:"formatted"`
}

// PlacesAPIResponse is the body of /v2/places (GeoJSON feature collection).
type PlacesAPIResponse struct {
	Type     string         `json:"type"`
	Features []PlaceFeature `json:"features"`
}

type PlaceFeature struct {
	Type       string `json:"type"`
	Properties struct {
		Name        string   `json:"name"`
		Country     string   `json:"country"`
		CountryCode string   `json:"country_code"`
		Lat         float64  `json:"lat"`
		Lon         float64  `json:"lon"`
		Categories  []string `json:"categories"`
		PlaceID     string   `json:"place_id"`
	} `json:"properties"`
}

// ErrorAPIResponse is the body Geoapify returns on non-200 statuses.
type ErrorAPIResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// CityMatch is the first geocoding candidate for a city query. The place
// identifier feeds the places API; the coordinates are the city's own.
type CityMatch struct {
	PlaceID     string
	Coordinates types.Coordinates
}
