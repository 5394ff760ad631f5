package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"unlocode/internal/types"
)

// API Docs: https://apidocs.geoapify.com/docs/geocoding/forward-geocoding/
// Sample request: https://api.geoapify.com/v1/geocode/search?text=Aspen&type=city&filter=countrycode:us&format=json&apiKey=...
const (
	DefaultBaseURL = "https://api.geoapify.com"

	geocodePath = "/v1/geocode/search"
	placesPath  = "/v2/places"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a Geoapify API client. The timeout bounds every request;
// no call may block past it.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "geoapify-client"),
	}
}

// FindCity resolves a city by free-text search scoped to a country and returns
// the first candidate, or nil when the API knows no such city.
func (c *Client) FindCity(ctx context.Context, text, countryCode string) (*CityMatch, error) {
	result, err := c.geocode(ctx, text, "city", countryCode)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return &CityMatch{
		PlaceID:     result.PlaceID,
		Coordinates: types.NewCoordinates(result.Lat, result.Lon),
	}, nil
}

// FindAmenity resolves an amenity by free-text search scoped to a country and
// returns the first candidate's coordinates, or nil when nothing matches.
func (c *Client) FindAmenity(ctx context.Context, text, countryCode string) (*CityMatch, error) {
	result, err := c.geocode(ctx, text, "amenity", countryCode)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return &CityMatch{
		PlaceID:     result.PlaceID,
		Coordinates: types.NewCoordinates(result.Lat, result.Lon),
	}, nil
}

// FindPointsOfInterest queries points of interest of the given category inside
// a place and returns the first feature, or nil when the place has none.
func (c *Client) FindPointsOfInterest(ctx context.Context, category, placeID string) (*CityMatch, error) {
	u, err := url.Parse(c.baseURL + placesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("categories", category)
	q.Set("filter", "place:"+placeID)
	q.Set("limit", "20")
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching points of interest",
		"category", category,
		"place_id", placeID,
	)

	var apiResp PlacesAPIResponse
	if err := c.get(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Features) == 0 {
		return nil, nil
	}

	props := apiResp.Features[0].Properties
	return &CityMatch{
		PlaceID:     props.PlaceID,
		Coordinates: types.NewCoordinates(props.Lat, props.Lon),
	}, nil
}

func (c *Client) geocode(ctx context.Context, text, searchType, countryCode string) (*GeocodeResult, error) {
	u, err := url.Parse(c.baseURL + geocodePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("text", text)
	q.Set("type", searchType)
	q.Set("filter", "countrycode:"+strings.ToLower(countryCode))
	q.Set("format", "json")
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching geocoding candidates",
		"text", text,
		"type", searchType,
		"country", countryCode,
	)

	var apiResp GeocodeAPIResponse
	if err := c.get(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Results) == 0 {
		return nil, nil
	}

	return &apiResp.Results[0], nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		var apiErr ErrorAPIResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			c.logger.Error("Geoapify API returned error",
				"status_code", resp.StatusCode,
				"message", apiErr.Message,
			)
			return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, apiErr.Message)
		}

		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
