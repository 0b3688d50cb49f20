package gomaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// GeocodingRequest describes a forward geocoding lookup.
type GeocodingRequest struct {
	// Address is the street address to geocode.
	Address string
	// Language controls the language of the returned addresses.
	Language string
	// Region biases results toward a ccTLD region code, e.g. "de".
	Region string
}

// ReverseGeocodingRequest describes a reverse geocoding lookup.
type ReverseGeocodingRequest struct {
	// Location is the coordinate to resolve into addresses.
	Location LatLng
	// Language controls the language of the returned addresses.
	Language string
	// ResultTypes restricts results to the given address types,
	// e.g. "street_address".
	ResultTypes []string
}

// GeocodingResponse is the Geocoding API response.
type GeocodingResponse struct {
	Status       Status            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Results      []GeocodingResult `json:"results"`
}

// StatusError implements the application-status hook for the retry wrapper.
func (r *GeocodingResponse) StatusError() error {
	return r.Status.statusError(r.ErrorMessage)
}

// GeocodingResult is a single geocoded address.
type GeocodingResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
	PartialMatch     bool     `json:"partial_match,omitempty"`
}

// Geometry locates a result on the map.
type Geometry struct {
	Location LatLng `json:"location"`
	// LocationType describes the precision of Location, e.g. "ROOFTOP".
	LocationType string `json:"location_type,omitempty"`
}

// Geocode resolves a street address into coordinates.
func (c *Client) Geocode(ctx context.Context, req *GeocodingRequest) (*GeocodingResponse, error) {
	if req.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	query := url.Values{}
	query.Set("address", req.Address)
	if req.Language != "" {
		query.Set("language", req.Language)
	}
	if req.Region != "" {
		query.Set("region", req.Region)
	}
	return c.geocode(ctx, query)
}

// ReverseGeocode resolves a coordinate into street addresses.
func (c *Client) ReverseGeocode(ctx context.Context, req *ReverseGeocodingRequest) (*GeocodingResponse, error) {
	query := url.Values{}
	query.Set("latlng", req.Location.String())
	if req.Language != "" {
		query.Set("language", req.Language)
	}
	if len(req.ResultTypes) > 0 {
		query.Set("result_type", strings.Join(req.ResultTypes, "|"))
	}
	return c.geocode(ctx, query)
}

func (c *Client) geocode(ctx context.Context, query url.Values) (*GeocodingResponse, error) {
	var resp GeocodingResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.Geocoding}
	if err := c.apiClient.GetJSON(ctx, apis, c.baseURL+"/geocode/json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
