package gomaps

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// ElevationRequest describes a positional elevation lookup.
type ElevationRequest struct {
	// Locations are the points to sample.
	Locations []LatLng
}

// ElevationResponse is the Elevation API response.
type ElevationResponse struct {
	Status       Status            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Results      []ElevationResult `json:"results"`
}

// StatusError implements the application-status hook for the retry wrapper.
func (r *ElevationResponse) StatusError() error {
	return r.Status.statusError(r.ErrorMessage)
}

// ElevationResult is the elevation of one sampled point.
type ElevationResult struct {
	// Elevation is meters above sea level.
	Elevation float64 `json:"elevation"`
	Location  LatLng  `json:"location"`
	// Resolution is the maximum distance in meters between data points
	// used to interpolate the elevation.
	Resolution float64 `json:"resolution,omitempty"`
}

// Elevation returns the elevation of each given point.
func (c *Client) Elevation(ctx context.Context, req *ElevationRequest) (*ElevationResponse, error) {
	if len(req.Locations) == 0 {
		return nil, fmt.Errorf("at least one location is required")
	}
	query := url.Values{}
	query.Set("locations", joinLatLngs(req.Locations))

	var resp ElevationResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.Elevation}
	if err := c.apiClient.GetJSON(ctx, apis, c.baseURL+"/elevation/json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
