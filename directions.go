package gomaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// TravelMode selects the mode of transport for Directions and Distance
// Matrix requests.
type TravelMode string

// Travel modes.
const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// DirectionsRequest describes a route calculation.
type DirectionsRequest struct {
	// Origin and Destination accept addresses, "lat,lng" pairs, or
	// place IDs prefixed with "place_id:".
	Origin      string
	Destination string
	// Mode defaults to driving when empty.
	Mode TravelMode
	// Waypoints are intermediate stops between origin and destination.
	Waypoints []string
	// Alternatives requests more than one route when available.
	Alternatives bool
	// Language controls the language of instructions and addresses.
	Language string
}

// DirectionsResponse is the Directions API response.
type DirectionsResponse struct {
	Status       Status  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

// StatusError implements the application-status hook for the retry wrapper.
func (r *DirectionsResponse) StatusError() error {
	return r.Status.statusError(r.ErrorMessage)
}

// Route is one way of getting from origin to destination.
type Route struct {
	// Summary is a short description of the route, e.g. "I-280 S".
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`
}

// Leg is the portion of a route between two waypoints.
type Leg struct {
	Distance      TextValue `json:"distance"`
	Duration      TextValue `json:"duration"`
	StartAddress  string    `json:"start_address"`
	EndAddress    string    `json:"end_address"`
	StartLocation LatLng    `json:"start_location"`
	EndLocation   LatLng    `json:"end_location"`
}

// TextValue is a quantity with both a human-readable text form and a
// numeric value (meters for distances, seconds for durations).
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// Directions calculates routes between an origin and a destination.
func (c *Client) Directions(ctx context.Context, req *DirectionsRequest) (*DirectionsResponse, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}
	query := url.Values{}
	query.Set("origin", req.Origin)
	query.Set("destination", req.Destination)
	if req.Mode != "" {
		query.Set("mode", string(req.Mode))
	}
	if len(req.Waypoints) > 0 {
		query.Set("waypoints", strings.Join(req.Waypoints, "|"))
	}
	if req.Alternatives {
		query.Set("alternatives", "true")
	}
	if req.Language != "" {
		query.Set("language", req.Language)
	}

	var resp DirectionsResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.Directions}
	if err := c.apiClient.GetJSON(ctx, apis, c.baseURL+"/directions/json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
