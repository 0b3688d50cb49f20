package gomaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// DistanceMatrixRequest describes a travel distance and time calculation
// for every origin/destination pair.
type DistanceMatrixRequest struct {
	Origins      []string
	Destinations []string
	// Mode defaults to driving when empty.
	Mode TravelMode
	// Language controls the language of the returned addresses.
	Language string
}

// DistanceMatrixResponse is the Distance Matrix API response. Rows follow
// the order of Origins; elements within a row follow Destinations.
type DistanceMatrixResponse struct {
	Status               Status              `json:"status"`
	ErrorMessage         string              `json:"error_message,omitempty"`
	OriginAddresses      []string            `json:"origin_addresses"`
	DestinationAddresses []string            `json:"destination_addresses"`
	Rows                 []DistanceMatrixRow `json:"rows"`
}

// StatusError implements the application-status hook for the retry wrapper.
func (r *DistanceMatrixResponse) StatusError() error {
	return r.Status.statusError(r.ErrorMessage)
}

// DistanceMatrixRow holds the elements for one origin.
type DistanceMatrixRow struct {
	Elements []DistanceMatrixElement `json:"elements"`
}

// DistanceMatrixElement is the result for one origin/destination pair. Its
// Status is per-pair: the top-level response can be OK while an individual
// pair is NOT_FOUND or ZERO_RESULTS.
type DistanceMatrixElement struct {
	Status   Status    `json:"status"`
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
}

// DistanceMatrix calculates travel distance and time for all pairs of
// origins and destinations.
func (c *Client) DistanceMatrix(ctx context.Context, req *DistanceMatrixRequest) (*DistanceMatrixResponse, error) {
	if len(req.Origins) == 0 || len(req.Destinations) == 0 {
		return nil, fmt.Errorf("origins and destinations are required")
	}
	query := url.Values{}
	query.Set("origins", strings.Join(req.Origins, "|"))
	query.Set("destinations", strings.Join(req.Destinations, "|"))
	if req.Mode != "" {
		query.Set("mode", string(req.Mode))
	}
	if req.Language != "" {
		query.Set("language", req.Language)
	}

	var resp DistanceMatrixResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.DistanceMatrix}
	if err := c.apiClient.GetJSON(ctx, apis, c.baseURL+"/distancematrix/json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
