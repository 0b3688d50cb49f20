package gomaps

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// TextSearchRequest describes a Places text search, e.g. "pizza in
// New York".
type TextSearchRequest struct {
	Query string
	// Location and Radius (meters) bias results toward an area.
	Location *LatLng
	Radius   uint
	// Language controls the language of names and addresses.
	Language string
	// PageToken retrieves the next page of a previous search.
	PageToken string
}

// PlacesSearchResponse is the Places text search response.
type PlacesSearchResponse struct {
	Status       Status  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Results      []Place `json:"results"`
	// NextPageToken, when set, retrieves further results via PageToken.
	NextPageToken string `json:"next_page_token,omitempty"`
}

// StatusError implements the application-status hook for the retry wrapper.
func (r *PlacesSearchResponse) StatusError() error {
	return r.Status.statusError(r.ErrorMessage)
}

// Place is a single Places result.
type Place struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types"`
	Geometry         Geometry `json:"geometry"`
}

// TextSearch finds places matching a free-text query.
func (c *Client) TextSearch(ctx context.Context, req *TextSearchRequest) (*PlacesSearchResponse, error) {
	if req.Query == "" && req.PageToken == "" {
		return nil, fmt.Errorf("query is required")
	}
	query := url.Values{}
	if req.Query != "" {
		query.Set("query", req.Query)
	}
	if req.Location != nil {
		query.Set("location", req.Location.String())
	}
	if req.Radius > 0 {
		query.Set("radius", strconv.FormatUint(uint64(req.Radius), 10))
	}
	if req.Language != "" {
		query.Set("language", req.Language)
	}
	if req.PageToken != "" {
		query.Set("pagetoken", req.PageToken)
	}

	var resp PlacesSearchResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.Places}
	if err := c.apiClient.GetJSON(ctx, apis, c.baseURL+"/place/textsearch/json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
