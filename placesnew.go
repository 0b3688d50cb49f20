package gomaps

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// defaultPlacesFieldMask is used when a Places API (New) request does not
// name the fields it wants. The New API rejects requests without a field
// mask, so the zero value asks for the fields this package models.
const defaultPlacesFieldMask = "places.id,places.displayName,places.formattedAddress,places.types,places.location,places.rating,nextPageToken"

// TextSearchNewRequest describes a Places API (New) text search. Unlike the
// classic text search this is a POST with a JSON body, and the response only
// carries the fields named in FieldMask.
type TextSearchNewRequest struct {
	// TextQuery is the free-text query, e.g. "pizza in New York".
	TextQuery string `json:"textQuery"`
	// LanguageCode controls the language of names and addresses, e.g. "en".
	LanguageCode string `json:"languageCode,omitempty"`
	// RegionCode biases results toward a CLDR region, e.g. "AU".
	RegionCode string `json:"regionCode,omitempty"`
	// IncludedType restricts results to a single place type.
	IncludedType string `json:"includedType,omitempty"`
	// PageSize caps results per page (the service maximum is 20).
	PageSize int `json:"pageSize,omitempty"`
	// PageToken retrieves the next page of a previous search.
	PageToken string `json:"pageToken,omitempty"`

	// FieldMask lists the response fields to return, e.g.
	// "places.displayName". Sent as the X-Goog-FieldMask header, not in the
	// body. Empty means defaultPlacesFieldMask.
	FieldMask []string `json:"-"`
}

// TextSearchNewResponse is the Places API (New) text search response.
type TextSearchNewResponse struct {
	Places []PlaceNew `json:"places"`
	// NextPageToken, when set, retrieves further results via PageToken.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// StatusError implements the application-status hook for the retry
// wrapper; this API reports failures through the HTTP status code only.
func (r *TextSearchNewResponse) StatusError() error {
	return nil
}

// PlaceNew is a single Places API (New) result. Fields outside the request's
// field mask are zero.
type PlaceNew struct {
	// ID is the resource ID, the New-API replacement for place_id.
	ID               string        `json:"id"`
	DisplayName      LocalizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	Types            []string      `json:"types"`
	// Location uses the google.type.LatLng field names rather than the
	// classic lat/lng.
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Rating float64 `json:"rating,omitempty"`
}

// LocalizedText is a string together with its language.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// TextSearchNew finds places matching a free-text query through the Places
// API (New).
func (c *Client) TextSearchNew(ctx context.Context, req *TextSearchNewRequest) (*TextSearchNewResponse, error) {
	if req.TextQuery == "" {
		return nil, fmt.Errorf("textQuery is required")
	}
	mask := defaultPlacesFieldMask
	if len(req.FieldMask) > 0 {
		mask = strings.Join(req.FieldMask, ",")
	}
	headers := map[string]string{"X-Goog-FieldMask": mask}

	var resp TextSearchNewResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.PlacesNew}
	if err := c.apiClient.PostJSON(ctx, apis, c.placesNewURL+"/places:searchText", headers, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
