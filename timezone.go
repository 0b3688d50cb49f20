package gomaps

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// TimeZoneRequest describes a time zone lookup for a point in time and
// space.
type TimeZoneRequest struct {
	// Location is the coordinate to look up.
	Location LatLng
	// Timestamp determines whether daylight saving applies. The zero
	// value means "now".
	Timestamp time.Time
	// Language controls the language of TimeZoneName.
	Language string
}

// TimeZoneResponse is the Time Zone API response.
type TimeZoneResponse struct {
	Status       Status `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	// DstOffset is the daylight saving offset in seconds.
	DstOffset int `json:"dstOffset"`
	// RawOffset is the offset from UTC in seconds, ignoring DST.
	RawOffset int `json:"rawOffset"`
	// TimeZoneID is the IANA identifier, e.g. "America/Los_Angeles".
	TimeZoneID   string `json:"timeZoneId"`
	TimeZoneName string `json:"timeZoneName"`
}

// StatusError implements the application-status hook for the retry wrapper.
func (r *TimeZoneResponse) StatusError() error {
	return r.Status.statusError(r.ErrorMessage)
}

// Location returns the IANA time zone location for the response.
func (r *TimeZoneResponse) Location() (*time.Location, error) {
	return time.LoadLocation(r.TimeZoneID)
}

// TimeZone returns the time zone in effect at a location.
func (c *Client) TimeZone(ctx context.Context, req *TimeZoneRequest) (*TimeZoneResponse, error) {
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	query := url.Values{}
	query.Set("location", req.Location.String())
	query.Set("timestamp", strconv.FormatInt(ts.Unix(), 10))
	if req.Language != "" {
		query.Set("language", req.Language)
	}

	var resp TimeZoneResponse
	apis := []ratelimit.API{ratelimit.All, ratelimit.TimeZone}
	if err := c.apiClient.GetJSON(ctx, apis, c.baseURL+"/timezone/json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
