package gomaps

import (
	"fmt"
	"strconv"
	"strings"
)

// LatLng is a WGS84 coordinate pair as used by the classic Maps APIs.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the coordinate as "lat,lng" for use in query strings.
func (l LatLng) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// ParseLatLng parses a "lat,lng" string.
func ParseLatLng(s string) (LatLng, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return LatLng{}, fmt.Errorf("invalid lat,lng pair: %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("invalid longitude: %w", err)
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}

// joinLatLngs formats coordinates separated by "|", the list separator used
// by the Elevation API.
func joinLatLngs(locations []LatLng) string {
	parts := make([]string, len(locations))
	for i, l := range locations {
		parts[i] = l.String()
	}
	return strings.Join(parts, "|")
}
