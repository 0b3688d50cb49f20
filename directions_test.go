package gomaps

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirections(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/directions/json", r.URL.Path)
		assert.Equal(t, "Chicago, IL", q.Get("origin"))
		assert.Equal(t, "Los Angeles, CA", q.Get("destination"))
		assert.Equal(t, "driving", q.Get("mode"))
		assert.Equal(t, "Joplin, MO|Oklahoma City, OK", q.Get("waypoints"))
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"summary": "I-40 W",
				"legs": [{
					"distance": {"text": "1,234 km", "value": 1234000},
					"duration": {"text": "12 hours", "value": 43200},
					"start_address": "Chicago, IL, USA",
					"end_address": "Joplin, MO, USA",
					"start_location": {"lat": 41.8781136, "lng": -87.6297982},
					"end_location": {"lat": 37.0842271, "lng": -94.513281}
				}]
			}]
		}`))
	}))

	resp, err := c.Directions(context.Background(), &DirectionsRequest{
		Origin:      "Chicago, IL",
		Destination: "Los Angeles, CA",
		Mode:        TravelModeDriving,
		Waypoints:   []string{"Joplin, MO", "Oklahoma City, OK"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Routes, 1)
	assert.Equal(t, "I-40 W", resp.Routes[0].Summary)
	require.Len(t, resp.Routes[0].Legs, 1)
	assert.Equal(t, int64(1234000), resp.Routes[0].Legs[0].Distance.Value)
}

func TestDirections_RequiresEndpoints(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	}))

	_, err := c.Directions(context.Background(), &DirectionsRequest{Origin: "Chicago, IL"})
	assert.Error(t, err)
}

func TestDistanceMatrix(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/distancematrix/json", r.URL.Path)
		assert.Equal(t, "Vancouver BC|Seattle", q.Get("origins"))
		assert.Equal(t, "San Francisco", q.Get("destinations"))
		w.Write([]byte(`{
			"status": "OK",
			"origin_addresses": ["Vancouver, BC, Canada", "Seattle, WA, USA"],
			"destination_addresses": ["San Francisco, CA, USA"],
			"rows": [
				{"elements": [{"status": "OK", "distance": {"text": "1,527 km", "value": 1527251}, "duration": {"text": "15 hours", "value": 54000}}]},
				{"elements": [{"status": "ZERO_RESULTS"}]}
			]
		}`))
	}))

	resp, err := c.DistanceMatrix(context.Background(), &DistanceMatrixRequest{
		Origins:      []string{"Vancouver BC", "Seattle"},
		Destinations: []string{"San Francisco"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, StatusOK, resp.Rows[0].Elements[0].Status)
	assert.Equal(t, int64(1527251), resp.Rows[0].Elements[0].Distance.Value)
	// Per-pair failures ride inside an OK response.
	assert.Equal(t, StatusZeroResults, resp.Rows[1].Elements[0].Status)
}
