package gomaps

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1:validateAddress", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Goog-Api-Key"))

		var req AddressValidationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"1600 Amphitheatre Pkwy"}, req.Address.AddressLines)

		w.Write([]byte(`{
			"result": {
				"verdict": {"validationGranularity": "PREMISE", "addressComplete": true},
				"address": {"formattedAddress": "1600 Amphitheatre Parkway, Mountain View, CA 94043-1351, USA"},
				"geocode": {"location": {"latitude": 37.4224764, "longitude": -122.0842499}}
			},
			"responseId": "resp-123"
		}`))
	}))

	resp, err := c.ValidateAddress(context.Background(), &AddressValidationRequest{
		Address: PostalAddress{
			RegionCode:   "US",
			AddressLines: []string{"1600 Amphitheatre Pkwy"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Verdict.AddressComplete)
	assert.Equal(t, "PREMISE", resp.Result.Verdict.ValidationGranularity)
	assert.InDelta(t, 37.4224764, resp.Result.Geocode.Location.Latitude, 1e-9)
	assert.Equal(t, "resp-123", resp.ResponseID)
}

func TestValidateAddress_RequiresAddressLines(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	}))

	_, err := c.ValidateAddress(context.Background(), &AddressValidationRequest{})
	assert.Error(t, err)
}

func TestValidateAddress_HTTPErrorCarriesBody(t *testing.T) {
	// The newer APIs report failures as non-2xx with a JSON error body;
	// a 400 is permanent and must not be retried.
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"status":"INVALID_ARGUMENT","message":"Address is missing"}}`))
	}))

	_, err := c.ValidateAddress(context.Background(), &AddressValidationRequest{
		Address: PostalAddress{AddressLines: []string{""}},
	})

	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusBadRequest, herr.StatusCode)
	assert.Contains(t, herr.Body, "INVALID_ARGUMENT")
	assert.Equal(t, int32(1), calls.Load())
}
