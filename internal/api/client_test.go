package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomaps/client-go/internal/ratelimit"
)

// classicEnvelope mimics a classic Maps API response body with an embedded
// status field.
type classicEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Result       string `json:"result,omitempty"`
}

func (e *classicEnvelope) StatusError() error {
	if e.Status == "OK" {
		return nil
	}
	return &StatusError{Code: e.Status, Message: e.ErrorMessage}
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithRetryConfig(&RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     20 * time.Millisecond,
	})}, opts...)
	c, err := New("test-api-key", opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)

	signer, err := NewSigner("gme-acme", "dGVzdC1zaWduaW5nLWtleQ==")
	require.NoError(t, err)
	_, err = New("", WithSigner(signer))
	assert.NoError(t, err, "signer substitutes for the API key")
}

func TestGetJSON_Success(t *testing.T) {
	var gotKey atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.URL.Query().Get("key"))
		w.Write([]byte(`{"status":"OK","result":"here"}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{"address": {"paris"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "here", out.Result)
	assert.Equal(t, "test-api-key", gotKey.Load(), "API key appended to query")
}

func TestGetJSON_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{}, &out)

	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusBadRequest, herr.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "permanent errors are not retried")
}

func TestGetJSON_ServerErrorExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{}, &out)

	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusServiceUnavailable, herr.StatusCode, "last error returned as-is")
	assert.Equal(t, int32(3), calls.Load(), "exactly MaxAttempts attempts")
}

func TestGetJSON_TransportErrorRetriedThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			// Drop the connection mid-exchange to provoke a
			// transport-level error on the client side.
			if conn, _, err := w.(http.Hijacker).Hijack(); err == nil {
				conn.Close()
			}
			return
		}
		w.Write([]byte(`{"status":"OK","result":"recovered"}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{}, &out)

	require.NoError(t, err)
	assert.Equal(t, "recovered", out.Result)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetJSON_MalformedBodyNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"status": truncated`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{}, &out)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, int32(1), calls.Load(), "malformed bodies are permanent")
}

func TestGetJSON_UnknownErrorStatusRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"status":"UNKNOWN_ERROR","error_message":"backend error"}`))
			return
		}
		w.Write([]byte(`{"status":"OK","result":"second time lucky"}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{}, &out)

	require.NoError(t, err)
	assert.Equal(t, "second time lucky", out.Result)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetJSON_SemanticStatusNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"key expired"}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.GetJSON(context.Background(), nil, srv.URL, url.Values{}, &out)

	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "REQUEST_DENIED", serr.Code)
	assert.Equal(t, "key expired", serr.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPostJSON_SendsBodyAndHeader(t *testing.T) {
	type req struct {
		Address string `json:"address"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "result", r.Header.Get("X-Goog-FieldMask"))
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	var out classicEnvelope
	err := c.PostJSON(context.Background(), nil, srv.URL, map[string]string{"X-Goog-FieldMask": "result"}, req{Address: "1600 Amphitheatre"}, &out)
	require.NoError(t, err)
}

func TestGetJSON_ConsultsRateLimiter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	reg := ratelimit.NewRegistry()
	reg.Set(ratelimit.Geocoding, 1000, time.Second)
	c := newTestClient(t, WithRateLimits(reg))

	var out classicEnvelope
	for i := 0; i < 3; i++ {
		require.NoError(t, c.GetJSON(context.Background(), []ratelimit.API{ratelimit.All, ratelimit.Geocoding}, srv.URL, url.Values{}, &out))
	}
	// Three calls through the Geocoding category were observed.
	// (All has no configured budget, so it stays a no-op.)
}

func TestRedactURL(t *testing.T) {
	got := redactURL("https://maps.googleapis.com/maps/api/geocode/json?address=paris&key=secret&signature=sig")
	assert.NotContains(t, got, "secret")
	assert.NotContains(t, got, "sig")
	assert.Contains(t, got, "address=paris")
}
