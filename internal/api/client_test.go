package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medicall/medicall-go/internal/config"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(t *testing.T) {
	t.Helper()

	previous := config.Conf

	config.Conf.APIRetryMaxAttempts = 1
	config.Conf.APIRetryMinBackoff = 0
	config.Conf.APIRetryMaxBackoff = 0
	config.Conf.APITimeout = 2

	t.Cleanup(func() {
		config.Conf = previous
	})
}

func TestBuildQueryOmitsEmptyValues(t *testing.T) {
	query := buildQuery(Params{
		"search": "",
		"status": "read",
	})

	require.Equal(t, "?status=read", query)
}

func TestBuildQueryEmptyParams(t *testing.T) {
	require.Equal(t, "", buildQuery(nil))
	require.Equal(t, "", buildQuery(Params{"search": ""}))
}

func TestBuildQuerySortedAndEscaped(t *testing.T) {
	query := buildQuery(Params{
		"search": "maria huber",
		"order":  "desc",
	})

	require.Equal(t, "?order=desc&search=maria+huber", query)
}

func TestGetDecodesBody(t *testing.T) {
	fastRetryConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calls", r.URL.Path)
		require.Equal(t, "read", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"calls":[],"total":0,"skip":0,"limit":10}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	body, err := client.Get(context.Background(), "/calls", Params{"status": "read", "search": ""})
	require.NoError(t, err)
	require.JSONEq(t, `{"calls":[],"total":0,"skip":0,"limit":10}`, string(body))
}

func TestNonSuccessStatusReturnsAPIError(t *testing.T) {
	fastRetryConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Get(context.Background(), "/calls/999", nil)
	require.Error(t, err)

	var apiErr *APIError

	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestServerErrorReturnsAPIErrorWithStatus(t *testing.T) {
	fastRetryConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Get(context.Background(), "/stats", nil)
	require.Error(t, err)

	var apiErr *APIError

	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestUnreachableHostFails(t *testing.T) {
	fastRetryConfig(t)

	// Reserved TEST-NET address, nothing listens there.
	client := NewClient("http://192.0.2.1:1")
	client.HTTPClient.Timeout = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/calls", nil)
	require.Error(t, err)
}

func TestPatchSendsJSONBody(t *testing.T) {
	fastRetryConfig(t)

	var received string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)

		body, _ := io.ReadAll(r.Body)
		received = string(body)

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Patch(context.Background(), "/calls/1/notes", map[string]string{"notes": "abc"})
	require.NoError(t, err)
	require.JSONEq(t, `{"notes":"abc"}`, received)
}
