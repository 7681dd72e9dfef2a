package call

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medicall/medicall-go/internal/api"
	"github.com/medicall/medicall-go/internal/config"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler) *CallService {
	t.Helper()

	previous := config.Conf

	config.Conf.APIRetryMaxAttempts = 1
	config.Conf.APIRetryMinBackoff = 0
	config.Conf.APIRetryMaxBackoff = 0
	config.Conf.APITimeout = 2

	t.Cleanup(func() {
		config.Conf = previous
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewService(api.NewClient(server.URL), NewStore(testCalls()), false)
}

func TestGetCallsPrefersRemoteStore(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calls", r.URL.Path)
		require.Equal(t, "high", r.URL.Query().Get("urgency"))
		require.False(t, r.URL.Query().Has("search"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"calls": [{
				"id": 42,
				"name": "Remote Caller",
				"phone": "+43 664 0000000",
				"urgency": "high",
				"time": "2024-01-05T09:00:00Z",
				"duration": "00:02:10",
				"summary": "Starke Kopfschmerzen",
				"status": "unread",
				"symptoms": ["Kopfschmerzen"],
				"callback_requested": false,
				"callback_completed": false,
				"callback_completed_at": null,
				"notes": null,
				"created_at": "2024-01-05T09:05:00Z",
				"updated_at": "2024-01-05T09:05:00Z"
			}],
			"total": 27,
			"skip": 0,
			"limit": 10
		}`))
	}))

	result, err := service.GetCalls(context.Background(), Filters{Urgency: UrgencyHigh})
	require.NoError(t, err)
	require.Equal(t, 27, result.Total)
	require.Len(t, result.Calls, 1)
	require.Equal(t, 42, result.Calls[0].ID)
	require.Equal(t, "Remote Caller", result.Calls[0].Name)
	require.False(t, result.Calls[0].CallbackCompleted)
}

func TestGetCallsFallsBackOnServerError(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	result, err := service.GetCalls(context.Background(), Filters{Urgency: UrgencyHigh})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)

	for _, record := range result.Calls {
		require.Equal(t, UrgencyHigh, record.Urgency)
	}
}

func TestGetCallsFallsBackOnMalformedBody(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))

	result, err := service.GetCalls(context.Background(), Filters{})
	require.NoError(t, err)
	require.Equal(t, 5, result.Total)
}

func TestToggleStatusFallsBackToStore(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	record, err := service.ToggleStatus(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, StatusRead, record.Status)
}

func TestMutationSurfacesNotFoundWhenBothSidesFail(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := service.ToggleStatus(context.Background(), 999)
	require.ErrorIs(t, err, ErrCallNotFound)
}

func TestSampleOnlyNeverCallsRemote(t *testing.T) {
	remoteCalled := false

	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteCalled = true
	}))
	service.SampleOnly = true

	result, err := service.GetCalls(context.Background(), Filters{})
	require.NoError(t, err)
	require.Equal(t, 5, result.Total)

	_, err = service.GetCall(context.Background(), 1)
	require.NoError(t, err)

	require.False(t, remoteCalled)
}

func TestDeleteRemovesFromFallbackStore(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	require.NoError(t, service.Delete(context.Background(), 2))

	_, err := service.Store.Get(2)
	require.ErrorIs(t, err, ErrCallNotFound)
}
