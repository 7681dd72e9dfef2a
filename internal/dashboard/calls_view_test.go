package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/medicall/medicall-go/internal/api"
	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/config"
	"github.com/medicall/medicall-go/internal/notify"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications per kind for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages map[notify.Kind][]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{messages: map[notify.Kind][]string{}}
}

func (notifier *recordingNotifier) Notify(kind notify.Kind, message string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	notifier.messages[kind] = append(notifier.messages[kind], message)
}

func (notifier *recordingNotifier) byKind(kind notify.Kind) []string {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	return append([]string(nil), notifier.messages[kind]...)
}

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

func sampleViewCalls() []call.Call {
	return []call.Call{
		{ID: 1, Name: "Maria Huber", Status: call.StatusUnread, Urgency: call.UrgencyHigh, CallbackRequested: true},
		{ID: 2, Name: "Thomas Gruber", Status: call.StatusRead, Urgency: call.UrgencyLow},
	}
}

func newSampleView(t *testing.T) (*CallsView, *recordingNotifier) {
	t.Helper()

	notifier := newRecordingNotifier()
	service := call.NewService(nil, call.NewStore(sampleViewCalls()), true)
	view := NewCallsView(service, notifier)

	t.Cleanup(view.Close)

	require.NoError(t, view.Refresh(context.Background()))

	return view, notifier
}

// newFailingMutationView serves one record from a fake remote store that
// rejects every mutation, backed by an empty local store so mutations fail
// on both sides.
func newFailingMutationView(t *testing.T) (*CallsView, *recordingNotifier) {
	t.Helper()

	fastRetryConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "boom", http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"calls": [{"id": 42, "name": "Remote Caller", "status": "unread", "urgency": "high"}],
			"total": 1,
			"skip": 0,
			"limit": 10
		}`))
	}))
	t.Cleanup(server.Close)

	notifier := newRecordingNotifier()
	service := call.NewService(api.NewClient(server.URL), call.NewStore(nil), false)
	view := NewCallsView(service, notifier)

	t.Cleanup(view.Close)

	require.NoError(t, view.Refresh(context.Background()))

	return view, notifier
}

func TestToggleStatusAppliesOptimistically(t *testing.T) {
	view, notifier := newSampleView(t)

	require.NoError(t, view.ToggleStatus(context.Background(), 1))

	require.Equal(t, call.StatusRead, view.Calls()[0].Status)
	require.Equal(t, []string{"Status aktualisiert"}, notifier.byKind(notify.KindSuccess))
	require.Empty(t, notifier.byKind(notify.KindError))
}

func TestToggleStatusRollsBackOnFailure(t *testing.T) {
	view, notifier := newFailingMutationView(t)

	require.Equal(t, call.StatusUnread, view.Calls()[0].Status)

	err := view.ToggleStatus(context.Background(), 42)
	require.Error(t, err)

	// The optimistic flip is rolled back and exactly one failure
	// notification is raised.
	require.Equal(t, call.StatusUnread, view.Calls()[0].Status)
	require.Len(t, notifier.byKind(notify.KindError), 1)
	require.Empty(t, notifier.byKind(notify.KindSuccess))
}

func TestRemoveCallDropsRecordAndDecrementsTotal(t *testing.T) {
	view, notifier := newSampleView(t)

	require.Equal(t, 2, view.Total())

	require.NoError(t, view.RemoveCall(context.Background(), 1))

	require.Equal(t, 1, view.Total())
	require.Len(t, view.Calls(), 1)
	require.Equal(t, 2, view.Calls()[0].ID)
	require.Equal(t, []string{"Anruf gelöscht"}, notifier.byKind(notify.KindSuccess))
}

func TestRemoveCallRollsBackOnFailure(t *testing.T) {
	view, notifier := newFailingMutationView(t)

	err := view.RemoveCall(context.Background(), 42)
	require.Error(t, err)

	require.Equal(t, 1, view.Total())
	require.Len(t, view.Calls(), 1)
	require.Len(t, notifier.byKind(notify.KindError), 1)
}

func TestCompleteCallbackReplacesRecordWithStoreResult(t *testing.T) {
	view, notifier := newSampleView(t)

	require.NoError(t, view.CompleteCallback(context.Background(), 1))

	record := view.Calls()[0]
	require.True(t, record.CallbackCompleted)
	require.NotNil(t, record.CallbackCompletedAt)
	require.Equal(t, []string{"Rückruf als erledigt markiert"}, notifier.byKind(notify.KindSuccess))
}

func TestCompleteCallbackFailureLeavesRecordUntouched(t *testing.T) {
	view, notifier := newFailingMutationView(t)

	err := view.CompleteCallback(context.Background(), 42)
	require.Error(t, err)

	require.False(t, view.Calls()[0].CallbackCompleted)
	require.Len(t, notifier.byKind(notify.KindError), 1)
}

func TestSetFiltersDrivesNextRefresh(t *testing.T) {
	view, _ := newSampleView(t)

	view.SetFilters(call.Filters{Urgency: call.UrgencyHigh})
	require.NoError(t, view.Refresh(context.Background()))

	require.Equal(t, 1, view.Total())
	require.Equal(t, 1, view.Calls()[0].ID)
}
