package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/medicall/medicall-go/internal/api"
	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/notify"
	"github.com/stretchr/testify/require"
)

type notesRecorder struct {
	mu     sync.Mutex
	bodies []string
}

func (recorder *notesRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		recorder.mu.Lock()
		recorder.bodies = append(recorder.bodies, string(body))
		recorder.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "status": "unread", "notes": "abc"}`))
	})
}

func (recorder *notesRecorder) recorded() []string {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	return append([]string(nil), recorder.bodies...)
}

func newNotesEditor(t *testing.T, handler http.Handler, delay time.Duration) (*NotesEditor, *recordingNotifier) {
	t.Helper()

	fastRetryConfig(t)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	notifier := newRecordingNotifier()
	service := call.NewService(api.NewClient(server.URL), call.NewStore(nil), false)
	editor := NewNotesEditor(service, notifier, 1, "initial", delay)

	t.Cleanup(editor.Close)

	return editor, notifier
}

func TestRapidEditsProduceOneSaveWithLatestText(t *testing.T) {
	recorder := &notesRecorder{}
	editor, _ := newNotesEditor(t, recorder.handler(), 50*time.Millisecond)

	ctx := context.Background()

	editor.SetText(ctx, "a")
	editor.SetText(ctx, "ab")
	editor.SetText(ctx, "abc")

	require.Eventually(t, func() bool {
		return len(recorder.recorded()) == 1
	}, time.Second, 5*time.Millisecond)

	require.JSONEq(t, `{"notes":"abc"}`, recorder.recorded()[0])
	require.Equal(t, "abc", editor.Text())
	require.Equal(t, SaveSaved, editor.SaveState())

	// No second save fires once typing has paused.
	time.Sleep(100 * time.Millisecond)
	require.Len(t, recorder.recorded(), 1)
}

func TestInitialValueNeverTriggersSave(t *testing.T) {
	recorder := &notesRecorder{}
	editor, _ := newNotesEditor(t, recorder.handler(), 20*time.Millisecond)

	time.Sleep(80 * time.Millisecond)

	require.Empty(t, recorder.recorded())
	require.Equal(t, "initial", editor.Text())
	require.Equal(t, SaveIdle, editor.SaveState())
}

func TestFailedSaveKeepsTextAndNotifies(t *testing.T) {
	editor, notifier := newNotesEditor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), 20*time.Millisecond)

	editor.SetText(context.Background(), "wichtiger Befund")

	require.Eventually(t, func() bool {
		return len(notifier.byKind(notify.KindError)) == 1
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, "wichtiger Befund", editor.Text())
	require.Equal(t, SaveIdle, editor.SaveState())
}
