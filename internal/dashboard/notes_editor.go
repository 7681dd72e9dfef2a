package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/fetch"
	"github.com/medicall/medicall-go/internal/notify"
)

type SaveState string

const (
	SaveIdle   SaveState = "idle"
	SaveSaving SaveState = "saving"
	SaveSaved  SaveState = "saved"
)

const savedIndicatorDuration = 2 * time.Second

// NotesEditor keeps the notes text of one call. Every edit updates the
// local text immediately; a debounce timer collapses rapid edits into a
// single remote write carrying the latest text. The initial value never
// triggers a save, and a failed save keeps the user's edits intact.
type NotesEditor struct {
	mu        sync.Mutex
	service   *call.CallService
	notifier  notify.Notifier
	debouncer *fetch.Debouncer
	callID    int
	text      string
	saveState SaveState
}

func NewNotesEditor(
	service *call.CallService,
	notifier notify.Notifier,
	callID int,
	initial string,
	delay time.Duration,
) *NotesEditor {
	return &NotesEditor{
		service:   service,
		notifier:  notifier,
		debouncer: fetch.NewDebouncer(delay),
		callID:    callID,
		text:      initial,
		saveState: SaveIdle,
	}
}

// SetText records a keystroke and schedules the debounced save. Each call
// resets the pending timer, so only the text present when typing pauses is
// sent.
func (editor *NotesEditor) SetText(ctx context.Context, text string) {
	editor.mu.Lock()
	editor.text = text
	editor.mu.Unlock()

	editor.debouncer.Trigger(func() {
		editor.save(ctx)
	})
}

func (editor *NotesEditor) Text() string {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.text
}

func (editor *NotesEditor) SaveState() SaveState {
	editor.mu.Lock()
	defer editor.mu.Unlock()

	return editor.saveState
}

// Close cancels any pending save.
func (editor *NotesEditor) Close() {
	editor.debouncer.Stop()
}

func (editor *NotesEditor) save(ctx context.Context) {
	editor.mu.Lock()
	editor.saveState = SaveSaving
	text := editor.text
	editor.mu.Unlock()

	_, err := editor.service.UpdateNotes(ctx, editor.callID, text)

	editor.mu.Lock()
	defer editor.mu.Unlock()

	if err != nil {
		// The local text stays as typed; only the save failed.
		editor.saveState = SaveIdle
		editor.notifier.Notify(notify.KindError, "Notizen konnten nicht gespeichert werden")

		return
	}

	editor.saveState = SaveSaved

	time.AfterFunc(savedIndicatorDuration, func() {
		editor.mu.Lock()
		defer editor.mu.Unlock()

		if editor.saveState == SaveSaved {
			editor.saveState = SaveIdle
		}
	})
}
