package dashboard

import (
	"context"
	"sync"

	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/fetch"
	"github.com/medicall/medicall-go/internal/notify"
	"github.com/medicall/medicall-go/internal/prometheus"
)

// CallsView owns one page of the call list and applies mutations to it
// optimistically: snapshot, apply locally, attempt the remote write, roll
// the snapshot back on failure.
type CallsView struct {
	mu       sync.Mutex
	service  *call.CallService
	notifier notify.Notifier
	filters  call.Filters
	async    *fetch.Async[call.CallsResult]
}

func NewCallsView(service *call.CallService, notifier notify.Notifier) *CallsView {
	view := &CallsView{
		service:  service,
		notifier: notifier,
	}

	view.async = fetch.NewAsync(func(ctx context.Context) (call.CallsResult, error) {
		return service.GetCalls(ctx, view.Filters())
	})

	return view
}

func (view *CallsView) SetFilters(filters call.Filters) {
	view.mu.Lock()
	defer view.mu.Unlock()

	view.filters = filters
}

func (view *CallsView) Filters() call.Filters {
	view.mu.Lock()
	defer view.mu.Unlock()

	return view.filters
}

func (view *CallsView) Refresh(ctx context.Context) error {
	_, err := view.async.Execute(ctx)

	return err
}

func (view *CallsView) Calls() []call.Call {
	return view.async.Snapshot().Data.Calls
}

func (view *CallsView) Total() int {
	return view.async.Snapshot().Data.Total
}

func (view *CallsView) Loading() bool {
	return view.async.Snapshot().Loading
}

func (view *CallsView) Err() error {
	return view.async.Snapshot().Err
}

// Close suppresses any state update from operations still in flight.
func (view *CallsView) Close() {
	view.async.Close()
}

// ToggleStatus flips a record between unread and read, applying the change
// locally before the remote write confirms it.
func (view *CallsView) ToggleStatus(ctx context.Context, id int) error {
	snapshot := view.async.Snapshot().Data

	view.async.SetData(func(result call.CallsResult) call.CallsResult {
		calls := make([]call.Call, len(result.Calls))
		copy(calls, result.Calls)

		for idx := range calls {
			if calls[idx].ID != id {
				continue
			}

			if calls[idx].Status == call.StatusUnread {
				calls[idx].Status = call.StatusRead
			} else {
				calls[idx].Status = call.StatusUnread
			}
		}

		result.Calls = calls

		return result
	})

	_, err := view.service.ToggleStatus(ctx, id)
	if err != nil {
		view.rollback(snapshot, "status")
		view.notifier.Notify(notify.KindError, "Status konnte nicht aktualisiert werden")

		return err
	}

	view.notifier.Notify(notify.KindSuccess, "Status aktualisiert")

	return nil
}

// RemoveCall deletes a record, dropping it from the page and decrementing
// the total before the remote write confirms it.
func (view *CallsView) RemoveCall(ctx context.Context, id int) error {
	snapshot := view.async.Snapshot().Data

	view.async.SetData(func(result call.CallsResult) call.CallsResult {
		calls := make([]call.Call, 0, len(result.Calls))

		for _, record := range result.Calls {
			if record.ID == id {
				continue
			}

			calls = append(calls, record)
		}

		result.Calls = calls
		result.Total--

		return result
	})

	err := view.service.Delete(ctx, id)
	if err != nil {
		view.rollback(snapshot, "delete")
		view.notifier.Notify(notify.KindError, "Anruf konnte nicht gelöscht werden")

		return err
	}

	view.notifier.Notify(notify.KindSuccess, "Anruf gelöscht")

	return nil
}

// CompleteCallback marks a requested callback as handled. No optimistic
// change here: the local record is only replaced with the one the remote
// store returns.
func (view *CallsView) CompleteCallback(ctx context.Context, id int) error {
	updated, err := view.service.CompleteCallback(ctx, id)
	if err != nil {
		view.notifier.Notify(notify.KindError, "Rückruf konnte nicht aktualisiert werden")

		return err
	}

	view.async.SetData(func(result call.CallsResult) call.CallsResult {
		calls := make([]call.Call, len(result.Calls))
		copy(calls, result.Calls)

		for idx := range calls {
			if calls[idx].ID == id {
				calls[idx] = updated
			}
		}

		result.Calls = calls

		return result
	})

	view.notifier.Notify(notify.KindSuccess, "Rückruf als erledigt markiert")

	return nil
}

func (view *CallsView) rollback(snapshot call.CallsResult, operation string) {
	view.async.SetData(func(call.CallsResult) call.CallsResult {
		return snapshot
	})

	prometheus.OptimisticRollbacks.WithLabelValues(operation).Inc()
}
