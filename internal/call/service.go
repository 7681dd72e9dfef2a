package call

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/medicall/medicall-go/internal/api"
	"github.com/medicall/medicall-go/internal/logging"
	"github.com/medicall/medicall-go/internal/prometheus"
	"go.uber.org/zap"
)

// CallService resolves call queries and mutations against the remote store,
// substituting the sample store whenever the remote side fails. Query
// operations never surface transport errors to callers.
type CallService struct {
	Client     *api.Client
	Store      *SampleStore
	SampleOnly bool
}

func NewService(client *api.Client, store *SampleStore, sampleOnly bool) *CallService {
	return &CallService{
		Client:     client,
		Store:      store,
		SampleOnly: sampleOnly,
	}
}

// GetCalls returns one page of calls plus the total count of records
// matching the filters.
func (callService *CallService) GetCalls(ctx context.Context, filters Filters) (CallsResult, error) {
	if !callService.SampleOnly {
		result, err := callService.fetchRemoteCalls(ctx, filters)
		if err == nil {
			return result, nil
		}

		callService.fallback("calls", err)
	}

	calls, total := callService.Store.List(filters)

	return CallsResult{Calls: calls, Total: total}, nil
}

func (callService *CallService) fetchRemoteCalls(ctx context.Context, filters Filters) (CallsResult, error) {
	body, err := callService.Client.Get(ctx, "/calls", filters.QueryParams())
	if err != nil {
		return CallsResult{}, err
	}

	var raw CallsResponseRaw

	err = json.Unmarshal(body, &raw)
	if err != nil {
		return CallsResult{}, fmt.Errorf("failed to decode calls response: %w", err)
	}

	calls := make([]Call, 0, len(raw.Calls))
	for _, record := range raw.Calls {
		calls = append(calls, FromRaw(record))
	}

	return CallsResult{Calls: calls, Total: raw.Total}, nil
}

// GetCall fetches a single record. ErrCallNotFound propagates when the
// record is absent from the fallback store.
func (callService *CallService) GetCall(ctx context.Context, id int) (Call, error) {
	if !callService.SampleOnly {
		record, err := callService.fetchRemoteCall(ctx, id)
		if err == nil {
			return record, nil
		}

		callService.fallback("calls", err)
	}

	return callService.Store.Get(id)
}

func (callService *CallService) fetchRemoteCall(ctx context.Context, id int) (Call, error) {
	body, err := callService.Client.Get(ctx, fmt.Sprintf("/calls/%d", id), nil)
	if err != nil {
		return Call{}, err
	}

	return decodeCall(body)
}

// ToggleStatus flips a record between unread and read.
func (callService *CallService) ToggleStatus(ctx context.Context, id int) (Call, error) {
	if !callService.SampleOnly {
		record, err := callService.patchCall(ctx, fmt.Sprintf("/calls/%d/status", id), nil)
		if err == nil {
			return record, nil
		}

		callService.fallback("calls", err)
	}

	return callService.Store.ToggleStatus(id)
}

// UpdateNotes persists the notes text for a record.
func (callService *CallService) UpdateNotes(ctx context.Context, id int, notes string) (Call, error) {
	if !callService.SampleOnly {
		record, err := callService.patchCall(
			ctx,
			fmt.Sprintf("/calls/%d/notes", id),
			map[string]string{"notes": notes},
		)
		if err == nil {
			return record, nil
		}

		callService.fallback("calls", err)
	}

	return callService.Store.UpdateNotes(id, notes)
}

// CompleteCallback marks the requested callback as handled.
func (callService *CallService) CompleteCallback(ctx context.Context, id int) (Call, error) {
	if !callService.SampleOnly {
		record, err := callService.patchCall(ctx, fmt.Sprintf("/calls/%d/callback", id), nil)
		if err == nil {
			return record, nil
		}

		callService.fallback("calls", err)
	}

	return callService.Store.CompleteCallback(id)
}

// Delete removes a record permanently.
func (callService *CallService) Delete(ctx context.Context, id int) error {
	if !callService.SampleOnly {
		err := callService.Client.Delete(ctx, fmt.Sprintf("/calls/%d", id))
		if err == nil {
			return nil
		}

		callService.fallback("calls", err)
	}

	return callService.Store.Delete(id)
}

func (callService *CallService) patchCall(ctx context.Context, path string, body any) (Call, error) {
	respBody, err := callService.Client.Patch(ctx, path, body)
	if err != nil {
		return Call{}, err
	}

	return decodeCall(respBody)
}

func (callService *CallService) fallback(service string, err error) {
	logging.Logger.Warn("remote store unavailable, serving from sample store",
		zap.String("service", service),
		zap.String("error", err.Error()),
	)

	prometheus.FallbackActivations.WithLabelValues(service).Inc()
}

func decodeCall(body []byte) (Call, error) {
	var raw CallRaw

	err := json.Unmarshal(body, &raw)
	if err != nil {
		return Call{}, fmt.Errorf("failed to decode call record: %w", err)
	}

	return FromRaw(raw), nil
}
