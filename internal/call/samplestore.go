package call

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

var ErrCallNotFound = errors.New("call not found")

// SampleStore is the in-memory record collection the services fall back to
// when the remote store is unreachable. It applies the same filter, sort and
// pagination semantics as the remote store.
type SampleStore struct {
	mu    sync.Mutex
	calls []Call
}

func NewStore(calls []Call) *SampleStore {
	owned := make([]Call, len(calls))
	copy(owned, calls)

	return &SampleStore{calls: owned}
}

// NewSampleStore returns a store seeded with the bundled sample dataset.
func NewSampleStore() *SampleStore {
	return NewStore(SampleCalls())
}

// List filters, sorts and paginates the record set. The returned total
// reflects the filters but not the pagination: it is computed after
// filtering and before slicing.
func (store *SampleStore) List(filters Filters) ([]Call, int) {
	store.mu.Lock()
	defer store.mu.Unlock()

	filtered := make([]Call, 0, len(store.calls))

	from, to, rangeSet := dateBounds(filters.DateFrom, filters.DateTo)
	search := strings.ToLower(filters.Search)

	for _, record := range store.calls {
		if search != "" &&
			!strings.Contains(strings.ToLower(record.Name), search) &&
			!strings.Contains(record.Phone, filters.Search) {
			continue
		}

		if filters.Status != "" && record.Status != filters.Status {
			continue
		}

		if filters.Urgency != "" && record.Urgency != filters.Urgency {
			continue
		}

		if rangeSet && !inBounds(record.Time, from, to) {
			continue
		}

		filtered = append(filtered, record)
	}

	sortCalls(filtered, filters.Sort, filters.Order)

	total := len(filtered)

	skip := filters.Skip
	if skip < 0 {
		skip = 0
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	if skip >= total {
		return []Call{}, total
	}

	end := skip + limit
	if end > total {
		end = total
	}

	page := make([]Call, end-skip)
	copy(page, filtered[skip:end])

	return page, total
}

// sortCalls orders records by a three-way lexicographic comparison of the
// sort field. The default column is time and the default direction is
// descending.
func sortCalls(calls []Call, field, order string) {
	desc := order != OrderAsc

	sort.SliceStable(calls, func(i, j int) bool {
		cmp := strings.Compare(sortValue(calls[i], field), sortValue(calls[j], field))
		if desc {
			return cmp > 0
		}

		return cmp < 0
	})
}

func sortValue(record Call, field string) string {
	switch field {
	case "name":
		return strings.ToLower(record.Name)
	case "phone":
		return record.Phone
	case "urgency":
		return record.Urgency
	case "status":
		return record.Status
	case "duration":
		return record.Duration
	case "summary":
		return strings.ToLower(record.Summary)
	default:
		return record.Time.UTC().Format(time.RFC3339)
	}
}

func (store *SampleStore) Get(id int) (Call, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	idx := store.indexOf(id)
	if idx < 0 {
		return Call{}, ErrCallNotFound
	}

	return store.calls[idx], nil
}

// ToggleStatus flips a record between unread and read.
func (store *SampleStore) ToggleStatus(id int) (Call, error) {
	return store.update(id, func(record *Call) {
		if record.Status == StatusUnread {
			record.Status = StatusRead
		} else {
			record.Status = StatusUnread
		}
	})
}

func (store *SampleStore) UpdateNotes(id int, notes string) (Call, error) {
	return store.update(id, func(record *Call) {
		record.Notes = &notes
	})
}

// CompleteCallback marks the callback handled. CallbackCompletedAt is set
// together with the flag so the pairing invariant holds.
func (store *SampleStore) CompleteCallback(id int) (Call, error) {
	return store.update(id, func(record *Call) {
		now := time.Now().UTC()
		record.CallbackCompleted = true
		record.CallbackCompletedAt = &now
	})
}

func (store *SampleStore) Delete(id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	idx := store.indexOf(id)
	if idx < 0 {
		return ErrCallNotFound
	}

	store.calls = append(store.calls[:idx], store.calls[idx+1:]...)

	return nil
}

// All returns a copy of the full record set in insertion order.
func (store *SampleStore) All() []Call {
	store.mu.Lock()
	defer store.mu.Unlock()

	calls := make([]Call, len(store.calls))
	copy(calls, store.calls)

	return calls
}

// InRange returns the records whose time falls inside the inclusive
// [dateFrom, dateTo] range, using the same bounds logic as the list filter.
func (store *SampleStore) InRange(dateFrom, dateTo string) []Call {
	store.mu.Lock()
	defer store.mu.Unlock()

	from, to, rangeSet := dateBounds(dateFrom, dateTo)

	calls := make([]Call, 0, len(store.calls))

	for _, record := range store.calls {
		if rangeSet && !inBounds(record.Time, from, to) {
			continue
		}

		calls = append(calls, record)
	}

	return calls
}

func (store *SampleStore) update(id int, mutate func(*Call)) (Call, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	idx := store.indexOf(id)
	if idx < 0 {
		return Call{}, ErrCallNotFound
	}

	mutate(&store.calls[idx])
	store.calls[idx].UpdatedAt = time.Now().UTC()

	return store.calls[idx], nil
}

func (store *SampleStore) indexOf(id int) int {
	for idx := range store.calls {
		if store.calls[idx].ID == id {
			return idx
		}
	}

	return -1
}
