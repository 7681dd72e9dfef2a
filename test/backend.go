package test

import (
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/stats"
)

// fakeBackend is an in-process stand-in for the remote store, backed by a
// SampleStore so it shares the query semantics of the fallback path. It
// speaks the snake_case wire format the real backend uses.
type fakeBackend struct {
	store  *call.SampleStore
	server *httptest.Server
}

func newFakeBackend(store *call.SampleStore) *fakeBackend {
	backend := &fakeBackend{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /calls", backend.listCalls)
	mux.HandleFunc("GET /calls/{id}", backend.getCall)
	mux.HandleFunc("PATCH /calls/{id}/status", backend.toggleStatus)
	mux.HandleFunc("PATCH /calls/{id}/notes", backend.updateNotes)
	mux.HandleFunc("PATCH /calls/{id}/callback", backend.completeCallback)
	mux.HandleFunc("DELETE /calls/{id}", backend.deleteCall)
	mux.HandleFunc("GET /stats", backend.overallStats)
	mux.HandleFunc("GET /stats/daily", backend.dailyStats)
	mux.HandleFunc("GET /stats/urgency", backend.urgencyStats)
	mux.HandleFunc("GET /stats/symptoms", backend.symptomStats)

	backend.server = httptest.NewServer(mux)

	return backend
}

func (backend *fakeBackend) URL() string {
	return backend.server.URL
}

func (backend *fakeBackend) Close() {
	backend.server.Close()
}

func (backend *fakeBackend) listCalls(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	skip, _ := strconv.Atoi(query.Get("skip"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	filters := call.Filters{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Urgency:  query.Get("urgency"),
		DateFrom: query.Get("date_from"),
		DateTo:   query.Get("date_to"),
		Skip:     skip,
		Limit:    limit,
		Sort:     query.Get("sort"),
		Order:    query.Get("order"),
	}

	calls, total := backend.store.List(filters)

	raws := make([]call.CallRaw, 0, len(calls))
	for _, record := range calls {
		raws = append(raws, call.ToRaw(record))
	}

	writeJSON(w, call.CallsResponseRaw{
		Calls: raws,
		Total: total,
		Skip:  filters.Skip,
		Limit: filters.Limit,
	})
}

func (backend *fakeBackend) getCall(w http.ResponseWriter, r *http.Request) {
	record, err := backend.store.Get(pathID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)

		return
	}

	writeJSON(w, call.ToRaw(record))
}

func (backend *fakeBackend) toggleStatus(w http.ResponseWriter, r *http.Request) {
	record, err := backend.store.ToggleStatus(pathID(r))
	backend.writeMutation(w, record, err)
}

func (backend *fakeBackend) updateNotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}

	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	record, err := backend.store.UpdateNotes(pathID(r), body.Notes)
	backend.writeMutation(w, record, err)
}

func (backend *fakeBackend) completeCallback(w http.ResponseWriter, r *http.Request) {
	record, err := backend.store.CompleteCallback(pathID(r))
	backend.writeMutation(w, record, err)
}

func (backend *fakeBackend) deleteCall(w http.ResponseWriter, r *http.Request) {
	err := backend.store.Delete(pathID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (backend *fakeBackend) writeMutation(w http.ResponseWriter, record call.Call, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)

		return
	}

	writeJSON(w, call.ToRaw(record))
}

func (backend *fakeBackend) overallStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, stats.ToRaw(stats.Stats{
		TodayCalls:           3,
		UrgentCalls:          1,
		AvgDuration:          "00:03:10",
		MonthCalls:           9,
		YesterdayCalls:       2,
		UnhandledUrgent:      1,
		AvgDurationYesterday: "00:02:40",
		UrgentPercentage:     33.3,
	}))
}

func (backend *fakeBackend) dailyStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []stats.DailyStats{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-02", Count: 0},
		{Date: "2024-01-03", Count: 1},
	})
}

func (backend *fakeBackend) urgencyStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []stats.UrgencyStats{
		{Urgency: call.UrgencyHigh, Count: 1, Percentage: 33.3},
		{Urgency: call.UrgencyMedium, Count: 0, Percentage: 0},
		{Urgency: call.UrgencyLow, Count: 2, Percentage: 66.7},
	})
}

func (backend *fakeBackend) symptomStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []stats.SymptomStat{
		{Symptom: "Fieber", Count: 3},
		{Symptom: "Husten", Count: 2},
	})
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(r.PathValue("id"))

	return id
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
