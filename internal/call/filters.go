package call

import (
	"strconv"
	"time"

	"github.com/medicall/medicall-go/internal/api"
)

const (
	DefaultLimit = 10
	OrderAsc     = "asc"
	OrderDesc    = "desc"
)

const dateLayout = "2006-01-02"

// Filters holds transient query parameters for the call list. Reconstructed
// per query, never persisted.
type Filters struct {
	Search   string
	Status   string
	Urgency  string
	DateFrom string
	DateTo   string
	Skip     int
	Limit    int
	Sort     string
	Order    string
}

// QueryParams builds the remote query map. Empty string values are dropped
// by the client; skip and limit are only sent when meaningful so the remote
// defaults stay in charge otherwise.
func (filters Filters) QueryParams() api.Params {
	params := api.Params{
		"search":    filters.Search,
		"status":    filters.Status,
		"urgency":   filters.Urgency,
		"date_from": filters.DateFrom,
		"date_to":   filters.DateTo,
		"sort":      filters.Sort,
		"order":     filters.Order,
	}

	if filters.Skip > 0 {
		params["skip"] = strconv.Itoa(filters.Skip)
	}

	if filters.Limit > 0 {
		params["limit"] = strconv.Itoa(filters.Limit)
	}

	return params
}

// dateBounds resolves the inclusive [from, to] range of the date filter.
// dateTo is inclusive through the end of that day. Malformed or absent
// bounds are left open.
func dateBounds(dateFrom, dateTo string) (from, to time.Time, ok bool) {
	if dateFrom != "" {
		parsed, err := time.Parse(dateLayout, dateFrom)
		if err == nil {
			from = parsed
			ok = true
		}
	}

	if dateTo != "" {
		parsed, err := time.Parse(dateLayout, dateTo)
		if err == nil {
			to = endOfDay(parsed)
			ok = true
		}
	}

	return from, to, ok
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), day.Location())
}

func inBounds(t time.Time, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}

	if !to.IsZero() && t.After(to) {
		return false
	}

	return true
}
