package stats

// Stats is a snapshot aggregate in its domain shape. Always recomputed
// wholesale, never mutated field by field.
type Stats struct {
	TodayCalls           int     `json:"todayCalls"`
	UrgentCalls          int     `json:"urgentCalls"`
	AvgDuration          string  `json:"avgDuration"`
	MonthCalls           int     `json:"monthCalls"`
	YesterdayCalls       int     `json:"yesterdayCalls"`
	UnhandledUrgent      int     `json:"unhandledUrgent"`
	AvgDurationYesterday string  `json:"avgDurationYesterday"`
	UrgentPercentage     float64 `json:"urgentPercentage"`
}

// StatsRaw is the wire shape of the overall stats endpoint.
type StatsRaw struct {
	TodayCalls           int     `json:"today_calls"`
	UrgentCalls          int     `json:"urgent_calls"`
	AvgDuration          string  `json:"avg_duration"`
	MonthCalls           int     `json:"month_calls"`
	YesterdayCalls       int     `json:"yesterday_calls"`
	UnhandledUrgent      int     `json:"unhandled_urgent"`
	AvgDurationYesterday string  `json:"avg_duration_yesterday"`
	UrgentPercentage     float64 `json:"urgent_percentage"`
}

// FromRaw maps the wire stats record to its domain shape. Pure renaming.
func FromRaw(raw StatsRaw) Stats {
	return Stats{
		TodayCalls:           raw.TodayCalls,
		UrgentCalls:          raw.UrgentCalls,
		AvgDuration:          raw.AvgDuration,
		MonthCalls:           raw.MonthCalls,
		YesterdayCalls:       raw.YesterdayCalls,
		UnhandledUrgent:      raw.UnhandledUrgent,
		AvgDurationYesterday: raw.AvgDurationYesterday,
		UrgentPercentage:     raw.UrgentPercentage,
	}
}

// ToRaw is the inverse mapping.
func ToRaw(record Stats) StatsRaw {
	return StatsRaw{
		TodayCalls:           record.TodayCalls,
		UrgentCalls:          record.UrgentCalls,
		AvgDuration:          record.AvgDuration,
		MonthCalls:           record.MonthCalls,
		YesterdayCalls:       record.YesterdayCalls,
		UnhandledUrgent:      record.UnhandledUrgent,
		AvgDurationYesterday: record.AvgDurationYesterday,
		UrgentPercentage:     record.UrgentPercentage,
	}
}

type DailyStats struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type UrgencyStats struct {
	Urgency    string  `json:"urgency"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SymptomStat struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

// DateRange bounds an aggregation, both dates inclusive, YYYY-MM-DD.
type DateRange struct {
	From string
	To   string
}
