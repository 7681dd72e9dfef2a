package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/medicall/medicall-go/internal/api"
	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/config"
	"github.com/medicall/medicall-go/internal/logging"
	"github.com/medicall/medicall-go/internal/prometheus"
	"go.uber.org/zap"
)

// ReportFileName is the file the PDF export is saved under.
const ReportFileName = "medicall-report.pdf"

// ErrExportUnavailable is returned when the PDF export is requested while
// operating on sample data only. The report is rendered server side.
var ErrExportUnavailable = errors.New("pdf export requires the remote store")

const dateLayout = "2006-01-02"

// sampleSnapshot is the fixed default served in fallback mode when no date
// range is given. Its numbers match the bundled sample dataset.
var sampleSnapshot = Stats{
	TodayCalls:           4,
	UrgentCalls:          2,
	AvgDuration:          "00:03:55",
	MonthCalls:           12,
	YesterdayCalls:       4,
	UnhandledUrgent:      2,
	AvgDurationYesterday: "00:03:01",
	UrgentPercentage:     25.0,
}

// StatsService resolves aggregate statistics from the remote store, falling
// back to on-the-fly aggregation over the sample store. Like CallService,
// it never surfaces transport errors.
type StatsService struct {
	Client     *api.Client
	Store      *call.SampleStore
	SampleOnly bool
}

func NewService(client *api.Client, store *call.SampleStore, sampleOnly bool) *StatsService {
	return &StatsService{
		Client:     client,
		Store:      store,
		SampleOnly: sampleOnly,
	}
}

// GetStats returns the overall snapshot. The range only matters in fallback
// mode: with a range the snapshot is recomputed over the in-range sample
// records, without one the fixed sample snapshot is served.
func (statsService *StatsService) GetStats(ctx context.Context, dateRange *DateRange) (Stats, error) {
	if !statsService.SampleOnly {
		body, err := statsService.Client.Get(ctx, "/stats", nil)
		if err == nil {
			var raw StatsRaw

			err = json.Unmarshal(body, &raw)
			if err == nil {
				return FromRaw(raw), nil
			}
		}

		statsService.fallback(err)
	}

	if dateRange == nil {
		return sampleSnapshot, nil
	}

	return statsService.aggregateRange(*dateRange), nil
}

// aggregateRange recomputes the snapshot from the in-range sample records.
// Yesterday figures are not derivable from a single range and stay at their
// neutral values.
func (statsService *StatsService) aggregateRange(dateRange DateRange) Stats {
	records := statsService.Store.InRange(dateRange.From, dateRange.To)

	urgent := 0
	unhandledUrgent := 0
	durations := make([]string, 0, len(records))

	for _, record := range records {
		if record.Urgency == call.UrgencyHigh {
			urgent++

			if record.Status == call.StatusUnread {
				unhandledUrgent++
			}
		}

		durations = append(durations, record.Duration)
	}

	total := len(records)
	if total == 0 {
		total = 1
	}

	return Stats{
		TodayCalls:           len(records),
		UrgentCalls:          urgent,
		AvgDuration:          averageDuration(durations),
		MonthCalls:           len(records),
		YesterdayCalls:       0,
		UnhandledUrgent:      unhandledUrgent,
		AvgDurationYesterday: zeroDuration,
		UrgentPercentage:     roundPercentage(urgent, total),
	}
}

// GetDailyStats returns per-day call counts for the last N days, ascending
// by date, missing days zero-filled.
func (statsService *StatsService) GetDailyStats(ctx context.Context, days int) ([]DailyStats, error) {
	if !statsService.SampleOnly {
		body, err := statsService.Client.Get(ctx, "/stats/daily", api.Params{"days": strconv.Itoa(days)})
		if err == nil {
			var daily []DailyStats

			err = json.Unmarshal(body, &daily)
			if err == nil {
				return daily, nil
			}
		}

		statsService.fallback(err)
	}

	return statsService.aggregateDaily(days), nil
}

func (statsService *StatsService) aggregateDaily(days int) []DailyStats {
	today := time.Now().UTC()
	start := today.AddDate(0, 0, -(days - 1))

	counts := make(map[string]int)

	for _, record := range statsService.Store.All() {
		counts[record.Time.UTC().Format(dateLayout)]++
	}

	daily := make([]DailyStats, 0, days)

	for offset := range days {
		day := start.AddDate(0, 0, offset).Format(dateLayout)
		daily = append(daily, DailyStats{Date: day, Count: counts[day]})
	}

	return daily
}

// GetUrgencyStats returns the per-level breakdown. All three levels are
// always present, ordered high, medium, low.
func (statsService *StatsService) GetUrgencyStats(ctx context.Context) ([]UrgencyStats, error) {
	if !statsService.SampleOnly {
		body, err := statsService.Client.Get(ctx, "/stats/urgency", nil)
		if err == nil {
			var breakdown []UrgencyStats

			err = json.Unmarshal(body, &breakdown)
			if err == nil {
				return breakdown, nil
			}
		}

		statsService.fallback(err)
	}

	return statsService.aggregateUrgency(), nil
}

func (statsService *StatsService) aggregateUrgency() []UrgencyStats {
	records := statsService.Store.All()

	counts := make(map[string]int)
	for _, record := range records {
		counts[record.Urgency]++
	}

	total := len(records)
	if total == 0 {
		total = 1
	}

	levels := []string{call.UrgencyHigh, call.UrgencyMedium, call.UrgencyLow}
	breakdown := make([]UrgencyStats, 0, len(levels))

	for _, level := range levels {
		breakdown = append(breakdown, UrgencyStats{
			Urgency:    level,
			Count:      counts[level],
			Percentage: roundPercentage(counts[level], total),
		})
	}

	return breakdown
}

// GetSymptomStats returns the most frequent symptoms, count descending,
// ties kept in first-encountered order.
func (statsService *StatsService) GetSymptomStats(ctx context.Context, limit int) ([]SymptomStat, error) {
	if !statsService.SampleOnly {
		body, err := statsService.Client.Get(ctx, "/stats/symptoms", api.Params{"limit": strconv.Itoa(limit)})
		if err == nil {
			var symptoms []SymptomStat

			err = json.Unmarshal(body, &symptoms)
			if err == nil {
				return symptoms, nil
			}
		}

		statsService.fallback(err)
	}

	return statsService.aggregateSymptoms(limit), nil
}

func (statsService *StatsService) aggregateSymptoms(limit int) []SymptomStat {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, record := range statsService.Store.All() {
		for _, symptom := range record.Symptoms {
			if counts[symptom] == 0 {
				order = append(order, symptom)
			}

			counts[symptom]++
		}
	}

	symptoms := make([]SymptomStat, 0, len(order))
	for _, symptom := range order {
		symptoms = append(symptoms, SymptomStat{Symptom: symptom, Count: counts[symptom]})
	}

	sort.SliceStable(symptoms, func(i, j int) bool {
		return symptoms[i].Count > symptoms[j].Count
	})

	if limit > 0 && len(symptoms) > limit {
		symptoms = symptoms[:limit]
	}

	return symptoms
}

// ExportPDF downloads the server-rendered report and saves it next to the
// configured export directory, returning the written path.
func (statsService *StatsService) ExportPDF(ctx context.Context) (string, error) {
	if statsService.SampleOnly {
		return "", ErrExportUnavailable
	}

	content, err := statsService.Client.GetBinary(ctx, "/stats/export/pdf")
	if err != nil {
		return "", fmt.Errorf("pdf export failed: %w", err)
	}

	path := filepath.Join(config.Conf.ExportDir, ReportFileName)

	err = os.WriteFile(path, content, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to write pdf report: %w", err)
	}

	logging.Logger.Info("pdf report written", zap.String("path", path))

	return path, nil
}

func (statsService *StatsService) fallback(err error) {
	if err != nil {
		logging.Logger.Warn("remote stats unavailable, aggregating locally",
			zap.String("error", err.Error()),
		)
	}

	prometheus.FallbackActivations.WithLabelValues("stats").Inc()
}

func roundPercentage(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*100*10) / 10
}
