package dashboard

import (
	"context"

	"github.com/medicall/medicall-go/internal/fetch"
	"github.com/medicall/medicall-go/internal/stats"
	"golang.org/x/sync/errgroup"
)

// AnalyticsView holds the four analytics aggregates shown on the dashboard.
// A refresh fans the fetches out concurrently; each aggregate keeps its own
// loading/error state.
type AnalyticsView struct {
	service *stats.StatsService

	overall  *fetch.Async[stats.Stats]
	daily    *fetch.Async[[]stats.DailyStats]
	urgency  *fetch.Async[[]stats.UrgencyStats]
	symptoms *fetch.Async[[]stats.SymptomStat]
}

func NewAnalyticsView(service *stats.StatsService, days, symptomLimit int) *AnalyticsView {
	return &AnalyticsView{
		service: service,
		overall: fetch.NewAsync(func(ctx context.Context) (stats.Stats, error) {
			return service.GetStats(ctx, nil)
		}),
		daily: fetch.NewAsync(func(ctx context.Context) ([]stats.DailyStats, error) {
			return service.GetDailyStats(ctx, days)
		}),
		urgency: fetch.NewAsync(func(ctx context.Context) ([]stats.UrgencyStats, error) {
			return service.GetUrgencyStats(ctx)
		}),
		symptoms: fetch.NewAsync(func(ctx context.Context) ([]stats.SymptomStat, error) {
			return service.GetSymptomStats(ctx, symptomLimit)
		}),
	}
}

func (view *AnalyticsView) Refresh(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		_, err := view.overall.Execute(groupCtx)

		return err
	})

	group.Go(func() error {
		_, err := view.daily.Execute(groupCtx)

		return err
	})

	group.Go(func() error {
		_, err := view.urgency.Execute(groupCtx)

		return err
	})

	group.Go(func() error {
		_, err := view.symptoms.Execute(groupCtx)

		return err
	})

	return group.Wait()
}

func (view *AnalyticsView) Stats() stats.Stats {
	return view.overall.Snapshot().Data
}

func (view *AnalyticsView) DailyStats() []stats.DailyStats {
	return view.daily.Snapshot().Data
}

func (view *AnalyticsView) UrgencyStats() []stats.UrgencyStats {
	return view.urgency.Snapshot().Data
}

func (view *AnalyticsView) SymptomStats() []stats.SymptomStat {
	return view.symptoms.Snapshot().Data
}

func (view *AnalyticsView) Close() {
	view.overall.Close()
	view.daily.Close()
	view.urgency.Close()
	view.symptoms.Close()
}
