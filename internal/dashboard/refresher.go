package dashboard

import (
	"context"
	"time"

	"github.com/medicall/medicall-go/internal/fetch"
	"github.com/medicall/medicall-go/internal/logging"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Refresher keeps the dashboard current: a fixed-interval poller that
// refreshes the call list and the analytics aggregates on every tick.
type Refresher struct {
	Poller *fetch.Poller
}

func NewRefresher(
	callsView *CallsView,
	analyticsView *AnalyticsView,
	interval time.Duration,
	workerPool *ants.Pool,
) *Refresher {
	job := func(ctx context.Context) {
		err := callsView.Refresh(ctx)
		if err != nil {
			logging.Logger.Warn("call list refresh failed", zap.String("error", err.Error()))
		}

		err = analyticsView.Refresh(ctx)
		if err != nil {
			logging.Logger.Warn("analytics refresh failed", zap.String("error", err.Error()))
		}
	}

	return &Refresher{
		Poller: fetch.NewPoller(interval, workerPool, job),
	}
}

func (refresher *Refresher) Run(ctx context.Context) {
	refresher.Poller.Run(ctx)
}
