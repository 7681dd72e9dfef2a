package fetch

import (
	"context"
	"time"

	"github.com/medicall/medicall-go/internal/logging"
	"github.com/medicall/medicall-go/internal/prometheus"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Poller runs a refresh job on a fixed interval, submitting each tick to a
// worker pool. Overlapping refreshes are deliberately not prevented: a slow
// request may still be in flight when the next tick fires, which is
// acceptable because the jobs are idempotent reads.
type Poller struct {
	Interval   time.Duration
	WorkerPool *ants.Pool
	Job        func(context.Context)
}

func NewPoller(interval time.Duration, workerPool *ants.Pool, job func(context.Context)) *Poller {
	return &Poller{
		Interval:   interval,
		WorkerPool: workerPool,
		Job:        job,
	}
}

func (poller *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(poller.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poller.submit(ctx)
		}
	}
}

func (poller *Poller) submit(ctx context.Context) {
	prometheus.RefreshTicks.Inc()

	err := poller.WorkerPool.Submit(func() {
		poller.Job(ctx)
	})
	if err != nil {
		logging.Logger.Error("failed to submit refresh job to worker pool",
			zap.String("error", err.Error()),
		)
	}
}
