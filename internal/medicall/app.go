package medicall

import (
	"context"
	"time"

	"github.com/medicall/medicall-go/internal/api"
	"github.com/medicall/medicall-go/internal/call"
	"github.com/medicall/medicall-go/internal/config"
	"github.com/medicall/medicall-go/internal/dashboard"
	"github.com/medicall/medicall-go/internal/logging"
	"github.com/medicall/medicall-go/internal/notify"
	"github.com/medicall/medicall-go/internal/stats"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// App wires the dashboard core together: remote client, sample store,
// services, views and the auto-refresh poller.
type App struct {
	Client        *api.Client
	Store         *call.SampleStore
	CallService   *call.CallService
	StatsService  *stats.StatsService
	Notifier      notify.Notifier
	CallsView     *dashboard.CallsView
	AnalyticsView *dashboard.AnalyticsView
	Refresher     *dashboard.Refresher
	WorkerPool    *ants.Pool
}

func NewApp() (*App, error) {
	logging.Logger.Info("[NewApp] Initializing MediCall dashboard core...",
		zap.String("api_base_url", config.Conf.APIBaseUrl),
		zap.Bool("use_sample_data", config.Conf.UseSampleData),
	)

	client := api.NewClient(config.Conf.APIBaseUrl)
	store := call.NewSampleStore()

	callService := call.NewService(client, store, config.Conf.UseSampleData)
	statsService := stats.NewService(client, store, config.Conf.UseSampleData)

	notifier := notify.LogNotifier{}

	callsView := dashboard.NewCallsView(callService, notifier)
	callsView.SetFilters(call.Filters{Limit: config.Conf.PageSize})

	analyticsView := dashboard.NewAnalyticsView(
		statsService,
		config.Conf.DailyStatsDays,
		config.Conf.SymptomStatsLimit,
	)

	workerPool, err := ants.NewPool(config.Conf.PoolSize, ants.WithPreAlloc(true))
	if err != nil {
		logging.Logger.Error("[NewApp] Failed to create worker pool", zap.Error(err))
		return nil, err
	}

	refresher := dashboard.NewRefresher(
		callsView,
		analyticsView,
		time.Duration(config.Conf.RefreshIntervalSec)*time.Second,
		workerPool,
	)

	logging.Logger.Info("[NewApp] MediCall dashboard core initialized")

	return &App{
		Client:        client,
		Store:         store,
		CallService:   callService,
		StatsService:  statsService,
		Notifier:      notifier,
		CallsView:     callsView,
		AnalyticsView: analyticsView,
		Refresher:     refresher,
		WorkerPool:    workerPool,
	}, nil
}

// Run performs the initial refresh, starts the auto-refresh poller and
// blocks until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	logging.Logger.Info("[Run] Starting dashboard refresh loop...")

	err := app.CallsView.Refresh(ctx)
	if err != nil {
		logging.Logger.Warn("[Run] Initial call list refresh failed", zap.String("error", err.Error()))
	}

	err = app.AnalyticsView.Refresh(ctx)
	if err != nil {
		logging.Logger.Warn("[Run] Initial analytics refresh failed", zap.String("error", err.Error()))
	}

	go app.Refresher.Run(ctx)

	<-ctx.Done()

	app.shutdown()

	return nil
}

func (app *App) shutdown() {
	app.CallsView.Close()
	app.AnalyticsView.Close()

	logging.Logger.Info("[Run] Releasing worker pool...",
		zap.Int("running_workers", app.WorkerPool.Running()),
		zap.Int("free_workers", app.WorkerPool.Free()),
	)
	app.WorkerPool.Release()

	logging.Logger.Info("[Run] ===== App shutdown complete =====")
}
