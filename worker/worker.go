package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"firestation-backend/models"
	"firestation-backend/utils/logger"

	"github.com/robfig/cron"
)

// DefaultSweepSchedule runs the stock sweep every 15 minutes
const DefaultSweepSchedule = "0 */15 * * * *"

// StockSweeper classifies the whole inventory
type StockSweeper interface {
	SweepStock(ctx context.Context) (*models.StockSweepReport, error)
}

// Worker bootstraps the tables once and then sweeps stock on a cron schedule
type Worker struct {
	config       *models.Config
	workerConfig *models.WorkerConfig
	logger       logger.Logger
	bootstrap    *TableBootstrapper
	sweeper      StockSweeper
	cron         *cron.Cron

	mu           sync.RWMutex
	state        models.WorkerState
	bootstrapped bool
	sweepMu      sync.Mutex

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewWorker validates the worker configuration derived from cfg
func NewWorker(cfg *models.Config, log logger.Logger, db models.DBClient, sweeper StockSweeper) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if sweeper == nil {
		return nil, fmt.Errorf("stock sweeper cannot be nil")
	}

	workerConfig := &models.WorkerConfig{
		SweepSchedule:     cfg.StockSweepSchedule,
		MaxRetries:        5,
		RetryDelay:        2 * time.Second,
		BackoffMultiplier: 2.0,
		RequiredTables:    cfg.Tables,
		SkipBootstrap:     db == nil,
	}
	if workerConfig.SweepSchedule == "" {
		workerConfig.SweepSchedule = DefaultSweepSchedule
	}
	if err := validateWorkerConfig(workerConfig); err != nil {
		return nil, fmt.Errorf("invalid worker configuration: %w", err)
	}

	w := &Worker{
		config:       cfg,
		workerConfig: workerConfig,
		logger:       log,
		sweeper:      sweeper,
		cron:         cron.New(),
		state: models.WorkerState{
			Status:        models.StatusIdle,
			SweepSchedule: workerConfig.SweepSchedule,
		},
	}
	if db != nil {
		w.bootstrap = NewTableBootstrapper(cfg, workerConfig, db, log)
	} else {
		w.bootstrapped = true
	}
	return w, nil
}

// Start schedules the sweep and runs the bootstrap and a first sweep in the
// background. Stop cancels both.
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.state.Running {
		w.mu.Unlock()
		return fmt.Errorf("worker is already running")
	}
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.state.Running = true
	w.mu.Unlock()

	if err := w.cron.AddFunc(w.workerConfig.SweepSchedule, w.sweepJob); err != nil {
		w.cancel()
		w.setRunning(false)
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	w.cron.Start()
	w.logger.Infof("Worker started with sweep schedule: %s", w.workerConfig.SweepSchedule)

	go w.sweepJob()
	return nil
}

// Stop halts the cron scheduler and cancels in-flight jobs
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		if w.cancel != nil {
			w.cancel()
		}
		w.cron.Stop()

		w.mu.Lock()
		w.state.Running = false
		w.state.Status = models.StatusStopped
		w.mu.Unlock()
		w.logger.Info("Worker stopped")
	})
}

// State returns a snapshot for the health endpoint
func (w *Worker) State() models.WorkerState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state := w.state
	state.Tables = append([]models.TableInfo(nil), w.state.Tables...)
	return state
}

// LatestReport returns the most recent completed sweep, or nil before the first one
func (w *Worker) LatestReport() *models.StockSweepReport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.LastSweep
}

func (w *Worker) setStatus(status models.WorkerStatus, lastErr error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Status == models.StatusStopped {
		return
	}
	w.state.Status = status
	if lastErr != nil {
		w.state.LastError = lastErr.Error()
	} else if status == models.StatusReady {
		w.state.LastError = ""
	}
}

func (w *Worker) setRunning(running bool) {
	w.mu.Lock()
	w.state.Running = running
	w.mu.Unlock()
}

func (w *Worker) jobContext() context.Context {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.ctx == nil {
		return context.Background()
	}
	return w.ctx
}

// validateWorkerConfig validates the worker configuration
func validateWorkerConfig(config *models.WorkerConfig) error {
	if config.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	if config.RetryDelay <= 0 {
		return fmt.Errorf("retry delay must be positive")
	}
	if config.BackoffMultiplier < 1.0 {
		return fmt.Errorf("backoff multiplier must be at least 1.0")
	}
	if !config.SkipBootstrap && len(config.RequiredTables) == 0 {
		return fmt.Errorf("at least one required table must be specified")
	}

	// seconds field first, as cron.New expects
	if _, err := cron.Parse(config.SweepSchedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", config.SweepSchedule, err)
	}
	return nil
}
