package worker

import (
	"context"
	"fmt"
	"time"

	"firestation-backend/models"
)

const (
	bootstrapTimeout = 15 * time.Minute
	sweepTimeout     = 2 * time.Minute
)

// sweepJob is the cron entry. It finishes the table bootstrap first when that
// has not succeeded yet; overlapping runs are skipped.
func (w *Worker) sweepJob() {
	if !w.sweepMu.TryLock() {
		w.logger.Warn("Previous stock sweep still running, skipping")
		return
	}
	defer w.sweepMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("Stock sweep panicked: %v", r)
			w.setStatus(models.StatusFailed, fmt.Errorf("stock sweep panicked: %v", r))
		}
	}()

	ctx := w.jobContext()
	if ctx.Err() != nil {
		w.logger.Info("Worker is stopping, skipping execution")
		return
	}

	if err := w.RunBootstrap(ctx); err != nil {
		return
	}
	w.RunSweep(ctx)
}

// RunBootstrap creates missing tables once. Later calls return immediately
// after a success.
func (w *Worker) RunBootstrap(ctx context.Context) error {
	w.mu.RLock()
	done := w.bootstrapped
	w.mu.RUnlock()
	if done {
		return nil
	}

	w.setStatus(models.StatusCreatingTables, nil)
	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	tables, err := w.bootstrap.EnsureTables(ctx)

	w.mu.Lock()
	w.state.Tables = tables
	w.bootstrapped = err == nil
	w.mu.Unlock()

	if err != nil {
		w.logger.Errorf("Table bootstrap failed: %v", err)
		w.setStatus(models.StatusFailed, err)
		return err
	}
	w.logger.Infof("Table bootstrap completed: %d tables ready", len(tables))
	w.setStatus(models.StatusReady, nil)
	return nil
}

// RunSweep classifies the inventory and publishes the report
func (w *Worker) RunSweep(ctx context.Context) (*models.StockSweepReport, error) {
	w.setStatus(models.StatusSweeping, nil)
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	report, err := w.sweeper.SweepStock(ctx)
	if err != nil {
		w.logger.Errorf("Stock sweep failed: %v", err)
		// keep serving the previous report; only the bootstrap marks the worker failed
		w.setStatus(models.StatusReady, nil)
		w.mu.Lock()
		w.state.LastError = err.Error()
		w.mu.Unlock()
		return nil, err
	}

	w.mu.Lock()
	w.state.LastSweep = report
	w.mu.Unlock()
	w.setStatus(models.StatusReady, nil)

	if report.LowStockCount > 0 || report.ExpiredCount > 0 {
		w.logger.WithFields(map[string]interface{}{
			"low_stock": report.LowStockItems,
			"expired":   report.ExpiredItems,
		}).Warn("Inventory needs attention")
	}
	return report, nil
}
