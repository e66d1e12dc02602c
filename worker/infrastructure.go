package worker

import (
	"context"
	"fmt"
	"time"

	"firestation-backend/dal"
	"firestation-backend/infrastructure"
	"firestation-backend/models"
	"firestation-backend/utils/logger"
)

const (
	tableStatusExisting = "EXISTING"
	tableStatusCreated  = "CREATED"
	tableStatusFailed   = "FAILED"
)

// TableBootstrapper makes sure every configured table exists before the API serves traffic
type TableBootstrapper struct {
	config       *models.Config
	workerConfig *models.WorkerConfig
	db           models.DBClient
	logger       logger.Logger
	sleep        func(ctx context.Context, d time.Duration) error
	now          func() time.Time
}

// NewTableBootstrapper creates a bootstrapper for the tables named in workerConfig
func NewTableBootstrapper(cfg *models.Config, workerConfig *models.WorkerConfig, db models.DBClient, log logger.Logger) *TableBootstrapper {
	return &TableBootstrapper{
		config:       cfg,
		workerConfig: workerConfig,
		db:           db,
		logger:       log,
		sleep:        sleepContext,
		now:          time.Now,
	}
}

// EnsureTables creates each missing table from the embedded schema. Tables are
// processed sequentially to stay under the control-plane rate limit.
func (b *TableBootstrapper) EnsureTables(ctx context.Context) ([]models.TableInfo, error) {
	b.logger.Infof("Ensuring %d tables exist", len(b.workerConfig.RequiredTables))

	tables := make([]models.TableInfo, 0, len(b.workerConfig.RequiredTables))
	for _, base := range b.workerConfig.RequiredTables {
		info := models.TableInfo{
			Name:     b.config.TableName(base),
			BaseName: base,
		}

		status, err := b.createTableWithRetry(ctx, base, info.Name)
		info.Status = status
		info.CheckedAt = b.now().UTC()
		tables = append(tables, info)
		if err != nil {
			b.logger.Errorf("Failed to create table %s: %v", info.Name, err)
			return tables, err
		}
	}
	return tables, nil
}

// createTableWithRetry creates a table with exponential backoff between attempts
func (b *TableBootstrapper) createTableWithRetry(ctx context.Context, base, tableName string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= b.workerConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := retryDelay(b.workerConfig, attempt-1)
			b.logger.Infof("Retrying table creation for %s in %v (attempt %d/%d)", tableName, delay, attempt+1, b.workerConfig.MaxRetries+1)
			if err := b.sleep(ctx, delay); err != nil {
				return tableStatusFailed, err
			}
		}

		exists, err := b.tableExists(ctx, tableName)
		if err != nil {
			b.logger.Warnf("Failed to check if table %s exists: %v", tableName, err)
			lastErr = err
			continue
		}
		if exists {
			b.logger.Debugf("Table %s already exists", tableName)
			return tableStatusExisting, nil
		}

		input, err := infrastructure.GetTables(base, tableName, b.billingMode())
		if err != nil {
			// a missing schema entry will not fix itself
			return tableStatusFailed, err
		}
		if err := b.db.CreateTable(ctx, input); err != nil {
			b.logger.Warnf("Attempt %d failed to create table %s: %v", attempt+1, tableName, err)
			lastErr = err
			continue
		}

		b.logger.Infof("Created table %s", tableName)
		return tableStatusCreated, nil
	}

	return tableStatusFailed, fmt.Errorf("failed to create table %s after %d attempts: %w", tableName, b.workerConfig.MaxRetries+1, lastErr)
}

func (b *TableBootstrapper) tableExists(ctx context.Context, tableName string) (bool, error) {
	if _, err := b.db.DescribeTable(ctx, tableName); err != nil {
		if dal.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (b *TableBootstrapper) billingMode() string {
	if b.config.AppEnv == "production" {
		return infrastructure.BillingProvisioned
	}
	return infrastructure.BillingPayPerRequest
}

// retryDelay returns RetryDelay * BackoffMultiplier^retry, capped at one hour
func retryDelay(cfg *models.WorkerConfig, retry int) time.Duration {
	delay := float64(cfg.RetryDelay)
	for i := 0; i < retry; i++ {
		delay *= cfg.BackoffMultiplier
	}

	maxDelay := float64(time.Hour)
	if delay > maxDelay {
		delay = maxDelay
	}
	return time.Duration(int64(delay))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
