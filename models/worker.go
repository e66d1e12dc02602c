package models

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DBClient interface to avoid circular dependency
type DBClient interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

// WorkerConfig holds configuration for the background worker
type WorkerConfig struct {
	// Cron schedule of the stock sweep, seconds field first
	SweepSchedule string `json:"sweep_schedule"`

	// Retry settings for table bootstrap
	MaxRetries        int           `json:"max_retries"`
	RetryDelay        time.Duration `json:"retry_delay"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`

	RequiredTables []string `json:"required_tables"`
	SkipBootstrap  bool     `json:"skip_bootstrap"`
}

// WorkerStatus represents the current phase of the background worker
type WorkerStatus string

const (
	StatusIdle           WorkerStatus = "idle"
	StatusCreatingTables WorkerStatus = "creating_tables"
	StatusSweeping       WorkerStatus = "sweeping"
	StatusReady          WorkerStatus = "ready"
	StatusFailed         WorkerStatus = "failed"
	StatusStopped        WorkerStatus = "stopped"
)

// TableInfo describes a table the worker ensures exists
type TableInfo struct {
	Name      string    `json:"name"`
	BaseName  string    `json:"base_name"`
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
}

// WorkerState is a snapshot of the worker for the health endpoint
type WorkerState struct {
	Status        WorkerStatus      `json:"status"`
	Running       bool              `json:"running"`
	Tables        []TableInfo       `json:"tables"`
	LastError     string            `json:"last_error,omitempty"`
	LastSweep     *StockSweepReport `json:"last_sweep,omitempty"`
	SweepSchedule string            `json:"sweep_schedule"`
}
