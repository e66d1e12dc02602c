package dal

import (
	"context"
	"firestation-backend/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DatabaseClientInterface defines the contract for database operations
type DatabaseClientInterface interface {
	// Core CRUD operations
	GetItem(ctx context.Context, config models.QueryConfig, result interface{}) error
	CreateItem(ctx context.Context, tableName string, item interface{}) error
	UpdateItem(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}) error
	UpdateItemIf(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}, cond models.Condition) error
	DeleteItem(ctx context.Context, tableName, key, value string) error
	DeleteItemIf(ctx context.Context, tableName, key, value string, cond models.Condition) error

	// TransactWrite applies every op or none of them
	TransactWrite(ctx context.Context, ops []models.WriteOp) error

	// Query and Scan operations
	QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error
	Scan(ctx context.Context, tableName string, results interface{}) error

	// Table management operations
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}
