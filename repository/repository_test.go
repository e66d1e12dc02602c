package repository

import (
	"context"
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/mock"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func newMockLogger() *MockLogger {
	l := &MockLogger{}
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(method, mock.Anything).Return().Maybe()
	}
	for _, method := range []string{"Debugf", "Infof", "Warnf", "Errorf"} {
		l.On(method, mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	}
	return l
}

func (m *MockLogger) Debug(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Debugf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Info(args ...interface{})                  { m.Called(args) }
func (m *MockLogger) Infof(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Warn(args ...interface{})                  { m.Called(args) }
func (m *MockLogger) Warnf(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Error(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Errorf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Fatal(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Fatalf(format string, args ...interface{}) { m.Called(format, args) }

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return m
}

// MockDatabaseClient implements dal.DatabaseClientInterface for testing.
// Read results are injected with .Run callbacks on the out parameter.
type MockDatabaseClient struct {
	mock.Mock
}

var _ dal.DatabaseClientInterface = (*MockDatabaseClient)(nil)

func (m *MockDatabaseClient) GetItem(ctx context.Context, config models.QueryConfig, result interface{}) error {
	return m.Called(ctx, config, result).Error(0)
}

func (m *MockDatabaseClient) CreateItem(ctx context.Context, tableName string, item interface{}) error {
	return m.Called(ctx, tableName, item).Error(0)
}

func (m *MockDatabaseClient) UpdateItem(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}) error {
	return m.Called(ctx, tableName, key, keyValue, updates).Error(0)
}

func (m *MockDatabaseClient) UpdateItemIf(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}, cond models.Condition) error {
	return m.Called(ctx, tableName, key, keyValue, updates, cond).Error(0)
}

func (m *MockDatabaseClient) DeleteItem(ctx context.Context, tableName, key, value string) error {
	return m.Called(ctx, tableName, key, value).Error(0)
}

func (m *MockDatabaseClient) DeleteItemIf(ctx context.Context, tableName, key, value string, cond models.Condition) error {
	return m.Called(ctx, tableName, key, value, cond).Error(0)
}

func (m *MockDatabaseClient) TransactWrite(ctx context.Context, ops []models.WriteOp) error {
	return m.Called(ctx, ops).Error(0)
}

func (m *MockDatabaseClient) QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error {
	return m.Called(ctx, tableName, indexName, keyName, keyValue, results).Error(0)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	return m.Called(ctx, tableName, results).Error(0)
}

func (m *MockDatabaseClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockDatabaseClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

func testConfig() *models.Config {
	return &models.Config{DynamoDBTablePrefix: "test"}
}
