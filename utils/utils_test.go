package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// UtilsTestSuite defines a test suite for utils functions
type UtilsTestSuite struct {
	suite.Suite
	dir string
}

var configEnvVars = []string{
	"APP_NAME", "APP_VERSION", "APP_ENV", "APP_HOST", "APP_PORT",
	"JWT_SECRET", "JWT_EXPIRES_IN",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	"DYNAMODB_ENDPOINT", "DYNAMODB_TABLE_PREFIX",
	"LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS",
	"STOCK_SWEEP_SCHEDULE", "METRICS_ENABLED", "BASEPATH", "TABLES",
}

// SetupTest isolates each test from the caller's environment
func (suite *UtilsTestSuite) SetupTest() {
	for _, envVar := range configEnvVars {
		if value, ok := os.LookupEnv(envVar); ok {
			suite.T().Setenv(envVar, value)
			os.Unsetenv(envVar)
		}
	}
	suite.dir = suite.T().TempDir()
}

func (suite *UtilsTestSuite) writeConfig(body string) {
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.dir, "config.json"), []byte(body), 0o600))
}

func (suite *UtilsTestSuite) TestLoadDefaults() {
	config, err := LoadFrom(suite.dir)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Fire Station Backend", config.AppName)
	assert.Equal(suite.T(), "development", config.AppEnv)
	assert.Equal(suite.T(), "8081", config.AppPort)
	assert.Equal(suite.T(), DefaultJWTSecret, config.JWTSecret)
	assert.Equal(suite.T(), 12*time.Hour, config.JWTExpiresIn)
	assert.Equal(suite.T(), "dev", config.DynamoDBTablePrefix)
	assert.Equal(suite.T(), "0 */15 * * * *", config.StockSweepSchedule)
	assert.True(suite.T(), config.MetricsEnabled)
	assert.Equal(suite.T(), "/api/v1", config.BasePath)
	assert.Equal(suite.T(), DefaultTables, config.Tables)
	assert.Equal(suite.T(), []string{"*"}, config.CORSOrigins)
}

func (suite *UtilsTestSuite) TestLoadNestedConfigFile() {
	suite.writeConfig(`{
		"app": {"name": "Station 12", "env": "staging", "port": "9090"},
		"jwt": {"secret": "file-secret", "expires_in": "24h"},
		"aws": {"region": "eu-west-1", "dynamodb_table_prefix": "stn12"},
		"logging": {"level": "debug", "format": "text"},
		"worker": {"stock_sweep_schedule": "0 0 * * * *"},
		"metrics": {"enabled": false},
		"cors": {"origins": ["http://localhost:3000"]},
		"basePath": "/api/v2",
		"tables": ["users", "inventory_items"]
	}`)

	config, err := LoadFrom(suite.dir)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Station 12", config.AppName)
	assert.Equal(suite.T(), "staging", config.AppEnv)
	assert.Equal(suite.T(), "9090", config.AppPort)
	assert.Equal(suite.T(), "file-secret", config.JWTSecret)
	assert.Equal(suite.T(), 24*time.Hour, config.JWTExpiresIn)
	assert.Equal(suite.T(), "eu-west-1", config.AWSRegion)
	assert.Equal(suite.T(), "stn12", config.DynamoDBTablePrefix)
	assert.Equal(suite.T(), "debug", config.LogLevel)
	assert.Equal(suite.T(), "text", config.LogFormat)
	assert.Equal(suite.T(), "0 0 * * * *", config.StockSweepSchedule)
	assert.False(suite.T(), config.MetricsEnabled)
	assert.Equal(suite.T(), []string{"http://localhost:3000"}, config.CORSOrigins)
	assert.Equal(suite.T(), "/api/v2", config.BasePath)
	assert.Equal(suite.T(), []string{"users", "inventory_items"}, config.Tables)
}

func (suite *UtilsTestSuite) TestEnvironmentOverridesFile() {
	suite.writeConfig(`{"app": {"name": "From File"}, "logging": {"level": "debug"}}`)
	suite.T().Setenv("APP_NAME", "From Env")
	suite.T().Setenv("DYNAMODB_TABLE_PREFIX", "test")

	config, err := LoadFrom(suite.dir)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "From Env", config.AppName)
	assert.Equal(suite.T(), "debug", config.LogLevel)
	assert.Equal(suite.T(), "test", config.DynamoDBTablePrefix)
}

func (suite *UtilsTestSuite) TestJWTExpiration() {
	suite.T().Setenv("JWT_EXPIRES_IN", "8h")
	config, err := LoadFrom(suite.dir)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 8*time.Hour, config.JWTExpiresIn)
}

func (suite *UtilsTestSuite) TestInvalidJWTExpiration() {
	suite.T().Setenv("JWT_EXPIRES_IN", "invalid-duration")
	config, err := LoadFrom(suite.dir)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}

func (suite *UtilsTestSuite) TestProductionRequiresSecret() {
	suite.T().Setenv("APP_ENV", "production")

	config, err := LoadFrom(suite.dir)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "JWT_SECRET must be set in production environment")

	suite.T().Setenv("JWT_SECRET", "production-secret-key")
	config, err = LoadFrom(suite.dir)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "production-secret-key", config.JWTSecret)
}

func (suite *UtilsTestSuite) TestMalformedConfigFile() {
	suite.writeConfig(`{"app": `)
	_, err := LoadFrom(suite.dir)
	assert.Error(suite.T(), err)
}

func (suite *UtilsTestSuite) TestPrintPrettyJSON() {
	out := PrintPrettyJSON(map[string]int{"low_stock": 2})
	assert.Equal(suite.T(), "{\n    \"low_stock\": 2\n}", out)
	assert.Equal(suite.T(), "", PrintPrettyJSON(make(chan int)))
}

func (suite *UtilsTestSuite) TestGenerateUUID() {
	a := GenerateUUID()
	b := GenerateUUID()
	_, err := uuid.Parse(a)
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), a, b)
}

func (suite *UtilsTestSuite) TestHashAndCheckPassword() {
	hash, err := HashPassword("securePassword123")
	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "securePassword123", hash)
	assert.True(suite.T(), CheckPassword(hash, "securePassword123"))
	assert.False(suite.T(), CheckPassword(hash, "wrong"))
	assert.False(suite.T(), CheckPassword("not-a-hash", "securePassword123"))
}

func TestUtilsTestSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}
