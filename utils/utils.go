package utils

import (
	"encoding/json"
	"errors"
	"firestation-backend/models"
	"os"

	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is refused in production
const DefaultJWTSecret = "change-this-station-jwt-secret-in-production"

// DefaultTables are the tables the worker ensures exist
var DefaultTables = []string{
	"users", "inventory_items", "inventory_reorders", "shift_schedules",
	"vehicles", "supply_requests", "bids", "budgets", "expenses",
}

var defaultConfigPaths = []string{".", "./configs", "../", "../../"}

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	// .env is optional; real environment variables still win
	_ = godotenv.Load()

	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	return LoadFrom(defaultConfigPaths...)
}

// LoadFrom reads config.json from the first of paths that contains one, then
// applies environment overrides
func LoadFrom(paths ...string) (*models.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Handle nested JSON structure from config.json
	flattenNestedConfig(v)

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if expiresStr := v.GetString("jwt.expires_in"); expiresStr != "" {
		expires, err := time.ParseDuration(expiresStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT expires_in format: %w", err)
		}
		config.JWTExpiresIn = expires
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "Fire Station Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8081")

	// JWT defaults
	v.SetDefault("jwt_secret", DefaultJWTSecret)
	v.SetDefault("jwt_expires_in", 12*time.Hour) // one shift

	// AWS defaults
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "dev")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Worker defaults
	v.SetDefault("stock_sweep_schedule", "0 */15 * * * *")
	v.SetDefault("metrics_enabled", true)

	// Base Path default
	v.SetDefault("basePath", "/api/v1")

	v.SetDefault("tables", DefaultTables)
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.AppEnv == "production" && (c.JWTSecret == DefaultJWTSecret || c.JWTSecret == "") {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}
	if c.JWTExpiresIn <= 0 {
		return fmt.Errorf("jwt_expires_in must be positive")
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("basePath must start with '/': %q", c.BasePath)
	}
	return nil
}

// flattenNestedConfig maps the sectioned config.json layout onto flat keys
func flattenNestedConfig(v *viper.Viper) {
	nested := map[string]string{
		"app.name":                    "app_name",
		"app.version":                 "app_version",
		"app.env":                     "app_env",
		"app.host":                    "app_host",
		"app.port":                    "app_port",
		"jwt.secret":                  "jwt_secret",
		"aws.region":                  "aws_region",
		"aws.access_key_id":           "aws_access_key_id",
		"aws.secret_access_key":       "aws_secret_access_key",
		"aws.dynamodb_endpoint":       "dynamodb_endpoint",
		"aws.dynamodb_table_prefix":   "dynamodb_table_prefix",
		"logging.level":               "log_level",
		"logging.format":              "log_format",
		"worker.stock_sweep_schedule": "stock_sweep_schedule",
		"metrics.enabled":             "metrics_enabled",
	}
	for from, to := range nested {
		if v.IsSet(from) && !envSet(to) {
			v.Set(to, v.Get(from))
		}
	}

	if v.IsSet("cors.origins") && !envSet("cors_origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}
}

// envSet reports whether key is overridden by an environment variable
func envSet(key string) bool {
	_, ok := os.LookupEnv(strings.ToUpper(key))
	return ok
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return ""
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// HashPassword hashes a plain text password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a hashed password with a plain text password.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
