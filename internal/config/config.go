package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMongoDB  = "mongodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Store    StoreConfig
	MongoDB  MongoDBConfig
	Database DatabaseConfig
	Import   ImportConfig
	App      AppConfig
	CORS     CORSConfig
	Storage  StorageConfig
}

type StoreConfig struct {
	Driver string
}

type MongoDBConfig struct {
	URI          string
	Database     string
	Transactions bool
}

type DatabaseConfig struct {
	URL string
}

// ImportConfig holds the upload endpoint settings
type ImportConfig struct {
	Key           string
	MaxUploadSize int64
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	ExportYear int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StorageConfig struct {
	BasePath string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	config.Store = StoreConfig{
		Driver: strings.ToLower(getEnv("STORE_DRIVER", StoreMongoDB)),
	}

	transactions, err := strconv.ParseBool(getEnv("MONGODB_TRANSACTIONS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGODB_TRANSACTIONS: %w", err)
	}

	config.MongoDB = MongoDBConfig{
		URI:          getEnv("MONGODB_URI", ""),
		Database:     getEnv("MONGODB_DATABASE", "xls-import-db"),
		Transactions: transactions,
	}

	config.Database = DatabaseConfig{
		URL: getEnv("DATABASE_URL", ""),
	}

	maxUploadMB, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE_MB", "10"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	config.Import = ImportConfig{
		Key:           getEnv("IMPORT_KEY", getEnv("VERCEL_IMPORT_KEY", "")),
		MaxUploadSize: maxUploadMB << 20,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	exportYear, err := strconv.Atoi(getEnv("EXPORT_YEAR", "2026"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_YEAR: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ExportYear: exportYear,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMongoDB:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=%s", StoreMongoDB)
		}
	case StorePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Import.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	if c.Import.Key == "" {
		slog.Warn("IMPORT_KEY is not set, every import request will be rejected")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}

	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
