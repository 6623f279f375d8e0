package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE_DRIVER", "MONGODB_URI", "MONGODB_DATABASE", "MONGODB_TRANSACTIONS",
		"DATABASE_URL", "IMPORT_KEY", "VERCEL_IMPORT_KEY", "APP_PORT", "APP_ENV",
		"LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "MAX_UPLOAD_SIZE_MB", "STORAGE_BASE_PATH",
		"EXPORT_YEAR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMongoDB, cfg.Store.Driver)
	assert.Equal(t, "xls-import-db", cfg.MongoDB.Database)
	assert.False(t, cfg.MongoDB.Transactions)
	assert.Equal(t, int64(10<<20), cfg.Import.MaxUploadSize)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 2026, cfg.App.ExportYear)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "./uploads", cfg.Storage.BasePath)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/xls")
	t.Setenv("VERCEL_IMPORT_KEY", "legacy")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "legacy", cfg.Import.Key)
	assert.Equal(t, int64(2<<20), cfg.Import.MaxUploadSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)

	t.Setenv("IMPORT_KEY", "current")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "current", cfg.Import.Key)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mongo without uri", map[string]string{"STORE_DRIVER": "mongodb"}},
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"bad port", map[string]string{"STORE_DRIVER": "memory", "APP_PORT": "eighty"}},
		{"bad transactions flag", map[string]string{"STORE_DRIVER": "memory", "MONGODB_TRANSACTIONS": "maybe"}},
		{"zero upload size", map[string]string{"STORE_DRIVER": "memory", "MAX_UPLOAD_SIZE_MB": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
