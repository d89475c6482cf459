package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "X-API-KEY", cfg.Server.ApiKeyHeader)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "config/service-account.json", cfg.Sheets.CredentialsFile)
	assert.Equal(t, "USER_ENTERED", cfg.Sheets.ValueInputOption)
	assert.Equal(t, 30, cfg.Sheets.TimeoutSeconds)
	assert.False(t, cfg.Storage.Enabled)
	assert.True(t, cfg.Auth.SeedAdmin)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.False(t, cfg.Sync.OverwriteOrders)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_API_KEY", "secret")
	t.Setenv("SYNC_OVERWRITE_ORDERS", "true")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_B64", "ZXlK")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Server.ApiKey)
	assert.True(t, cfg.Sync.OverwriteOrders)
	assert.Equal(t, "ZXlK", cfg.Sheets.CredentialsB64)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SHEETS_HEALTH_SPREADSHEET_ID=sheet-1\nDATABASE_DRIVER=mysql\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SHEETS_HEALTH_SPREADSHEET_ID")
		os.Unsetenv("DATABASE_DRIVER")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sheet-1", cfg.Sheets.HealthSpreadsheetID)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
