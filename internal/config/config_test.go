package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverMongo, cfg.Farm.StorageDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.False(t, cfg.Alerts.PreserveAcks)
	assert.Equal(t, "0 6 * * *", cfg.Alerts.RefreshCron)
	assert.Equal(t, "0 20 * * *", cfg.Reporting.CronSchedule)
	assert.Equal(t, "America/Sao_Paulo", cfg.Reporting.Timezone)
	assert.False(t, cfg.SheetsEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ALERT_PRESERVE_ACKS", "true")
	t.Setenv("ALERT_WEBHOOK_URL", "https://hooks.example.com/farm")

	cfg, err := Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Farm.StorageDriver)
	assert.True(t, cfg.Alerts.PreserveAcks)
	assert.Equal(t, "https://hooks.example.com/farm", cfg.Alerts.WebhookURL)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load("testdata/absent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestValidateRejectsPartialSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "sheet-id")

	_, err := Load("testdata/absent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SHEETS_CREDENTIALS_PATH")
}

func TestSheetsEnabled(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "testdata/creds.json")
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "sheet-id")

	cfg, err := Load("testdata/absent.env")
	require.NoError(t, err)
	assert.True(t, cfg.SheetsEnabled())
}
