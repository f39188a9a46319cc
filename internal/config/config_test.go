package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 252, cfg.Strategy.LookbackDays)
	assert.Equal(t, 21, cfg.Strategy.EMAPeriod)
	assert.Equal(t, 30, cfg.Strategy.VolMAPeriod)
	assert.Equal(t, 1.5, cfg.Strategy.VolMultiplier)
	assert.False(t, cfg.Strategy.BreakoutOnClose)
	assert.False(t, cfg.Strategy.RequireVolumeSurge)
	assert.Equal(t, 425, cfg.Scanner.RetentionDays)
	assert.Equal(t, "0 0 16 * * 1-5", cfg.Schedule.ScanCron)
	assert.NotEmpty(t, cfg.Scanner.Symbols)
	assert.Equal(t, "data/breakout_sentinel.db", cfg.Database.SQLitePath)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: file-token
  chat_id: "12345"
scanner:
  symbols: ["AAA.NS", "BBB.NS", "AAA.NS"]
  retention_days: 400
strategy:
  min_price: 50
  require_volume_surge: true
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("CRON_SCAN", "0 30 15 * * 1-5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.BotToken, "env must override file")
	assert.Equal(t, "12345", cfg.Telegram.ChatID)
	assert.Equal(t, "0 30 15 * * 1-5", cfg.Schedule.ScanCron)
	assert.Equal(t, []string{"AAA.NS", "BBB.NS"}, cfg.Scanner.Symbols, "duplicates removed, order kept")
	assert.Equal(t, 400, cfg.Scanner.RetentionDays)
	assert.Equal(t, 50.0, cfg.Strategy.MinPrice)
	assert.True(t, cfg.Strategy.RequireVolumeSurge)
	assert.Equal(t, 1.5, cfg.Strategy.VolMultiplier, "defaults still applied around file values")
	require.NoError(t, cfg.Validate())
}

func TestLoad_SymbolsFromEnv(t *testing.T) {
	t.Setenv("SCAN_SYMBOLS", " TCS.NS , INFY.NS ,, TCS.NS ")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"TCS.NS", "INFY.NS"}, cfg.Scanner.Symbols)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		cfg.Telegram.BotToken = "token"
		cfg.Telegram.ChatID = "1"
		return cfg
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.Telegram.BotToken = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scanner.RetentionDays = 100
	assert.Error(t, cfg.Validate(), "retention must cover the lookback window")

	cfg = base()
	cfg.Strategy.MinPrice = 100
	cfg.Strategy.MaxPrice = 50
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Strategy.MinVolume = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Strategy.RequireVolumeSurge = true
	cfg.Strategy.VolMultiplier = -2
	assert.Error(t, cfg.Validate())
}
