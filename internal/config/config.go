package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Scanner struct {
		Symbols         []string `yaml:"symbols"`
		FetchDays       int      `yaml:"fetch_days"`        // daily bars requested per symbol
		FetchIntervalMS int      `yaml:"fetch_interval_ms"` // pause between per-symbol fetches
		RetentionDays   int      `yaml:"retention_days"`    // calendar days kept in the history store
	} `yaml:"scanner"`
	Strategy struct {
		LookbackDays       int     `yaml:"lookback_days"`
		EMAPeriod          int     `yaml:"ema_period"`
		VolMAPeriod        int     `yaml:"vol_ma_period"`
		MinPrice           float64 `yaml:"min_price"`
		MaxPrice           float64 `yaml:"max_price"`
		MinVolume          int64   `yaml:"min_volume"`
		BreakoutOnClose    bool    `yaml:"breakout_on_close"`
		RequireVolumeSurge bool    `yaml:"require_volume_surge"`
		VolMultiplier      float64 `yaml:"vol_multiplier"`
	} `yaml:"strategy"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SCAN_SYMBOLS"); v != "" {
		cfg.Scanner.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scanner.RetentionDays = n
		}
	}

	// Defaults
	if len(cfg.Scanner.Symbols) == 0 {
		cfg.Scanner.Symbols = DefaultSymbols()
	}
	cfg.Scanner.Symbols = dedupe(cfg.Scanner.Symbols)
	if cfg.Scanner.FetchDays == 0 {
		cfg.Scanner.FetchDays = 300 // 14 months of trading sessions
	}
	if cfg.Scanner.FetchIntervalMS == 0 {
		cfg.Scanner.FetchIntervalMS = 300
	}
	if cfg.Scanner.RetentionDays == 0 {
		cfg.Scanner.RetentionDays = 425 // ~14 calendar months
	}
	if cfg.Strategy.LookbackDays == 0 {
		cfg.Strategy.LookbackDays = 252
	}
	if cfg.Strategy.EMAPeriod == 0 {
		cfg.Strategy.EMAPeriod = 21
	}
	if cfg.Strategy.VolMAPeriod == 0 {
		cfg.Strategy.VolMAPeriod = 30
	}
	if cfg.Strategy.VolMultiplier == 0 {
		cfg.Strategy.VolMultiplier = 1.5
	}
	if cfg.Schedule.ScanCron == "" {
		// 16:00 on weekdays, after the NSE close.
		cfg.Schedule.ScanCron = "0 0 16 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/breakout_sentinel.db"
	}

	return cfg, nil
}

// FetchInterval returns the pause between per-symbol fetches.
func (c *Config) FetchInterval() time.Duration {
	return time.Duration(c.Scanner.FetchIntervalMS) * time.Millisecond
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Scanner.Symbols) == 0 {
		return fmt.Errorf("scanner.symbols must not be empty")
	}
	if c.Strategy.LookbackDays <= 0 || c.Strategy.EMAPeriod <= 0 || c.Strategy.VolMAPeriod <= 0 {
		return fmt.Errorf("strategy periods must be positive")
	}
	if c.Scanner.RetentionDays < c.Strategy.LookbackDays {
		return fmt.Errorf("scanner.retention_days (%d) must cover strategy.lookback_days (%d)",
			c.Scanner.RetentionDays, c.Strategy.LookbackDays)
	}
	if c.Strategy.MinPrice < 0 || c.Strategy.MaxPrice < 0 || c.Strategy.MinVolume < 0 {
		return fmt.Errorf("strategy liquidity bounds must not be negative")
	}
	if c.Strategy.MaxPrice > 0 && c.Strategy.MinPrice > c.Strategy.MaxPrice {
		return fmt.Errorf("strategy.min_price must not exceed strategy.max_price")
	}
	if c.Strategy.RequireVolumeSurge && c.Strategy.VolMultiplier <= 0 {
		return fmt.Errorf("strategy.vol_multiplier must be positive when require_volume_surge is set")
	}
	return nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			symbols = append(symbols, p)
		}
	}
	return symbols
}

// dedupe removes duplicate symbols preserving first-seen order.
func dedupe(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := symbols[:0]
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
