package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/config"
	"BreakoutSentinel/internal/history"
	"BreakoutSentinel/internal/notifier"
	"BreakoutSentinel/internal/recorder"
	"BreakoutSentinel/internal/scheduler"
	"BreakoutSentinel/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BreakoutSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s, universe: %d symbols", fetcher.Name(), len(cfg.Scanner.Symbols))
	col := collector.NewCollector(fetcher, cfg.Scanner.FetchDays, cfg.FetchInterval())

	// Init breakout evaluator
	strat := strategy.DefaultConfig()
	strat.LookbackDays = cfg.Strategy.LookbackDays
	strat.EMAPeriod = cfg.Strategy.EMAPeriod
	strat.VolMAPeriod = cfg.Strategy.VolMAPeriod
	strat.MinPrice = cfg.Strategy.MinPrice
	strat.MaxPrice = cfg.Strategy.MaxPrice
	strat.MinVolume = cfg.Strategy.MinVolume
	strat.BreakoutOnClose = cfg.Strategy.BreakoutOnClose
	strat.RequireVolumeSurge = cfg.Strategy.RequireVolumeSurge
	strat.VolMultiplier = cfg.Strategy.VolMultiplier
	ev := strategy.NewEvaluator(strat)

	// Init Telegram notifier
	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Fatalf("[FATAL] init telegram notifier: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler and seed the history store from durable state
	store := history.NewStore()
	sched := scheduler.NewScheduler(ctx, col, store, ev, tn, rec, cfg.Scanner.Symbols, cfg.Scanner.RetentionDays)
	if err := sched.LoadHistory(); err != nil {
		log.Printf("[WARN] load history: %v", err)
	}
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] BreakoutSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BreakoutSentinel stopped")
}
