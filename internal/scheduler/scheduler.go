package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/history"
	"BreakoutSentinel/internal/model"
	"BreakoutSentinel/internal/notifier"
	"BreakoutSentinel/internal/recorder"
	"BreakoutSentinel/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily scan cycle and serves bot commands.
type Scheduler struct {
	Cron          *cron.Cron
	Collector     *collector.Collector
	Store         *history.Store
	Evaluator     *strategy.Evaluator
	Notifier      *notifier.TelegramNotifier
	Recorder      recorder.Recorder
	Symbols       []string
	RetentionDays int
	Ctx           context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, store *history.Store,
	ev *strategy.Evaluator, tn *notifier.TelegramNotifier, rec recorder.Recorder,
	symbols []string, retentionDays int) *Scheduler {
	return &Scheduler{
		Cron:          cron.New(cron.WithSeconds()),
		Collector:     col,
		Store:         store,
		Evaluator:     ev,
		Notifier:      tn,
		Recorder:      rec,
		Symbols:       symbols,
		RetentionDays: retentionDays,
		Ctx:           ctx,
	}
}

// Register adds the daily scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// LoadHistory seeds the in-memory store from the recorder's bar table.
func (s *Scheduler) LoadHistory() error {
	all, err := s.Recorder.LoadAll()
	if err != nil {
		return fmt.Errorf("load bar history: %w", err)
	}
	for symbol, bars := range all {
		if err := s.Store.Ingest(symbol, bars); err != nil {
			log.Printf("[WARN] load %s: rejected stored bars: %v", symbol, err)
		}
	}
	log.Printf("[INFO] loaded %d bars for %d symbols", s.Store.BarCount(), len(all))
	return nil
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] running scan over %d symbols", len(s.Symbols))
	start := time.Now()

	refreshed := s.Collector.Collect(s.Store, s.Symbols)
	log.Printf("[INFO] refreshed %d/%d symbols in %s", refreshed, len(s.Symbols), time.Since(start).Round(time.Second))

	scanDate := s.Store.LatestDate()
	if scanDate.IsZero() {
		log.Println("[ERROR] scan aborted: no bars in store")
		s.trySend("❌ Scan failed: no market data available")
		return
	}

	s.Store.Prune(scanDate, s.RetentionDays)
	s.persist(scanDate)

	signals := s.evaluateAll(scanDate)
	log.Printf("[INFO] scan complete: %d breakout(s) on %s", len(signals), scanDate.Format("2006-01-02"))

	report := notifier.FormatScanReport(scanDate, signals)
	s.trySend(report)

	if err := s.Recorder.RecordSignals(scanDate, signals); err != nil {
		log.Printf("[ERROR] record signals: %v", err)
	}
}

// evaluateAll maps the evaluator over the universe in configuration order.
// Per-symbol evaluation is independent; one symbol never aborts the rest.
func (s *Scheduler) evaluateAll(scanDate time.Time) []model.Signal {
	var signals []model.Signal
	for _, symbol := range s.Symbols {
		series := s.Store.SeriesFor(symbol)
		sig := s.Evaluator.Evaluate(series, scanDate)
		if sig == nil {
			continue
		}
		log.Printf("[INFO] breakout: %s %s close=%.2f vol=%.2fx", symbol, sig.BreakoutType, sig.Close, sig.VolRatio)
		signals = append(signals, *sig)
	}
	return signals
}

func (s *Scheduler) persist(scanDate time.Time) {
	cutoff := scanDate.AddDate(0, 0, -s.RetentionDays)
	if err := s.Recorder.PruneBefore(cutoff); err != nil {
		log.Printf("[ERROR] prune stored bars: %v", err)
	}
	for _, symbol := range s.Store.Symbols() {
		if err := s.Recorder.SaveSeries(s.Store.SeriesFor(symbol)); err != nil {
			log.Printf("[ERROR] save series %s: %v", symbol, err)
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		go s.scanTask()
		return "🔍 Scan started..."
	case "/status":
		latest := "n/a"
		if d := s.Store.LatestDate(); !d.IsZero() {
			latest = d.Format("2006-01-02")
		}
		return fmt.Sprintf("📦 <b>Store status</b>\n\nSymbols: %d\nBars: %d\nLatest session: %s",
			len(s.Store.Symbols()), s.Store.BarCount(), latest)
	default:
		return "Available commands:\n• /scan — run the breakout scan now\n• /status — history store coverage"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
