package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"BreakoutSentinel/internal/model"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// SQLiteRecorder persists bar history and signals to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad hoc readers don't block the scan cycle's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bars (
			symbol  TEXT NOT NULL,
			date    TEXT NOT NULL,
			open    REAL NOT NULL,
			high    REAL NOT NULL,
			low     REAL NOT NULL,
			close   REAL NOT NULL,
			volume  INTEGER NOT NULL,
			PRIMARY KEY (date, symbol)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_symbol ON bars(symbol)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			scan_date     TEXT NOT NULL,
			symbol        TEXT NOT NULL,
			close         REAL,
			week52_high   REAL,
			ema21         REAL,
			vol_ratio     REAL,
			breakout_type TEXT,
			sl_price      REAL,
			sl_pct        REAL,
			target_price  REAL,
			target_pct    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_scan_date ON signals(scan_date)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// SaveSeries upserts every bar of the series inside one transaction.
func (r *SQLiteRecorder) SaveSeries(series model.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO bars
		(symbol, date, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, b := range series.Bars {
		if _, err := stmt.Exec(series.Symbol, b.Day().Format(dateLayout),
			b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("upsert bar %s %s: %w", series.Symbol, b.Day().Format(dateLayout), err)
		}
	}
	return tx.Commit()
}

// LoadAll returns every stored bar grouped by symbol, ordered by date.
func (r *SQLiteRecorder) LoadAll() (map[string][]model.Bar, error) {
	rows, err := r.db.Query(`SELECT symbol, date, open, high, low, close, volume
		FROM bars ORDER BY symbol, date`)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Bar)
	for rows.Next() {
		var symbol, dateStr string
		var b model.Bar
		if err := rows.Scan(&symbol, &dateStr, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		d, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse bar date %q: %w", dateStr, err)
		}
		b.Date = d
		out[symbol] = append(out[symbol], b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, bars := range out {
		sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	}
	return out, nil
}

// PruneBefore deletes all bars older than cutoff, mirroring the in-memory
// store's retention pass.
func (r *SQLiteRecorder) PruneBefore(cutoff time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`DELETE FROM bars WHERE date < ?`, cutoff.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("prune bars: %w", err)
	}
	return nil
}

// RecordSignals appends the scan's emitted signals to the audit table.
func (r *SQLiteRecorder) RecordSignals(scanDate time.Time, signals []model.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().Unix()
	for _, s := range signals {
		if _, err := tx.Exec(`INSERT INTO signals
			(timestamp, scan_date, symbol, close, week52_high, ema21, vol_ratio,
			 breakout_type, sl_price, sl_pct, target_price, target_pct)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			now, scanDate.Format(dateLayout), s.Symbol, s.Close, s.Week52High, s.EMA21,
			s.VolRatio, string(s.BreakoutType), s.SLPrice, s.SLPct, s.TargetPrice, s.TargetPct,
		); err != nil {
			return fmt.Errorf("insert signal %s: %w", s.Symbol, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
