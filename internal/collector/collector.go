package collector

import (
	"errors"
	"log"
	"time"

	"BreakoutSentinel/internal/history"
	"BreakoutSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.Bar
	Errs map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	bars := m.Bars[symbol]
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// Collector pulls daily bars for a symbol universe into the history store.
type Collector struct {
	Fetcher   Fetcher
	FetchDays int
	Interval  time.Duration // pause between symbols, spares the upstream API
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, fetchDays int, interval time.Duration) *Collector {
	return &Collector{Fetcher: fetcher, FetchDays: fetchDays, Interval: interval}
}

// Collect fetches each symbol in order and ingests the bars. One symbol's
// fetch or validation failure never aborts the rest; it returns the number
// of symbols successfully refreshed.
func (c *Collector) Collect(store *history.Store, symbols []string) int {
	refreshed := 0
	for i, symbol := range symbols {
		if i > 0 && c.Interval > 0 {
			time.Sleep(c.Interval)
		}
		bars, err := c.Fetcher.FetchDailyBars(symbol, c.FetchDays)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
			continue
		}
		if err := store.Ingest(symbol, bars); err != nil {
			var ibe *model.InvalidBarError
			if errors.As(err, &ibe) {
				log.Printf("[WARN] ingest %s: rejected malformed bars: %v", symbol, err)
			} else {
				log.Printf("[WARN] ingest %s: %v", symbol, err)
			}
		}
		refreshed++
	}
	return refreshed
}
