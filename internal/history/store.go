// Package history maintains per-symbol rolling windows of daily bars.
package history

import (
	"errors"
	"sort"
	"sync"
	"time"

	"BreakoutSentinel/internal/model"
)

// Store maps symbols to date-ordered bar series. Writes are serialized so
// that re-ingesting overlapping fetch windows stays keep-last-by-date safe
// under concurrent use.
type Store struct {
	mu     sync.RWMutex
	series map[string][]model.Bar
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{series: make(map[string][]model.Bar)}
}

// Ingest merges bars into the symbol's series. A bar whose date is already
// present replaces the stored bar entirely; new dates are inserted in order.
// Malformed bars are rejected individually and reported via the returned
// error while valid siblings are still applied.
func (s *Store) Ingest(symbol string, bars []model.Bar) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rejected []error
	existing := s.series[symbol]
	for _, b := range bars {
		if err := b.Validate(); err != nil {
			var ibe *model.InvalidBarError
			if errors.As(err, &ibe) {
				ibe.Symbol = symbol
			}
			rejected = append(rejected, err)
			continue
		}
		existing = upsertBar(existing, b)
	}
	s.series[symbol] = existing

	if len(rejected) > 0 {
		return errors.Join(rejected...)
	}
	return nil
}

// upsertBar inserts b into the date-ordered slice, replacing any bar that
// shares its calendar day.
func upsertBar(bars []model.Bar, b model.Bar) []model.Bar {
	day := b.Day()
	b.Date = day
	i := sort.Search(len(bars), func(i int) bool {
		return !bars[i].Day().Before(day)
	})
	if i < len(bars) && bars[i].Day().Equal(day) {
		bars[i] = b
		return bars
	}
	bars = append(bars, model.Bar{})
	copy(bars[i+1:], bars[i:])
	bars[i] = b
	return bars
}

// Prune drops every bar older than referenceDate minus retentionDays, for
// all symbols. Calling it again with the same arguments is a no-op.
func (s *Store) Prune(referenceDate time.Time, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	y, m, d := referenceDate.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -retentionDays)

	s.mu.Lock()
	defer s.mu.Unlock()
	for symbol, bars := range s.series {
		i := sort.Search(len(bars), func(i int) bool {
			return !bars[i].Day().Before(cutoff)
		})
		if i > 0 {
			s.series[symbol] = append([]model.Bar(nil), bars[i:]...)
		}
	}
}

// SeriesFor returns a read-only view of the symbol's bars. Unknown symbols
// yield an empty series, not an error.
func (s *Store) SeriesFor(symbol string) model.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bars := s.series[symbol]
	out := make([]model.Bar, len(bars))
	copy(out, bars)
	return model.Series{Symbol: symbol, Bars: out}
}

// Symbols returns all symbols with at least one bar, sorted.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	symbols := make([]string, 0, len(s.series))
	for sym, bars := range s.series {
		if len(bars) > 0 {
			symbols = append(symbols, sym)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// LatestDate returns the newest bar date across every symbol, or the zero
// time when the store is empty. This is the reference trading day for a
// scan cycle.
func (s *Store) LatestDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest time.Time
	for _, bars := range s.series {
		if len(bars) > 0 {
			if d := bars[len(bars)-1].Day(); d.After(latest) {
				latest = d
			}
		}
	}
	return latest
}

// BarCount returns the total number of stored bars across all symbols.
func (s *Store) BarCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, bars := range s.series {
		n += len(bars)
	}
	return n
}
