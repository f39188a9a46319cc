package model

import (
	"fmt"
	"time"
)

// Bar represents a single daily candlestick for one symbol.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Day returns the bar's date normalized to UTC midnight. Bars from upstream
// sources carry exchange-local timestamps; all dedup and ordering is done on
// the calendar day.
func (b Bar) Day() time.Time {
	y, m, d := b.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the price-ordering and volume invariants.
func (b Bar) Validate() error {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return &InvalidBarError{Date: b.Day(), Reason: "non-positive price"}
	}
	if b.Low > b.Open || b.Low > b.Close || b.High < b.Open || b.High < b.Close {
		return &InvalidBarError{Date: b.Day(), Reason: fmt.Sprintf("price ordering violated: low=%.2f open=%.2f close=%.2f high=%.2f", b.Low, b.Open, b.Close, b.High)}
	}
	if b.Volume < 0 {
		return &InvalidBarError{Date: b.Day(), Reason: fmt.Sprintf("negative volume %d", b.Volume)}
	}
	return nil
}

// InvalidBarError reports a malformed input bar. One bad bar never aborts
// ingestion of its siblings.
type InvalidBarError struct {
	Symbol string
	Date   time.Time
	Reason string
}

func (e *InvalidBarError) Error() string {
	return fmt.Sprintf("invalid bar %s %s: %s", e.Symbol, e.Date.Format("2006-01-02"), e.Reason)
}

// Series is an ordered run of daily bars for a single symbol, strictly
// increasing by date. Gaps (weekends, holidays) are expected.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Len returns the number of bars in the series.
func (s Series) Len() int { return len(s.Bars) }

// IndexOf returns the position of the bar dated day, or -1 if absent.
func (s Series) IndexOf(day time.Time) int {
	y, m, d := day.Date()
	key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for i := len(s.Bars) - 1; i >= 0; i-- {
		switch {
		case s.Bars[i].Day().Equal(key):
			return i
		case s.Bars[i].Day().Before(key):
			return -1
		}
	}
	return -1
}

// LatestDate returns the date of the newest bar, or the zero time for an
// empty series.
func (s Series) LatestDate() time.Time {
	if len(s.Bars) == 0 {
		return time.Time{}
	}
	return s.Bars[len(s.Bars)-1].Day()
}
