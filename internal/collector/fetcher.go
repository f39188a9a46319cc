package collector

import "BreakoutSentinel/internal/model"

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	Name() string
}
