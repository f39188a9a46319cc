package model

import "time"

// BreakoutType classifies how significant the broken level is.
type BreakoutType string

const (
	// AllTimeHigh means the 52-week high sits within 1% of the highest
	// high in the entire available history.
	AllTimeHigh BreakoutType = "ATH"
	// FiftyTwoWeekHigh means the stock cleared its trailing 252-session
	// high but remains below its all-time high.
	FiftyTwoWeekHigh BreakoutType = "52WH"
)

// Signal is the result of evaluating one symbol on one trading day.
// Monetary and ratio fields are rounded to 2 decimals at emission.
type Signal struct {
	Symbol       string
	Date         time.Time
	Close        float64
	Week52High   float64
	EMA21        float64
	VolRatio     float64 // today's volume / 30-day average volume, 0 if average is 0
	BreakoutType BreakoutType
	SLPrice      float64 // stop-loss at today's low
	SLPct        float64
	TargetPrice  float64 // entry + 2x risk
	TargetPct    float64
}
