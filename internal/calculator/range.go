package calculator

import (
	"errors"
	"math"

	"BreakoutSentinel/internal/model"
)

// HighestHigh returns the maximum high across all bars in the slice.
func HighestHigh(bars []model.Bar) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	high := math.Inf(-1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
	}
	return high, nil
}

// TrailingHigh returns the maximum high over the most recent `lookback` bars
// of the slice. When fewer bars are available it scans all of them.
func TrailingHigh(bars []model.Bar, lookback int) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	start := len(bars) - lookback
	if start < 0 {
		start = 0
	}
	return HighestHigh(bars[start:])
}
