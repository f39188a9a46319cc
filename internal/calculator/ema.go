package calculator

import (
	"errors"

	"BreakoutSentinel/internal/model"
)

// CalculateEMA computes the exponential moving average of closing prices with
// the given smoothing span. The first close seeds the average and the
// recurrence ema[t] = close[t]*k + ema[t-1]*(1-k) with k = 2/(span+1) runs
// over every bar in the slice.
func CalculateEMA(bars []model.Bar, span int) (float64, error) {
	if span <= 0 {
		return 0, errors.New("span must be positive")
	}
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	// Written as ema += k*(close-ema) so a constant-price series yields the
	// constant exactly, with no floating-point drift.
	k := 2.0 / float64(span+1)
	ema := bars[0].Close
	for _, b := range bars[1:] {
		ema += k * (b.Close - ema)
	}
	return ema, nil
}
