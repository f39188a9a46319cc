package calculator

import (
	"errors"

	"BreakoutSentinel/internal/model"
)

// AverageVolume computes the mean volume over the most recent `period` bars
// of the slice. The caller is expected to pass the window it cares about
// (typically the bars strictly preceding the session under evaluation).
func AverageVolume(bars []model.Bar, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period {
		return 0, errors.New("not enough data for volume average")
	}
	var sum float64
	for i := len(bars) - period; i < len(bars); i++ {
		sum += float64(bars[i].Volume)
	}
	return sum / float64(period), nil
}
