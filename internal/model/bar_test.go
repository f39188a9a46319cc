package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBar_Validate(t *testing.T) {
	valid := Bar{Date: time.Now(), Open: 100, High: 102, Low: 99, Close: 101, Volume: 500}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		bar  Bar
	}{
		{"zero price", Bar{Open: 0, High: 102, Low: 99, Close: 101, Volume: 1}},
		{"high below close", Bar{Open: 100, High: 100.5, Low: 99, Close: 101, Volume: 1}},
		{"low above open", Bar{Open: 100, High: 102, Low: 100.5, Close: 101, Volume: 1}},
		{"negative volume", Bar{Open: 100, High: 102, Low: 99, Close: 101, Volume: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bar.Validate()
			assert.Error(t, err)
			var ibe *InvalidBarError
			assert.ErrorAs(t, err, &ibe)
		})
	}

	zeroVolume := Bar{Open: 100, High: 102, Low: 99, Close: 101, Volume: 0}
	assert.NoError(t, zeroVolume.Validate(), "zero volume is allowed")
}

func TestBar_Day(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	b := Bar{Date: time.Date(2025, 8, 26, 15, 45, 12, 0, loc)}
	assert.Equal(t, time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC), b.Day())
}

func TestSeries_IndexOf(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	s := Series{Symbol: "X.NS", Bars: []Bar{
		{Date: start}, {Date: start.AddDate(0, 0, 1)}, {Date: start.AddDate(0, 0, 4)},
	}}

	assert.Equal(t, 0, s.IndexOf(start))
	assert.Equal(t, 2, s.IndexOf(start.AddDate(0, 0, 4)))
	assert.Equal(t, -1, s.IndexOf(start.AddDate(0, 0, 2)), "weekend gap has no bar")
	assert.Equal(t, -1, s.IndexOf(start.AddDate(0, 0, 30)))

	// Intraday timestamps resolve to the same calendar day.
	assert.Equal(t, 1, s.IndexOf(start.AddDate(0, 0, 1).Add(10*time.Hour)))

	assert.Equal(t, -1, Series{}.IndexOf(start))
}

func TestSeries_LatestDate(t *testing.T) {
	assert.True(t, Series{}.LatestDate().IsZero())

	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	s := Series{Bars: []Bar{{Date: start}, {Date: start.AddDate(0, 0, 3)}}}
	assert.Equal(t, start.AddDate(0, 0, 3), s.LatestDate())
}
