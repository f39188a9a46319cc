package history

import (
	"testing"
	"time"

	"BreakoutSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func bar(offset int, close float64, volume int64) model.Bar {
	return model.Bar{
		Date: day(offset),
		Open: close * 0.99, High: close * 1.01, Low: close * 0.98, Close: close,
		Volume: volume,
	}
}

func TestIngest_Idempotent(t *testing.T) {
	s := NewStore()
	bars := []model.Bar{bar(0, 100, 1000), bar(1, 101, 1100), bar(2, 102, 1200)}

	require.NoError(t, s.Ingest("TCS.NS", bars))
	once := s.SeriesFor("TCS.NS")

	require.NoError(t, s.Ingest("TCS.NS", bars))
	twice := s.SeriesFor("TCS.NS")

	assert.Equal(t, once, twice, "re-ingesting the same batch must not change the series")
	assert.Equal(t, 3, twice.Len())
}

func TestIngest_ReplaceByDate(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest("INFY.NS", []model.Bar{bar(0, 100, 1000), bar(1, 101, 1100)}))

	// Revised snapshot for an existing date replaces the stored bar entirely.
	revised := bar(1, 105, 9999)
	require.NoError(t, s.Ingest("INFY.NS", []model.Bar{revised}))

	series := s.SeriesFor("INFY.NS")
	require.Equal(t, 2, series.Len(), "series length must not change on replace")
	assert.Equal(t, 105.0, series.Bars[1].Close)
	assert.Equal(t, int64(9999), series.Bars[1].Volume)
}

func TestIngest_OutOfOrderInsert(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest("SBIN.NS", []model.Bar{bar(2, 102, 1), bar(0, 100, 1), bar(1, 101, 1)}))

	series := s.SeriesFor("SBIN.NS")
	require.Equal(t, 3, series.Len())
	for i := 0; i < series.Len()-1; i++ {
		assert.True(t, series.Bars[i].Date.Before(series.Bars[i+1].Date), "bars must be date-ordered")
	}
}

func TestIngest_InvalidBarsRejectedSiblingsApplied(t *testing.T) {
	s := NewStore()
	bad := model.Bar{Date: day(1), Open: 100, High: 90, Low: 95, Close: 100, Volume: 10} // high < open
	negVol := model.Bar{Date: day(2), Open: 100, High: 101, Low: 99, Close: 100, Volume: -5}

	err := s.Ingest("ITC.NS", []model.Bar{bar(0, 100, 1000), bad, negVol, bar(3, 103, 1300)})
	require.Error(t, err)

	var ibe *model.InvalidBarError
	assert.ErrorAs(t, err, &ibe)
	assert.Equal(t, "ITC.NS", ibe.Symbol)

	series := s.SeriesFor("ITC.NS")
	assert.Equal(t, 2, series.Len(), "valid siblings must still be applied")
}

func TestSeriesFor_UnknownSymbol(t *testing.T) {
	s := NewStore()
	series := s.SeriesFor("NOSUCH.NS")
	assert.Equal(t, "NOSUCH.NS", series.Symbol)
	assert.Zero(t, series.Len())
}

func TestSeriesFor_ReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Ingest("LT.NS", []model.Bar{bar(0, 100, 1000)}))

	view := s.SeriesFor("LT.NS")
	view.Bars[0].Close = 1

	assert.Equal(t, 100.0, s.SeriesFor("LT.NS").Bars[0].Close, "mutating a view must not touch the store")
}

func TestPrune_RetentionBound(t *testing.T) {
	s := NewStore()
	var bars []model.Bar
	for i := 0; i < 30; i++ {
		bars = append(bars, bar(i, 100+float64(i), 1000))
	}
	require.NoError(t, s.Ingest("HDFCBANK.NS", bars))
	require.NoError(t, s.Ingest("WIPRO.NS", bars[:10]))

	ref := day(29)
	s.Prune(ref, 10)

	cutoff := ref.AddDate(0, 0, -10)
	for _, sym := range []string{"HDFCBANK.NS", "WIPRO.NS"} {
		for _, b := range s.SeriesFor(sym).Bars {
			assert.False(t, b.Date.Before(cutoff), "%s bar %s survived pruning", sym, b.Date)
		}
	}
	assert.Equal(t, 11, s.SeriesFor("HDFCBANK.NS").Len())
	assert.Zero(t, s.SeriesFor("WIPRO.NS").Len())

	// Idempotent: the second pass is a no-op.
	before := s.BarCount()
	s.Prune(ref, 10)
	assert.Equal(t, before, s.BarCount())
}

func TestLatestDateAndCounts(t *testing.T) {
	s := NewStore()
	assert.True(t, s.LatestDate().IsZero())

	require.NoError(t, s.Ingest("A.NS", []model.Bar{bar(0, 100, 1), bar(5, 101, 1)}))
	require.NoError(t, s.Ingest("B.NS", []model.Bar{bar(3, 50, 1)}))

	assert.Equal(t, day(5), s.LatestDate())
	assert.Equal(t, 3, s.BarCount())
	assert.Equal(t, []string{"A.NS", "B.NS"}, s.Symbols())
}
