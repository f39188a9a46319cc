package calculator

import (
	"math"
	"testing"
	"time"

	"BreakoutSentinel/internal/model"
)

func mkBars(closes []float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.Bar{
			Date: start.AddDate(0, 0, i),
			Open: c, High: c, Low: c, Close: c,
			Volume: 1000,
		}
	}
	return bars
}

func TestCalculateEMA_ConstantSeries(t *testing.T) {
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 123.45
	}
	ema, err := CalculateEMA(mkBars(closes), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ema != 123.45 {
		t.Errorf("EMA of constant series must equal the constant, got %v", ema)
	}
}

func TestCalculateEMA_Recurrence(t *testing.T) {
	// Seed = first close, then ema += k*(close-ema) with k = 2/(span+1).
	closes := []float64{10, 12, 11, 13}
	span := 3
	k := 2.0 / float64(span+1)
	want := 10.0
	for _, c := range closes[1:] {
		want += k * (c - want)
	}
	got, err := CalculateEMA(mkBars(closes), span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EMA mismatch: got %v, want %v", got, want)
	}
}

func TestCalculateEMA_Errors(t *testing.T) {
	if _, err := CalculateEMA(nil, 21); err == nil {
		t.Error("expected error for empty bars")
	}
	if _, err := CalculateEMA(mkBars([]float64{1}), 0); err == nil {
		t.Error("expected error for non-positive span")
	}
}

func TestAverageVolume(t *testing.T) {
	bars := mkBars([]float64{1, 2, 3, 4, 5})
	for i := range bars {
		bars[i].Volume = int64((i + 1) * 100)
	}
	// mean of the last 3 volumes: (300+400+500)/3
	avg, err := AverageVolume(bars, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 400 {
		t.Errorf("expected 400, got %v", avg)
	}

	if _, err := AverageVolume(bars, 6); err == nil {
		t.Error("expected error when period exceeds available bars")
	}
	if _, err := AverageVolume(bars, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestHighestHigh(t *testing.T) {
	bars := mkBars([]float64{10, 50, 30})
	high, err := HighestHigh(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 50 {
		t.Errorf("expected 50, got %v", high)
	}
	if _, err := HighestHigh(nil); err == nil {
		t.Error("expected error for empty bars")
	}
}

func TestTrailingHigh(t *testing.T) {
	bars := mkBars([]float64{99, 10, 20, 30})
	// only the last 3 bars are in scope
	high, err := TrailingHigh(bars, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 30 {
		t.Errorf("expected 30, got %v", high)
	}
	// lookback longer than the slice scans everything
	high, err = TrailingHigh(bars, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 99 {
		t.Errorf("expected 99, got %v", high)
	}
}
