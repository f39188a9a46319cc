// Package strategy implements the 52-week-high breakout evaluation.
package strategy

import (
	"math"
	"time"

	"BreakoutSentinel/internal/calculator"
	"BreakoutSentinel/internal/model"
)

// warmupMargin is the number of extra sessions required beyond the lookback
// window before a 52-week high is considered meaningful.
const warmupMargin = 5

// Config holds the evaluation parameters. Multiple configurations can
// coexist; the zero value is not usable, start from DefaultConfig.
type Config struct {
	LookbackDays int // 52-week high window, trading sessions
	EMAPeriod    int // smoothing span for the close EMA
	VolMAPeriod  int // trailing average-volume window, trading sessions

	// Liquidity filter. Each bound is disabled when 0.
	MinPrice  float64
	MaxPrice  float64
	MinVolume int64

	// Backward-compatibility switches for earlier revisions of the rules.
	// BreakoutOnClose tests close > 52-week high instead of the session
	// high. RequireVolumeSurge gates emission on VolRatio >= VolMultiplier
	// instead of reporting the ratio informationally.
	BreakoutOnClose    bool
	RequireVolumeSurge bool
	VolMultiplier      float64
}

// DefaultConfig returns the canonical parameters: 252-session lookback,
// 21-period EMA, 30-session volume average, high-based breakout test,
// volume ratio informational only.
func DefaultConfig() Config {
	return Config{
		LookbackDays:  252,
		EMAPeriod:     21,
		VolMAPeriod:   30,
		VolMultiplier: 1.5,
	}
}

// Evaluator applies the breakout rules to one series at a time. It holds no
// mutable state, so a single Evaluator may be shared across goroutines.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an Evaluator with the given configuration.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate checks whether the symbol broke out on asOf and returns the
// resulting signal, or nil when any condition fails. Absent data (no bar for
// asOf, short history) is expected and returns nil rather than an error.
func (e *Evaluator) Evaluate(series model.Series, asOf time.Time) *model.Signal {
	idx := series.IndexOf(asOf)
	if idx < 0 {
		return nil
	}
	if idx < e.cfg.LookbackDays+warmupMargin {
		return nil
	}

	today := series.Bars[idx]

	if e.cfg.MinPrice > 0 && today.Close < e.cfg.MinPrice {
		return nil
	}
	if e.cfg.MaxPrice > 0 && today.Close > e.cfg.MaxPrice {
		return nil
	}
	if e.cfg.MinVolume > 0 && today.Volume < e.cfg.MinVolume {
		return nil
	}

	// 52-week high over the sessions strictly preceding today.
	week52High, err := calculator.TrailingHigh(series.Bars[:idx], e.cfg.LookbackDays)
	if err != nil {
		return nil
	}

	breakoutLevel := today.High
	if e.cfg.BreakoutOnClose {
		breakoutLevel = today.Close
	}
	if breakoutLevel <= week52High {
		return nil
	}

	// EMA runs over the entire history up to and including today.
	ema, err := calculator.CalculateEMA(series.Bars[:idx+1], e.cfg.EMAPeriod)
	if err != nil {
		return nil
	}

	avgVolume, err := calculator.AverageVolume(series.Bars[:idx], e.cfg.VolMAPeriod)
	if err != nil {
		return nil
	}
	volRatio := 0.0
	if avgVolume > 0 {
		volRatio = float64(today.Volume) / avgVolume
	}

	greenCandle := today.Close > today.Open
	aboveEMA := today.Close > ema
	if !greenCandle || !aboveEMA {
		return nil
	}
	if e.cfg.RequireVolumeSurge && volRatio < e.cfg.VolMultiplier {
		return nil
	}

	allTimeHigh, err := calculator.HighestHigh(series.Bars[:idx+1])
	if err != nil {
		return nil
	}
	breakoutType := model.FiftyTwoWeekHigh
	if math.Abs(week52High-allTimeHigh) < 0.01*week52High {
		breakoutType = model.AllTimeHigh
	}

	slPrice := today.Low
	slPct := round2((today.Close - slPrice) / today.Close * 100)
	targetPrice := round2(today.Close + 2*(today.Close-slPrice))
	targetPct := round2(2 * slPct)

	return &model.Signal{
		Symbol:       series.Symbol,
		Date:         today.Day(),
		Close:        round2(today.Close),
		Week52High:   round2(week52High),
		EMA21:        round2(ema),
		VolRatio:     round2(volRatio),
		BreakoutType: breakoutType,
		SLPrice:      round2(slPrice),
		SLPct:        slPct,
		TargetPrice:  targetPrice,
		TargetPct:    targetPct,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
