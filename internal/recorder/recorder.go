package recorder

import (
	"time"

	"BreakoutSentinel/internal/model"
)

// Recorder persists the rolling bar history and an audit trail of emitted
// signals. The bar table keyed by (date, symbol) is the canonical durable
// form of the history store and is round-tripped on startup and after each
// scan cycle.
type Recorder interface {
	SaveSeries(series model.Series) error
	LoadAll() (map[string][]model.Bar, error)
	PruneBefore(cutoff time.Time) error
	RecordSignals(scanDate time.Time, signals []model.Signal) error
	Close() error
}
