package recorder

import (
	"time"

	"BreakoutSentinel/internal/model"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) SaveSeries(_ model.Series) error { return nil }
func (n *NoopRecorder) LoadAll() (map[string][]model.Bar, error) { return nil, nil }
func (n *NoopRecorder) PruneBefore(_ time.Time) error { return nil }
func (n *NoopRecorder) RecordSignals(_ time.Time, _ []model.Signal) error { return nil }
func (n *NoopRecorder) Close() error { return nil }
