// Package metrics records dispatcher and failure counts.
package metrics

// Recorder defines the interface for recording engine metrics.
type Recorder interface {
	// RecordDispatch records that the dispatcher chose rule for a
	// value.
	RecordDispatch(rule string)
	// RecordFailure records a failure of the given error kind.
	RecordFailure(kind string)
}

// NoopMetrics is a no-op implementation of Recorder used when
// metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordDispatch(_ string) {}
func (NoopMetrics) RecordFailure(_ string)  {}
