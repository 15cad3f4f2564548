package assetstore

import "time"

// MetricsRecorder receives operation outcomes from the store. Implementations
// must be safe for concurrent use; they are called while the store lock is
// held and must not call back into the store.
type MetricsRecorder interface {
	// Observe reports one store operation and whether it was applied
	Observe(operation string, success bool, duration time.Duration)

	// Cascaded reports records removed as a side effect of a delete.
	// kind is one of the Cascade* constants.
	Cascaded(kind string, count int)

	// Evicted reports history entries dropped because the stack was full
	Evicted(count int)
}

// Kinds of records reported through MetricsRecorder.Cascaded
const (
	CascadeAssets      = "assets"
	CascadeValues      = "values"
	CascadeConnections = "connections"
	CascadeSubAssets   = "sub_assets"
	CascadeHistory     = "history"
)

type noopRecorder struct{}

func (noopRecorder) Observe(string, bool, time.Duration) {}
func (noopRecorder) Cascaded(string, int)                {}
func (noopRecorder) Evicted(int)                         {}

// observe reports op to the recorder; use as
//
//	defer s.observe("add_asset", time.Now(), &err)
func (s *Store) observe(op string, start time.Time, err *error) {
	success := err == nil || *err == nil
	s.recorder.Observe(op, success, time.Since(start))
	if !success {
		s.logger.Debug("operation declined", "op", op, "error", *err)
	}
}

func (s *Store) cascaded(kind string, count int) {
	if count > 0 {
		s.recorder.Cascaded(kind, count)
	}
}
