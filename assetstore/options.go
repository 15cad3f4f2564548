package assetstore

import (
	"log/slog"
	"time"

	"github.com/arthur-debert/assetstore/types"
)

// Option is a function that modifies Store configuration
type Option func(*Store)

// WithConfig replaces the default configuration. It is validated by New.
func WithConfig(cfg types.Config) Option {
	return func(s *Store) {
		s.config = cfg
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeFunc sets a custom time function for testing
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.timeFunc = fn
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(recorder MetricsRecorder) Option {
	return func(s *Store) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}
