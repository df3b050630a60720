package objectdto

import (
	"log/slog"
)

// DiagnosticSink receives one call per key that failed the presence check
// during Materialize.
type DiagnosticSink interface {
	MissingField(shape, key string)
}

// SinkFunc adapts a plain function to DiagnosticSink.
type SinkFunc func(shape, key string)

// MissingField calls f(shape, key).
func (f SinkFunc) MissingField(shape, key string) {
	f(shape, key)
}

// Discard drops every diagnostic.
var Discard DiagnosticSink = SinkFunc(func(string, string) {})

// SlogSink logs an error per missing key. A nil Logger falls back to
// slog.Default() at call time.
type SlogSink struct {
	Logger *slog.Logger
}

// MissingField logs the shape name and the offending key.
func (s SlogSink) MissingField(shape, key string) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("Could not materialize "+shape+" due to the invalid key: "+key,
		slog.String("shape", shape),
		slog.String("key", key),
	)
}
