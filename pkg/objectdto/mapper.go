package objectdto

import (
	"log/slog"
)

// Mapper carries the diagnostic sink and presence rule used by Materialize.
// A Mapper is immutable once built and safe for concurrent use.
type Mapper struct {
	sink             DiagnosticSink
	acceptZeroValues bool
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithSink routes Materialize diagnostics to sink. A nil sink discards them.
func WithSink(sink DiagnosticSink) Option {
	return func(m *Mapper) {
		if sink == nil {
			sink = Discard
		}
		m.sink = sink
	}
}

// WithLogger routes Materialize diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return WithSink(SlogSink{Logger: logger})
}

// WithAcceptZeroValues relaxes the presence rule so that 0, "" and false
// count as present. Only a missing key or nil fails the check.
func WithAcceptZeroValues() Option {
	return func(m *Mapper) {
		m.acceptZeroValues = true
	}
}

// New creates a Mapper. Without options, diagnostics go to slog.Default() and
// falsy values count as missing.
func New(opts ...Option) *Mapper {
	m := &Mapper{sink: SlogSink{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// With returns a copy of m with opts applied on top.
func (m *Mapper) With(opts ...Option) *Mapper {
	cp := *m
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// Materialize checks that payload.Data holds a present value for every key
// of shape and copies those values into a new Record. When any key fails the
// check it reports each offending key to the sink and returns nil.
func (m *Mapper) Materialize(payload Payload, shape Shape) Record {
	valid := true
	for _, key := range shape.Fields {
		if !isPresent(payload.Data, key, m.acceptZeroValues) {
			m.sink.MissingField(shape.Name, key)
			valid = false
		}
	}
	if !valid {
		return nil
	}

	out := make(Record, len(shape.Fields))
	for _, key := range shape.Fields {
		out[key] = payload.Data[key]
	}
	return out
}

// Flatten copies every top-level field of obj into a new Record. Nested
// values are shared, not cloned.
func (m *Mapper) Flatten(obj any) Record {
	return viewOf(obj)
}

// Project copies source[key] for every key of shape into a new Record. Keys
// the source lacks are present in the result with a nil value.
func (m *Mapper) Project(source any, shape Shape) Record {
	src := viewOf(source)
	out := make(Record, len(shape.Fields))
	for _, key := range shape.Fields {
		out[key] = src[key]
	}
	return out
}

var defaultMapper = New()

// Materialize runs Mapper.Materialize on the default mapper.
func Materialize(payload Payload, shape Shape) Record {
	return defaultMapper.Materialize(payload, shape)
}

// Flatten runs Mapper.Flatten on the default mapper.
func Flatten(obj any) Record {
	return defaultMapper.Flatten(obj)
}

// Project runs Mapper.Project on the default mapper.
func Project(source any, shape Shape) Record {
	return defaultMapper.Project(source, shape)
}
