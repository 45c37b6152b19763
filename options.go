package hypergo

import (
	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/persistence"
)

type options struct {
	codec       codec.Codec
	compression persistence.Compression
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures Hypergo constructor/load behavior.
//
// Options exist to avoid exploding the API surface
// (e.g. codec-specific constructor variants).
type Option func(*options)

func applyOptions(optFns []Option) options {
	opts := options{
		codec:       codec.Default,
		compression: persistence.CompressionZstd,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return opts
}

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used. Existing snapshot files are
// self-describing and ignore this setting on load.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}

		o.codec = c
	}
}

// WithCompression configures the compression of new snapshot payloads.
// Existing snapshot files are self-describing and ignore this setting on
// load.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}

		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}

		o.metrics = mc
	}
}
