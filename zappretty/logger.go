package zappretty

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures NewLogger.
type Options struct {
	Debug bool

	// Encoding is "cli" (the default) or any encoding zap knows, like "json".
	Encoding string

	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// NewLogger builds a logger writing Options.Encoding to Options.OutputPaths.
func NewLogger(opts Options) (*zap.Logger, error) {
	if err := Register(); err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()

	if opts.Debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.Encoding = EncoderName
	if opts.Encoding != "" {
		config.Encoding = opts.Encoding
	}

	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	config.DisableStacktrace = true
	config.Sampling = nil

	return config.Build()
}
