package system

import (
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunIDKey is the log field carrying the per-invocation correlation ID.
const RunIDKey = "runID"

// SetupLogger builds the CLI logger writing to w. Without verbose it uses the
// production JSON encoding and only emits warnings and errors; with verbose it
// switches to the development console encoding at debug level.
func SetupLogger(verbose bool, w io.Writer) *zap.Logger {
	cfg := zap.NewProductionConfig()
	level := zapcore.WarnLevel
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		level = zapcore.DebugLevel
	}
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	cfg.EncoderConfig.TimeKey = "ts"

	var encoder zapcore.Encoder
	if cfg.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	// No stacktraces; a failed conversion is not a crash.
	return zap.New(core)
}

// NewRunLogger returns a sugared logger annotated with a fresh correlation ID,
// together with that ID.
func NewRunLogger(base *zap.Logger) (*zap.SugaredLogger, string) {
	if base == nil {
		base = zap.NewNop()
	}
	id := uuid.NewString()
	return base.Sugar().With(RunIDKey, id), id
}
