package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

// New builds the process logger. Development environments get the console
// encoder, everything else the JSON production config.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a standard context
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request scoped logging for services
type Logger struct {
	base *zap.Logger
}

// FromContext tags base with the request id carried by ctx.
func FromContext(ctx context.Context, base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{base: base.With(zap.String("request_id", requestID))}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error, fields ...zap.Field) {
	l.base.Error(operation, append(fields, zap.String("operation", operation), zap.Error(err))...)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation, message string, fields ...zap.Field) {
	l.base.Info(message, append(fields, zap.String("operation", operation))...)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation, message string, fields ...zap.Field) {
	l.base.Warn(message, append(fields, zap.String("operation", operation))...)
}

// Zap exposes the tagged zap logger.
func (l *Logger) Zap() *zap.Logger { return l.base }
