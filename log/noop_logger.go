package log

import "go.uber.org/zap/zapcore"

var _ Logger = (*NoOpLogger)(nil)

// NoOpLogger is a logger that does nothing. Useful in tests.
type NoOpLogger struct{}

// Info implements Logger.
func (*NoOpLogger) Info(msg string, fields ...zapcore.Field) {}

// Warn implements Logger.
func (*NoOpLogger) Warn(msg string, fields ...zapcore.Field) {}

// Error implements Logger.
func (*NoOpLogger) Error(msg string, fields ...zapcore.Field) {}

// Debug implements Logger.
func (*NoOpLogger) Debug(msg string, fields ...zapcore.Field) {}
