package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines an interface for application logger.
type Logger interface {
	// Info logs a message at InfoLevel.
	Info(msg string, fields ...zapcore.Field)

	// Warn logs a message at WarnLevel.
	Warn(msg string, fields ...zapcore.Field)

	// Error logs a message at ErrorLevel.
	Error(msg string, fields ...zapcore.Field)

	// Debug logs a message at DebugLevel.
	Debug(msg string, fields ...zapcore.Field)
}

var _ Logger = (*loggerImpl)(nil)

type loggerImpl struct {
	zapLogger *zap.Logger
}

// NewLogger creates a new logger.
// If fileName is non-empty, it pipes logs to the given file in addition to stdout.
// logLevel is one of zap's level strings ("debug", "info", "warn", "error").
// An empty logLevel defaults to info.
func NewLogger(isProduction bool, fileName string, logLevel string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	if logLevel != "" {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	config.OutputPaths = []string{"stdout"}
	if fileName != "" {
		config.OutputPaths = append(config.OutputPaths, fileName)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &loggerImpl{
		zapLogger: zapLogger,
	}, nil
}

// Info implements Logger.
func (l *loggerImpl) Info(msg string, fields ...zapcore.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn implements Logger.
func (l *loggerImpl) Warn(msg string, fields ...zapcore.Field) {
	l.zapLogger.Warn(msg, fields...)
}

// Error implements Logger.
func (l *loggerImpl) Error(msg string, fields ...zapcore.Field) {
	l.zapLogger.Error(msg, fields...)
}

// Debug implements Logger.
func (l *loggerImpl) Debug(msg string, fields ...zapcore.Field) {
	l.zapLogger.Debug(msg, fields...)
}
