package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. Development loggers write colored console output,
// production loggers write JSON.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var zapConfig zap.Config
	if development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	return zapConfig.Build()
}

// Init builds a logger and installs it as the zap global. Invalid levels fall
// back to info. The returned function restores the previous globals.
func Init(level string, development bool) (*zap.Logger, func()) {
	logger, err := New(level, development)
	if err != nil {
		logger, _ = New("info", development)
		logger.Warn("invalid log level, falling back to info", zap.String("level", level), zap.Error(err))
	}
	return logger, zap.ReplaceGlobals(logger)
}
