// Package logging builds the service logger: an ectologger front backed by a
// zap sink so log output is structured JSON in production and readable in
// local development.
package logging

import (
	"github.com/Gobusters/ectologger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings configures the logger
type Settings struct {
	AppName string
	Level   string
	Pretty  bool
}

// New creates the service logger. Unknown levels fall back to info.
func New(settings Settings) (ectologger.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if settings.Pretty {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	sink, err := zapConfig.Build(zap.WithCaller(false))
	if err != nil {
		return nil, err
	}
	sink = sink.With(zap.String("app", settings.AppName))

	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		sink.Info("log", zap.Any("entry", msg))
	})

	return logger, nil
}
