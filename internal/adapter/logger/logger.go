package logger

import (
	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "techxchange"

// NewLogger builds a colored console logger in DEV mode and a JSON logger otherwise.
// It returns nil when the level cannot be parsed.
func NewLogger(conf *config.App) *zap.Logger {
	level := conf.LogLevel
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		zap.L().Error("error parsing log level", zap.Error(err))
		return nil
	}

	var cfg zap.Config
	switch conf.Mode {
	case config.AppModeDevelop:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.InitialFields = map[string]interface{}{"service": serviceName}
	}
	cfg.Level = lvl

	return zap.Must(cfg.Build())
}
