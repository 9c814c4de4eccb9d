package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewLogger builds a production zap logger, "console" format switches to the development encoder
func NewLogger(conf LogConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		panic(err)
	}

	zapConf := zap.NewProductionConfig()
	if conf.Format == "console" {
		zapConf = zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapConf.Level = level

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
