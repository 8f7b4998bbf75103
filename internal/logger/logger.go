// Package logger holds the process-wide sugared logger. It starts as a nop
// so library code can log before Init runs (e.g. in tests).
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the global logger for the given profile. "prod" gets JSON
// output; everything else gets the colored development encoder.
func Init(profile string) {
	var cfg zap.Config

	if profile == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	Log = l.Sugar()
}

// Sync flushes any buffered log entries.
func Sync() {
	if Log == nil {
		return
	}

	_ = Log.Sync()
}
