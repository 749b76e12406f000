package log

import (
	"go.uber.org/zap"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set replaces the no-op default with a console logger writing to stderr.
func Set(debug bool) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	cfg := zap.Config{
		Level:            level,
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	defaultLogger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

func Flush() {
	_ = defaultLogger.Sync()
}
