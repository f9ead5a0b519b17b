package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log starts as a no-op so packages can log before Init runs (and tests
// don't have to wire a logger at all).
var Log = zap.NewNop()

func Init() {
	Log = zap.Must(newConsole(zapcore.InfoLevel))
}

// SetLevel rebuilds the logger at the given level. Unknown levels are
// reported and the current logger is kept.
func SetLevel(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		Log.Warn("unrecognized log level, keeping current", zap.String("level", level))
		return
	}
	Log = zap.Must(newConsole(lvl))
}

func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}

// newConsole writes human-readable logs to stderr, keeping stdout free
// for the interactive menu.
func newConsole(lvl zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
