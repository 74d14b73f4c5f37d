package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logDir = "./logs"

// NewLogger builds a console logger writing to stdout and ./logs/app.log.
// LOG_LEVEL overrides the default debug level. If the log directory cannot be
// created the file sink is skipped rather than failing startup.
func NewLogger() *zap.Logger {
	level := zapcore.DebugLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zapcore.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	outputs := []string{"stdout"}
	if err := os.MkdirAll(logDir, 0o755); err == nil {
		outputs = append(outputs, logDir+"/app.log")
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
