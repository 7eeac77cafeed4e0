package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Logger returns the process logger: JSON to stdout, optionally teed into
// the file named by LOG_FILE.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zapcore.InfoLevel),
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		_ = os.MkdirAll(filepath.Dir(logFile), 0o755)
		if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.InfoLevel))
		}
	}
	logger = zap.New(zapcore.NewTee(cores...))
	return logger
}
