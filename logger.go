package fccee

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger that writes errors to stderr and
// everything else to stdout.
func NewLogger(verbose bool) *zap.Logger {
	lowest := zapcore.InfoLevel
	if verbose {
		lowest = zapcore.DebugLevel
	}
	isErrorLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	isInfoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= lowest && lvl < zapcore.ErrorLevel
	})

	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encoder := zapcore.NewConsoleEncoder(config)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), isErrorLevel),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), isInfoLevel),
	)
	return zap.New(core)
}
