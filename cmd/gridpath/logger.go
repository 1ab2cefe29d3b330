package main

import (
	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logOutput is where diagnostics go; stdout carries the results.
var logOutput = []string{"stderr"}

// newLogger builds a console logger with ISO-8601 timestamps. verbose
// lowers the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = logOutput
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Annotate(err, "build logger")
	}
	return logger, nil
}
