// SPDX-License-Identifier: MIT

// Package logger builds the zap loggers used by the commands.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a human-readable console logger writing to stderr at level.
func New(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true
	cfg.Sampling = nil

	return cfg.Build()
}

// Must is New that panics on error. Intended for main packages.
func Must(level zap.AtomicLevel) *zap.Logger {
	l, err := New(level)
	if err != nil {
		panic(err)
	}

	return l
}
