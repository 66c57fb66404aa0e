// Package logger provides a zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global zap logger used across the project. It defaults to a
// nop logger so packages can log before Init runs (and under tests).
var Log = zap.NewNop()

// Init configures the global logger in production mode.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
}

// Sync flushes buffered log entries; call it on shutdown.
func Sync() {
	_ = Log.Sync()
}
