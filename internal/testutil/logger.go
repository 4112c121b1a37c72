// Package testutil holds fixtures and helpers shared by MotorScope tests.
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger returns a debug-level logger that writes through tb, so output only
// shows up for failing or verbose tests.
func Logger(tb testing.TB) *zap.Logger {
	return zaptest.NewLogger(tb, zaptest.Level(zap.DebugLevel))
}
