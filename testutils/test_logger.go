package testutils

import (
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/geobridge/geobridge/pkg/logging"
)

// NewTestLogger creates a new logger for testing that discards output.
func NewTestLogger() logging.Logger {
	logging.InitLogger("debug", "dev", zapcore.AddSync(io.Discard))
	return logging.GetLogger()
}
