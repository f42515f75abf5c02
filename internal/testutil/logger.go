package testutil

import (
	"io"

	"github.com/dtroode/pdfgenie-client/internal/logger"
)

// MakeNoopLogger returns a logger that discards every record.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(0, io.Discard, nil)
}
