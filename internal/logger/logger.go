package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New creates new Logger instance with the specified level writing to stderr.
// When filePath is not empty records are also written to a rotating log file.
func New(level int, filePath string) *Logger {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)

	if filePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		w = io.MultiWriter(os.Stderr, rotator)
		closer = rotator
	}

	return NewWithWriter(level, w, closer)
}

// NewWithWriter creates new Logger instance writing text records to w.
func NewWithWriter(level int, w io.Writer, closer io.Closer) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
		closer: closer,
	}
}

// Close releases the rotating log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	_ = l.Close()
	os.Exit(1)
}
