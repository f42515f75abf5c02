package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/pdfgenie-client/internal/logger"
)

// Logging is an http.RoundTripper that logs outgoing API requests and results.
type Logging struct {
	next   http.RoundTripper
	logger *logger.Logger
}

// NewLogging wraps next; a nil next means http.DefaultTransport.
func NewLogging(next http.RoundTripper, logger *logger.Logger) *Logging {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Logging{next: next, logger: logger}
}

// RoundTrip logs method, path, duration and status of each request.
// Headers are never logged, they carry the bearer token.
func (l *Logging) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	l.logger.Debug("HTTP request started",
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get("X-Request-ID"))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error())
		return nil, err
	}

	l.logger.Info("HTTP request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"duration_ms", duration.Milliseconds(),
		"status", resp.StatusCode)

	return resp, nil
}
