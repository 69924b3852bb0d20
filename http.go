package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// loggerTransport logs every request the API client makes. The session
// token travels in a header, so only method, URL and timing are logged.
type loggerTransport struct {
	transport http.RoundTripper
	logger    *log.Logger
}

func (l *loggerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	l.logger.Debug("http request",
		"method", req.Method,
		"url", req.URL.String(),
	)

	startTime := time.Now()
	resp, err := l.transport.RoundTrip(req)
	if err != nil {
		l.logger.Error("http request failed", "error", err)
		return nil, err
	}

	l.logger.Debug("http response",
		"status", resp.Status,
		"duration", time.Since(startTime),
		"url", req.URL.String(),
		"method", req.Method,
	)

	return resp, nil
}

func newLoggingTransport(transport http.RoundTripper, logger *log.Logger) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &loggerTransport{transport: transport, logger: logger}
}
