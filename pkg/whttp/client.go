package whttp

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// LoggingRoundTripper logs every outbound request and the status it got back.
// Response bodies are only logged when Debug is set, and they are restored so
// the caller can still read them.
type LoggingRoundTripper struct {
	Proxied http.RoundTripper
	Debug   bool
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	t0 := time.Now()

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.ErrorContext(ctx, "outbound request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", time.Since(t0).Milliseconds(),
			"error", err.Error())
		return res, err
	}

	fields := []any{
		"method", req.Method,
		"url", req.URL.String(),
		"status", res.StatusCode,
		"duration_ms", time.Since(t0).Milliseconds(),
	}

	if lrt.Debug && res.Body != nil {
		b := bytes.NewBuffer(make([]byte, 0))
		reader := io.TeeReader(res.Body, b)

		body, _ := io.ReadAll(reader)
		res.Body.Close()
		res.Body = io.NopCloser(b)

		fields = append(fields, "body", string(body))
	}

	slog.InfoContext(ctx, "outbound request", fields...)

	return res, nil
}

func NewLoggingClient(timeout time.Duration, debug bool) *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport, Debug: debug},
		Timeout:   timeout,
	}
}
