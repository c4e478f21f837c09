package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Logger writes one structured record per inbound request. Response bodies are
// only included when debug is set. Server errors are logged at error level and
// client errors at warn level.
func Logger(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var w *responseBodyWriter
		if debug {
			w = &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
			c.Writer = w
		}

		t0 := time.Now()

		c.Next()

		body := "<redacted>"
		if w != nil {
			body = w.body.String()
		}

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logFields := []any{
			slog.Group("http",
				slog.Group("request",
					"duration_ms", time.Since(t0).Milliseconds(),
					"method", c.Request.Method,
					"route", c.FullPath(),
					"client_ip", c.ClientIP(),
					"user_agent", c.Request.UserAgent(),
					slog.Group("url",
						"path", c.Request.URL.Path,
						"query_params", c.Request.URL.Query(),
					),
				),
				slog.Group("response",
					"status", status,
					"size", c.Writer.Size(),
					"location", c.Writer.Header().Get("Location"),
					"body", body,
				),
			),
		}

		if len(c.Errors) > 0 {
			logFields = append(logFields, "errors", c.Errors.String())
		}

		slog.Log(c.Request.Context(), level, "inbound request", logFields...)
	}
}
