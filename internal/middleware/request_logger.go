package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/rental-desk/pkg/logger"
)

// RequestLogger logs every request except the paths in skip. Level follows
// the response status.
func RequestLogger(skip ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		quiet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if _, ok := quiet[path]; ok {
			return
		}

		// Download links carry the token in the query
		if raw != "" && c.Query("token") == "" {
			path = path + "?" + raw
		}

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("user_agent", c.Request.UserAgent()),
		}

		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			attrs = append(attrs, slog.String("error", msg))
		}
		if id := GetUserID(c); id != 0 {
			attrs = append(attrs, slog.Uint64("user_id", uint64(id)))
		}
		if sid := c.Param("session_id"); sid != "" {
			attrs = append(attrs, slog.String("session_id", sid))
		}

		msg := "Incoming request"
		switch {
		case status >= 500:
			logger.Log.Error(msg, attrs...)
		case status >= 400:
			logger.Log.Warn(msg, attrs...)
		default:
			logger.Log.Info(msg, attrs...)
		}
	}
}
