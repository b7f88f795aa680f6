package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// Logger assigns every request a trace id and logs method, path, status and
// latency when the handler chain finishes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := ctxmanage.SetTraceIdOfRequest(c)
		start := time.Now()

		c.Next()

		slog.Info("request completed",
			slog.String(logkey.TraceID, traceId),
			slog.String(logkey.Method, c.Request.Method),
			slog.String(logkey.URL, c.Request.URL.Path),
			slog.Int(logkey.Status, c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
