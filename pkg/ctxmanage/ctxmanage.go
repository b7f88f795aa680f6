package ctxmanage

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type key string

// TraceIdKey is the gin context key under which the request trace id is stored.
const TraceIdKey key = "trace_id"

// SetTraceIdOfRequest generates a trace id for the request and stores it in the
// gin context so downstream handlers and logs can correlate.
func SetTraceIdOfRequest(c *gin.Context) string {
	traceId := uuid.NewString()
	c.Set(string(TraceIdKey), traceId)
	return traceId
}

// GetTraceIdOfRequest returns the trace id stored on the request, generating
// one if the logger middleware did not run.
func GetTraceIdOfRequest(c *gin.Context) string {
	traceId, ok := c.Value(string(TraceIdKey)).(string)
	if !ok {
		return uuid.NewString()
	}
	return traceId
}
