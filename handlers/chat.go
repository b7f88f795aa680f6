package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// ChatProxy forwards the JSON body to the backend chatbot endpoint and
// mirrors its status code and body back verbatim. An unset "simulate" flag
// defaults to true before forwarding; an unreadable body forwards as an empty
// object.
func (h *Handler) ChatProxy(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		body = map[string]any{}
	}
	if _, ok := body["simulate"]; !ok {
		body["simulate"] = true
	}

	payload, err := json.Marshal(body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	url := strings.TrimRight(h.chatBackendURL, "/") + "/api/chatbot"
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.chatClient.Do(req)
	if err != nil {
		slog.Error("chat backend unreachable", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(resp.StatusCode, "application/json", raw)
}
