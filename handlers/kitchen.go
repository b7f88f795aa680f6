package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

func (h *Handler) ListChefs(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.kitchen.Chefs(c.Request.Context())
	if err != nil {
		slog.Error("error listing chefs", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch chefs"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) AvailableChefs(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.kitchen.AvailableChefs(c.Request.Context())
	if err != nil {
		slog.Error("error listing available chefs", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch chefs"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) PendingKitchenOrders(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.kitchen.PendingOrders(c.Request.Context())
	if err != nil {
		slog.Error("error listing kitchen orders", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch kitchen orders"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) KitchenOrderQueue(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.kitchen.OrderQueue(c.Request.Context())
	if err != nil {
		slog.Error("error fetching order queue", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch order queue"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) StartPreparingOrder(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}
	result, err := h.kitchen.StartPreparing(c.Request.Context(), id)
	if err != nil {
		slog.Error("error starting order preparation", slog.String(logkey.TraceID, traceId),
			slog.Int(logkey.OrderID, id), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to start preparation"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CompleteKitchenOrder(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}
	result, err := h.kitchen.CompleteOrder(c.Request.Context(), id)
	if err != nil {
		slog.Error("error completing kitchen order", slog.String(logkey.TraceID, traceId),
			slog.Int(logkey.OrderID, id), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to complete order"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) EstimatePrepTime(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.kitchen.EstimateTime(c.Request.Context())
	if err != nil {
		slog.Error("error estimating prep time", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to estimate preparation time"})
		return
	}
	c.JSON(http.StatusOK, out)
}
