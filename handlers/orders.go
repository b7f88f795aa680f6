package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/code-differently/cs-25-2-team2/internal/orders"
	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

func (h *Handler) ListOrders(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.orders.List(c.Request.Context())
	if err != nil {
		slog.Error("error listing orders", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListOrderItems(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.orders.ListItems(c.Request.Context())
	if err != nil {
		slog.Error("error listing order items", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch order items"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetOrder(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}
	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		slog.Error("error fetching order", slog.String(logkey.TraceID, traceId),
			slog.Int(logkey.OrderID, id), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus accepts either a bare text/plain status, as the backend
// controller does, or a JSON {"status": ...} body.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	var statusValue string
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var request struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		statusValue = request.Status
	} else {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		statusValue = strings.TrimSpace(string(raw))
	}

	status, ok := orders.ParseStatus(statusValue)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Unknown order status"})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		slog.Error("error updating order status", slog.String(logkey.TraceID, traceId),
			slog.Int(logkey.OrderID, id), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}
	if err := h.orders.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		slog.Error("error cancelling order", slog.String(logkey.TraceID, traceId),
			slog.Int(logkey.OrderID, id), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to cancel order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order #" + strconv.Itoa(id) + " cancelled successfully"})
}

func (h *Handler) OrdersByCustomer(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid customer id"})
		return
	}
	out, err := h.orders.ByCustomer(c.Request.Context(), id)
	if err != nil {
		slog.Error("error listing customer orders", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) OrdersByStatus(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	status, ok := orders.ParseStatus(c.Param("status"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Unknown order status"})
		return
	}
	out, err := h.orders.ByStatus(c.Request.Context(), status)
	if err != nil {
		slog.Error("error listing orders by status", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, out)
}
