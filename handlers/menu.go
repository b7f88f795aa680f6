package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/code-differently/cs-25-2-team2/internal/menu"
	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

func (h *Handler) ListMenu(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.menu.List(c.Request.Context())
	if err != nil {
		slog.Error("error listing menu", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid menu item id"})
		return
	}
	item, err := h.menu.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
			return
		}
		slog.Error("error fetching menu item", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) MenuByCategory(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	out, err := h.menu.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		slog.Error("error listing menu category", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) SearchMenu(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	query := c.Query("q")
	if query == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Query parameter q is required"})
		return
	}
	out, err := h.menu.Search(c.Request.Context(), query)
	if err != nil {
		slog.Error("error searching menu", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to search menu"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) AddMenuItem(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	var item menu.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		slog.Error("invalid request body", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if item.Name == "" || item.Price <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Name and price must be valid"})
		return
	}
	created, err := h.menu.Add(c.Request.Context(), item)
	if err != nil {
		slog.Error("error adding menu item", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
