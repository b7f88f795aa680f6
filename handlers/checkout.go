package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/code-differently/cs-25-2-team2/internal/auth"
	"github.com/code-differently/cs-25-2-team2/internal/checkout"
	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// Checkout runs the unified place-order/pay-with-card flow. The request picks
// the method; card details are required only for credit_card.
func (h *Handler) Checkout(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var request struct {
		SpecialInstructions string           `json:"special_instructions"`
		Payment             checkout.Payment `json:"payment"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		slog.Error("invalid request body", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, err := h.checkout.Checkout(c.Request.Context(), request.SpecialInstructions, request.Payment)
	if err != nil {
		var vErr *checkout.ValidationError
		switch {
		case errors.As(err, &vErr):
			slog.Error("payment validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid payment details", "fields": vErr.Fields})
		case errors.Is(err, auth.ErrNotLoggedIn):
			slog.Error("checkout without cached user", slog.String(logkey.TraceID, traceId))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
		default:
			slog.Error("checkout failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to create order"})
		}
		return
	}

	slog.Info("order created", slog.String(logkey.TraceID, traceId),
		slog.Int(logkey.OrderID, order.ID), slog.String(logkey.Status, string(order.Status)))
	c.JSON(http.StatusCreated, order)
}
