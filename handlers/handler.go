package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/code-differently/cs-25-2-team2/internal/auth"
	"github.com/code-differently/cs-25-2-team2/internal/cart"
	"github.com/code-differently/cs-25-2-team2/internal/checkout"
	"github.com/code-differently/cs-25-2-team2/internal/kitchen"
	"github.com/code-differently/cs-25-2-team2/internal/menu"
	"github.com/code-differently/cs-25-2-team2/internal/orders"
	"github.com/code-differently/cs-25-2-team2/middleware"
	"github.com/code-differently/cs-25-2-team2/pkg/ctxmanage"
)

type Handler struct {
	store    *cart.Store
	calc     cart.Calculator
	orders   orders.Gateway
	menu     menu.Gateway
	kitchen  kitchen.Gateway
	auth     *auth.Service
	checkout *checkout.Orchestrator
	validate *validator.Validate

	chatBackendURL string
	chatClient     *http.Client
}

func NewHandler(store *cart.Store, calc cart.Calculator, o orders.Gateway, m menu.Gateway,
	k kitchen.Gateway, a *auth.Service, co *checkout.Orchestrator, chatBackendURL string,
	chatClient *http.Client) *Handler {
	return &Handler{
		store:          store,
		calc:           calc,
		orders:         o,
		menu:           m,
		kitchen:        k,
		auth:           a,
		checkout:       co,
		validate:       validator.New(),
		chatBackendURL: chatBackendURL,
		chatClient:     chatClient,
	}
}

// API builds the gin engine with every route group wired.
func API(endpointPrefix string, keys *auth.Keys, h *Handler) *gin.Engine {
	r := gin.New()
	mode := os.Getenv("GIN_MODE")
	if mode == gin.ReleaseMode {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	m := middleware.NewMid(keys)

	r.Use(middleware.Logger(), gin.Recovery())
	r.GET("/ping", healthCheck)

	v1 := r.Group(endpointPrefix)
	{
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/logout", h.Logout)
		v1.GET("/auth/me", m.Authentication(), h.Me)

		v1.GET("/menu", h.ListMenu)
		v1.GET("/menu/search", h.SearchMenu)
		v1.GET("/menu/category/:category", h.MenuByCategory)
		v1.GET("/menu/:id", h.GetMenuItem)
		v1.POST("/menu", m.Authentication(), m.Authorize(h.AddMenuItem, auth.RoleAdmin))

		v1.POST("/chat", h.ChatProxy)
	}

	authed := r.Group(endpointPrefix)
	authed.Use(m.Authentication())
	{
		authed.GET("/cart/items", h.GetCartItems)
		authed.GET("/cart/totals", h.GetCartTotals)
		authed.POST("/cart/items", h.AddToCart)
		authed.PUT("/cart/items/:id", h.UpdateCartItem)
		authed.DELETE("/cart/items/:id", h.RemoveCartItem)
		authed.DELETE("/cart", h.ClearCart)

		authed.POST("/checkout", m.Authorize(h.Checkout, auth.RoleCustomer))

		authed.GET("/orders", h.ListOrders)
		authed.GET("/orders/items", h.ListOrderItems)
		authed.GET("/orders/customer/:id", h.OrdersByCustomer)
		authed.GET("/orders/status/:status", h.OrdersByStatus)
		authed.GET("/orders/:id", h.GetOrder)
		authed.PUT("/orders/:id/status", m.Authorize(h.UpdateOrderStatus, auth.RoleChef, auth.RoleAdmin))
		authed.DELETE("/orders/:id", h.CancelOrder)

		authed.GET("/kitchen/chefs", m.Authorize(h.ListChefs, auth.RoleChef, auth.RoleAdmin))
		authed.GET("/kitchen/chefs/available", m.Authorize(h.AvailableChefs, auth.RoleChef, auth.RoleAdmin))
		authed.GET("/kitchen/orders/pending", m.Authorize(h.PendingKitchenOrders, auth.RoleChef, auth.RoleAdmin))
		authed.GET("/kitchen/order-queue", m.Authorize(h.KitchenOrderQueue, auth.RoleChef, auth.RoleAdmin))
		authed.PUT("/kitchen/orders/:id/start", m.Authorize(h.StartPreparingOrder, auth.RoleChef, auth.RoleAdmin))
		authed.PUT("/kitchen/orders/:id/complete", m.Authorize(h.CompleteKitchenOrder, auth.RoleChef, auth.RoleAdmin))
		authed.POST("/kitchen/estimate-time", m.Authorize(h.EstimatePrepTime, auth.RoleChef, auth.RoleAdmin))
	}

	return r
}

func healthCheck(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	fmt.Println("healthCheck handler ", traceId)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
