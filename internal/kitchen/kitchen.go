// Package kitchen exposes the backend /kitchen resource family used by staff
// views: chefs, the preparation queue and prep-time estimates.
package kitchen

import (
	"context"
	"errors"
	"time"

	"github.com/code-differently/cs-25-2-team2/internal/config"
	"github.com/code-differently/cs-25-2-team2/internal/orders"
)

var ErrNotFound = errors.New("kitchen order not found")

// Chef is a kitchen staff member as the backend reports them.
type Chef struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	PhoneNumber         string `json:"phoneNumber"`
	Address             string `json:"address"`
	Role                string `json:"role"`
	IsBusy              bool   `json:"isBusy"`
	AssignedOrdersCount int    `json:"assignedOrdersCount"`
}

// Order is the kitchen's flattened view of an order in the queue.
type Order struct {
	ID           int           `json:"id"`
	CustomerID   int           `json:"customerId"`
	CustomerName string        `json:"customerName"`
	TotalPrice   float64       `json:"totalPrice"`
	Status       orders.Status `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	Items        []string      `json:"items"`
}

// Queue groups the kitchen orders by lifecycle stage.
type Queue struct {
	Pending          []Order `json:"pending"`
	Preparing        []Order `json:"preparing"`
	OutForDelivery   []Order `json:"outForDelivery"`
	ReadyForDelivery []Order `json:"readyForDelivery"`
	Delivered        []Order `json:"delivered"`
	Cancelled        []Order `json:"cancelled"`
}

// StepResult reports whether a queue transition was applied.
type StepResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int    `json:"orderId,omitempty"`
}

// Estimate is the projected wait for a new order.
type Estimate struct {
	EstimatedMinutes int    `json:"estimatedMinutes"`
	EstimatedTime    string `json:"estimatedTime"`
	AvailableChefs   int    `json:"availableChefs"`
	TotalChefs       int    `json:"totalChefs"`
}

type Gateway interface {
	Chefs(ctx context.Context) ([]Chef, error)
	AvailableChefs(ctx context.Context) ([]Chef, error)
	PendingOrders(ctx context.Context) ([]Order, error)
	OrderQueue(ctx context.Context) (*Queue, error)
	StartPreparing(ctx context.Context, orderID int) (*StepResult, error)
	CompleteOrder(ctx context.Context, orderID int) (*StepResult, error)
	EstimateTime(ctx context.Context) (*Estimate, error)
}

func NewGateway(mode config.GatewayMode, baseURL string, timeout time.Duration) Gateway {
	switch mode {
	case config.ModeMock:
		return NewMock()
	case config.ModeRemote:
		return NewClient(baseURL, timeout)
	default:
		return NewFallback(NewClient(baseURL, timeout), NewMock())
	}
}
