package kitchen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/code-differently/cs-25-2-team2/internal/orders"
)

func seedChefs() []Chef {
	return []Chef{
		{ID: "CHEF001", Name: "Gordon Ramsay", PhoneNumber: "987-654-3210", Address: "456 Kitchen Ave", Role: "CHEF", IsBusy: false, AssignedOrdersCount: 0},
		{ID: "CHEF002", Name: "Julia Child", PhoneNumber: "555-987-6543", Address: "789 Culinary St", Role: "CHEF", IsBusy: true, AssignedOrdersCount: 2},
		{ID: "CHEF003", Name: "Anthony Bourdain", PhoneNumber: "444-555-6666", Address: "321 Food Blvd", Role: "CHEF", IsBusy: false, AssignedOrdersCount: 1},
	}
}

func seedKitchenOrders() []Order {
	return []Order{
		{ID: 101, CustomerID: 1, CustomerName: "John Doe", TotalPrice: 13.97, Status: orders.StatusPreparing,
			CreatedAt: time.Date(2025, 10, 22, 10, 30, 0, 0, time.UTC),
			Items:     []string{"Texas Loaded Baked Potato x2", "Potato Salad x1"}},
		{ID: 102, CustomerID: 1, CustomerName: "John Doe", TotalPrice: 4.99, Status: orders.StatusReadyForDelivery,
			CreatedAt: time.Date(2025, 10, 22, 12, 45, 0, 0, time.UTC),
			Items:     []string{"Loaded Baked Potato Soup x1"}},
		{ID: 103, CustomerID: 2, CustomerName: "Jane Smith", TotalPrice: 14.99, Status: orders.StatusDelivered,
			CreatedAt: time.Date(2025, 10, 22, 11, 20, 0, 0, time.UTC),
			Items:     []string{"Aloo Tikki Chaat x1"}},
	}
}

// minutesPerOrder drives the mock prep-time estimate.
const minutesPerOrder = 10

// Mock serves kitchen data from memory. Queue stepping follows
// Pending -> Preparing -> OutForDelivery -> ReadyForDelivery.
type Mock struct {
	mu     sync.Mutex
	chefs  []Chef
	orders []Order
}

func NewMock() *Mock {
	return &Mock{chefs: seedChefs(), orders: seedKitchenOrders()}
}

func (m *Mock) Chefs(ctx context.Context) ([]Chef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Chef, len(m.chefs))
	copy(out, m.chefs)
	return out, nil
}

func (m *Mock) AvailableChefs(ctx context.Context) ([]Chef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Chef
	for _, chef := range m.chefs {
		if !chef.IsBusy {
			out = append(out, chef)
		}
	}
	return out, nil
}

func (m *Mock) PendingOrders(ctx context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *Mock) OrderQueue(ctx context.Context) (*Queue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := &Queue{}
	for _, order := range m.orders {
		switch order.Status {
		case orders.StatusPending:
			q.Pending = append(q.Pending, order)
		case orders.StatusPreparing:
			q.Preparing = append(q.Preparing, order)
		case orders.StatusOutForDelivery:
			q.OutForDelivery = append(q.OutForDelivery, order)
		case orders.StatusReadyForDelivery:
			q.ReadyForDelivery = append(q.ReadyForDelivery, order)
		case orders.StatusDelivered:
			q.Delivered = append(q.Delivered, order)
		case orders.StatusCancelled:
			q.Cancelled = append(q.Cancelled, order)
		}
	}
	return q, nil
}

func (m *Mock) StartPreparing(ctx context.Context, orderID int) (*StepResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == orderID && m.orders[i].Status == orders.StatusPending {
			m.orders[i].Status = orders.StatusPreparing
			return &StepResult{Success: true, Message: "Order preparation started successfully", OrderID: orderID}, nil
		}
	}
	return &StepResult{Success: false, Message: "Failed to start order preparation - no available chef or order not found"}, nil
}

func (m *Mock) CompleteOrder(ctx context.Context, orderID int) (*StepResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID != orderID {
			continue
		}
		switch m.orders[i].Status {
		case orders.StatusPreparing:
			m.orders[i].Status = orders.StatusOutForDelivery
			return &StepResult{Success: true, Message: "Order marked as out for delivery", OrderID: orderID}, nil
		case orders.StatusOutForDelivery:
			m.orders[i].Status = orders.StatusReadyForDelivery
			return &StepResult{Success: true, Message: "Order marked as ready for delivery", OrderID: orderID}, nil
		}
	}
	return &StepResult{Success: false, Message: "Failed to complete order - order not found or already completed"}, nil
}

func (m *Mock) EstimateTime(ctx context.Context) (*Estimate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	available := 0
	for _, chef := range m.chefs {
		if !chef.IsBusy {
			available++
		}
	}
	est := &Estimate{AvailableChefs: available, TotalChefs: len(m.chefs)}
	if available == 0 {
		est.EstimatedMinutes = -1
		est.EstimatedTime = "No chefs available"
		return est, nil
	}
	total := len(m.orders)
	est.EstimatedMinutes = (total*minutesPerOrder + available - 1) / available
	est.EstimatedTime = fmt.Sprintf("%d minutes", est.EstimatedMinutes)
	return est, nil
}
