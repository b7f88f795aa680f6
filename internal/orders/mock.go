package orders

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// seedOrders is the fixed demo dataset served when the backend cannot be
// reached.
func seedOrders() []Order {
	johnDoe := Customer{ID: 1, Name: "John Doe", Address: "123 Main St", Phone: "555-1234"}
	return []Order{
		{
			ID:       101,
			Customer: johnDoe,
			Items: []Line{
				{ID: 1, MenuItem: MenuItemRef{ID: 1, Name: "French Fries", Price: 3.99}, Name: "French Fries", Quantity: 2, Subtotal: 7.98},
				{ID: 2, MenuItem: MenuItemRef{ID: 2, Name: "Loaded Potato Skins", Price: 5.99}, Name: "Loaded Potato Skins", Quantity: 1, Subtotal: 5.99},
			},
			TotalPrice: 13.97,
			CreatedAt:  time.Date(2025, 10, 16, 10, 30, 0, 0, time.UTC),
			Status:     StatusDelivered,
		},
		{
			ID:       102,
			Customer: johnDoe,
			Items: []Line{
				{ID: 3, MenuItem: MenuItemRef{ID: 3, Name: "Potato Soup", Price: 4.99}, Name: "Potato Soup", Quantity: 1, Subtotal: 4.99},
			},
			TotalPrice: 4.99,
			CreatedAt:  time.Date(2025, 10, 16, 12, 45, 0, 0, time.UTC),
			Status:     StatusPreparing,
		},
		{
			ID:       103,
			Customer: johnDoe,
			Items: []Line{
				{ID: 4, MenuItem: MenuItemRef{ID: 4, Name: "Baked Potato", Price: 4.49}, Name: "Baked Potato", Quantity: 2, Subtotal: 8.98},
				{ID: 5, MenuItem: MenuItemRef{ID: 5, Name: "Sweet Potato Fries", Price: 4.29}, Name: "Sweet Potato Fries", Quantity: 1, Subtotal: 4.29},
			},
			TotalPrice: 13.27,
			CreatedAt:  time.Date(2025, 10, 15, 18, 20, 0, 0, time.UTC),
			Status:     StatusPlaced,
		},
	}
}

// Mock serves orders from memory. It backs the fallback gateway and the
// mock-only configuration mode; created orders live until the process exits.
type Mock struct {
	mu     sync.Mutex
	orders []Order
	now    func() time.Time
	newID  func() int
}

func NewMock() *Mock {
	return &Mock{
		orders: seedOrders(),
		now:    time.Now,
		newID:  func() int { return 1000 + rand.IntN(9000) },
	}
}

func (m *Mock) List(ctx context.Context) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *Mock) Get(ctx context.Context, id int) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Mock) ListItems(ctx context.Context) ([]Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []Line
	for _, order := range m.orders {
		items = append(items, order.Items...)
	}
	return items, nil
}

// Create simulates the backend: it assigns a random four-digit id, stamps the
// creation time and stores the order for later reads.
func (m *Mock) Create(ctx context.Context, order NewOrder) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := order.Status
	if status == "" {
		status = StatusPlaced
	}
	lines := make([]Line, 0, len(order.Items))
	for i, item := range order.Items {
		lines = append(lines, Line{
			ID:       i + 1,
			MenuItem: MenuItemRef{ID: item.MenuItemID, Name: item.Name, Price: item.Price},
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		})
	}
	created := Order{
		ID:                  m.newID(),
		Customer:            Customer{ID: order.CustomerID, Name: order.CustomerName},
		Items:               lines,
		TotalPrice:          order.TotalAmount,
		CreatedAt:           m.now().UTC(),
		Status:              status,
		SpecialInstructions: order.SpecialInstructions,
		Payment:             order.Payment,
	}
	m.orders = append(m.orders, created)
	return &created, nil
}

func (m *Mock) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Mock) Cancel(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Mock) ByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, order := range m.orders {
		if order.Customer.ID == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *Mock) ByStatus(ctx context.Context, status Status) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, order := range m.orders {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}
