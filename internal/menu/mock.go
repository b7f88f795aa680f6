package menu

import (
	"context"
	"strings"
	"sync"
)

// seedItems is the fixed demo menu.
func seedItems() []Item {
	return []Item{
		{ID: 1, Name: "French Fries", Category: "Sides", Price: 3.99, Calories: 365, Toppings: []string{"Salt", "Ketchup"}},
		{ID: 2, Name: "Loaded Potato Skins", Category: "Appetizers", Price: 5.99, Calories: 450, Toppings: []string{"Cheese", "Bacon", "Sour Cream"}},
		{ID: 3, Name: "Potato Soup", Category: "Soups", Price: 4.99, Calories: 280, Toppings: []string{"Herbs", "Cream"}},
		{ID: 4, Name: "Baked Potato", Category: "Entrees", Price: 4.49, Calories: 220, Toppings: []string{"Butter", "Cheese", "Bacon"}},
		{ID: 5, Name: "Sweet Potato Fries", Category: "Sides", Price: 4.29, Calories: 315, Toppings: []string{"Cinnamon", "Honey"}},
	}
}

// Mock serves the demo menu from memory.
type Mock struct {
	mu    sync.Mutex
	items []Item
}

func NewMock() *Mock {
	return &Mock{items: seedItems()}
}

func (m *Mock) List(ctx context.Context) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Mock) Get(ctx context.Context, id int) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Mock) ByCategory(ctx context.Context, category string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Item
	for _, item := range m.items {
		if strings.EqualFold(item.Category, category) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Search matches the query against name, category and toppings,
// case-insensitively.
func (m *Mock) Search(ctx context.Context, query string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := strings.ToLower(query)
	var out []Item
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) ||
			toppingMatches(item.Toppings, q) {
			out = append(out, item)
		}
	}
	return out, nil
}

func toppingMatches(toppings []string, q string) bool {
	for _, t := range toppings {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func (m *Mock) Add(ctx context.Context, item Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxID := 0
	for _, existing := range m.items {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	item.ID = maxID + 1
	m.items = append(m.items, item)
	return &item, nil
}
