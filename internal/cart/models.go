package cart

// Topping is a customization applied to a cart line, kept in the order the
// customer picked them.
type Topping struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Item is one distinct menu item held in a customer's in-progress order.
// Quantity is always >= 1 while stored; a line whose quantity drops to zero
// is removed rather than kept at zero.
type Item struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Toppings []Topping `json:"toppings,omitempty"`
}

// Totals are derived from the current cart contents on every read; they are
// never persisted.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}
