package orders

import "time"

// Status is an order lifecycle label. The backend owns the state machine;
// this layer writes whatever it is told and validates nothing beyond
// membership when parsing route parameters.
type Status string

const (
	StatusPending          Status = "Pending"
	StatusPlaced           Status = "Placed"
	StatusPreparing        Status = "Preparing"
	StatusReadyForDelivery Status = "ReadyForDelivery"
	StatusOutForDelivery   Status = "OutForDelivery"
	StatusDelivered        Status = "Delivered"
	StatusCancelled        Status = "Cancelled"
)

// Customer identifies who placed an order, as the backend reports it.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// MenuItemRef is the menu item an order line points back to.
type MenuItemRef struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Line is one item of a backend-tracked order.
type Line struct {
	ID       int         `json:"id"`
	MenuItem MenuItemRef `json:"menuItem"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Subtotal float64     `json:"subtotal"`
}

// Order is a submitted, backend-tracked request. It is read-only from this
// layer's perspective except through UpdateStatus and Cancel.
type Order struct {
	ID                  int       `json:"id"`
	Customer            Customer  `json:"customer"`
	Items               []Line    `json:"items"`
	TotalPrice          float64   `json:"totalPrice"`
	CreatedAt           time.Time `json:"createdAt"`
	Status              Status    `json:"status"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	Payment             *Payment  `json:"payment,omitempty"`
}

// NewOrderLine is one line of an order being submitted.
type NewOrderLine struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// NewOrder is the payload assembled from the cart at checkout time. It is
// never mutated after submission.
type NewOrder struct {
	CustomerID          int            `json:"customer_id"`
	CustomerName        string         `json:"customer_name"`
	Items               []NewOrderLine `json:"items"`
	TotalAmount         float64        `json:"total_amount"`
	Status              Status         `json:"status"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	Payment             *Payment       `json:"payment,omitempty"`
}

// Payment records how a credit-card order was settled. The transaction id is
// synthetic; no processor is involved.
type Payment struct {
	Method        string    `json:"method"`
	CardLastFour  string    `json:"cardLastFour,omitempty"`
	CardType      string    `json:"cardType,omitempty"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	ProcessedAt   time.Time `json:"processedAt"`
	Status        string    `json:"status"`
}

// ParseStatus checks a route/query value against the known status set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusPlaced, StatusPreparing, StatusReadyForDelivery,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return Status(s), true
	}
	return "", false
}
