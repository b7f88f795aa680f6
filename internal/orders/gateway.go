package orders

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an order id is unknown to the data source.
var ErrNotFound = errors.New("order not found")

// Gateway is the order data source consumed by handlers and checkout.
//
// Reads may silently degrade to mock data depending on which implementation
// is wired (see NewGateway); writes that fail outright must surface the error
// so checkout never clears a cart against a fabricated success.
type Gateway interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int) (*Order, error)
	ListItems(ctx context.Context) ([]Line, error)
	Create(ctx context.Context, order NewOrder) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
	Cancel(ctx context.Context, id int) error
	ByCustomer(ctx context.Context, customerID int) ([]Order, error)
	ByStatus(ctx context.Context, status Status) ([]Order, error)
}
