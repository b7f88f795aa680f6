// Package menu exposes the backend /menu resource family with the same
// real/mock/fallback selection as the order gateway.
package menu

import (
	"context"
	"errors"
	"time"

	"github.com/code-differently/cs-25-2-team2/internal/config"
)

var ErrNotFound = errors.New("menu item not found")

// Item is a menu entry as served by the backend.
type Item struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Calories int      `json:"calories"`
	Toppings []string `json:"toppings,omitempty"`
}

type Gateway interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (*Item, error)
	ByCategory(ctx context.Context, category string) ([]Item, error)
	Search(ctx context.Context, query string) ([]Item, error)
	Add(ctx context.Context, item Item) (*Item, error)
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
