package kitchen

import (
	"context"
	"log/slog"

	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// Fallback degrades kitchen calls to the mock dataset when the backend fails.
type Fallback struct {
	primary   Gateway
	secondary Gateway
}

func NewFallback(primary, secondary Gateway) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

func (f *Fallback) Chefs(ctx context.Context) ([]Chef, error) {
	out, err := f.primary.Chefs(ctx)
	if err != nil {
		f.warn("Chefs", err)
		return f.secondary.Chefs(ctx)
	}
	return out, nil
}

func (f *Fallback) AvailableChefs(ctx context.Context) ([]Chef, error) {
	out, err := f.primary.AvailableChefs(ctx)
	if err != nil {
		f.warn("AvailableChefs", err)
		return f.secondary.AvailableChefs(ctx)
	}
	return out, nil
}

func (f *Fallback) PendingOrders(ctx context.Context) ([]Order, error) {
	out, err := f.primary.PendingOrders(ctx)
	if err != nil {
		f.warn("PendingOrders", err)
		return f.secondary.PendingOrders(ctx)
	}
	return out, nil
}

func (f *Fallback) OrderQueue(ctx context.Context) (*Queue, error) {
	out, err := f.primary.OrderQueue(ctx)
	if err != nil {
		f.warn("OrderQueue", err)
		return f.secondary.OrderQueue(ctx)
	}
	return out, nil
}

func (f *Fallback) StartPreparing(ctx context.Context, orderID int) (*StepResult, error) {
	out, err := f.primary.StartPreparing(ctx, orderID)
	if err != nil {
		f.warn("StartPreparing", err)
		return f.secondary.StartPreparing(ctx, orderID)
	}
	return out, nil
}

func (f *Fallback) CompleteOrder(ctx context.Context, orderID int) (*StepResult, error) {
	out, err := f.primary.CompleteOrder(ctx, orderID)
	if err != nil {
		f.warn("CompleteOrder", err)
		return f.secondary.CompleteOrder(ctx, orderID)
	}
	return out, nil
}

func (f *Fallback) EstimateTime(ctx context.Context) (*Estimate, error) {
	out, err := f.primary.EstimateTime(ctx)
	if err != nil {
		f.warn("EstimateTime", err)
		return f.secondary.EstimateTime(ctx)
	}
	return out, nil
}

func (f *Fallback) warn(op string, err error) {
	slog.Warn("kitchen service unreachable, using mock data",
		slog.String("op", op), slog.String(logkey.ERROR, err.Error()))
}
