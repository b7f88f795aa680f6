package orders

import (
	"context"
	"log/slog"

	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// Fallback wraps a primary gateway and degrades to a secondary one whenever
// the primary fails, logging a warning. With a Client primary and a Mock
// secondary, reads never
// surface a network error as long as mock data can answer them, and a create
// against an unreachable backend still "succeeds" into the mock dataset.
// Callers that must not fabricate success run against a Client directly
// (GATEWAY_MODE=remote).
type Fallback struct {
	primary   Gateway
	secondary Gateway
}

func NewFallback(primary, secondary Gateway) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

func (f *Fallback) List(ctx context.Context) ([]Order, error) {
	out, err := f.primary.List(ctx)
	if err != nil {
		f.warn("List", err)
		return f.secondary.List(ctx)
	}
	return out, nil
}

func (f *Fallback) Get(ctx context.Context, id int) (*Order, error) {
	out, err := f.primary.Get(ctx, id)
	if err != nil {
		f.warn("Get", err)
		return f.secondary.Get(ctx, id)
	}
	return out, nil
}

func (f *Fallback) ListItems(ctx context.Context) ([]Line, error) {
	out, err := f.primary.ListItems(ctx)
	if err != nil {
		f.warn("ListItems", err)
		return f.secondary.ListItems(ctx)
	}
	return out, nil
}

func (f *Fallback) Create(ctx context.Context, order NewOrder) (*Order, error) {
	out, err := f.primary.Create(ctx, order)
	if err != nil {
		f.warn("Create", err)
		return f.secondary.Create(ctx, order)
	}
	return out, nil
}

func (f *Fallback) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	out, err := f.primary.UpdateStatus(ctx, id, status)
	if err != nil {
		f.warn("UpdateStatus", err)
		return f.secondary.UpdateStatus(ctx, id, status)
	}
	return out, nil
}

func (f *Fallback) Cancel(ctx context.Context, id int) error {
	if err := f.primary.Cancel(ctx, id); err != nil {
		f.warn("Cancel", err)
		return f.secondary.Cancel(ctx, id)
	}
	return nil
}

func (f *Fallback) ByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	out, err := f.primary.ByCustomer(ctx, customerID)
	if err != nil {
		f.warn("ByCustomer", err)
		return f.secondary.ByCustomer(ctx, customerID)
	}
	return out, nil
}

func (f *Fallback) ByStatus(ctx context.Context, status Status) ([]Order, error) {
	out, err := f.primary.ByStatus(ctx, status)
	if err != nil {
		f.warn("ByStatus", err)
		return f.secondary.ByStatus(ctx, status)
	}
	return out, nil
}

func (f *Fallback) warn(op string, err error) {
	slog.Warn("order service unreachable, using mock data",
		slog.String("op", op), slog.String(logkey.ERROR, err.Error()))
}
