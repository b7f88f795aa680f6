package menu

import (
	"context"
	"log/slog"

	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// Fallback degrades menu reads and writes to the mock dataset when the
// backend fails, logging a warning each time.
type Fallback struct {
	primary   Gateway
	secondary Gateway
}

func NewFallback(primary, secondary Gateway) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

func (f *Fallback) List(ctx context.Context) ([]Item, error) {
	out, err := f.primary.List(ctx)
	if err != nil {
		f.warn("List", err)
		return f.secondary.List(ctx)
	}
	return out, nil
}

func (f *Fallback) Get(ctx context.Context, id int) (*Item, error) {
	out, err := f.primary.Get(ctx, id)
	if err != nil {
		f.warn("Get", err)
		return f.secondary.Get(ctx, id)
	}
	return out, nil
}

func (f *Fallback) ByCategory(ctx context.Context, category string) ([]Item, error) {
	out, err := f.primary.ByCategory(ctx, category)
	if err != nil {
		f.warn("ByCategory", err)
		return f.secondary.ByCategory(ctx, category)
	}
	return out, nil
}

func (f *Fallback) Search(ctx context.Context, query string) ([]Item, error) {
	out, err := f.primary.Search(ctx, query)
	if err != nil {
		f.warn("Search", err)
		return f.secondary.Search(ctx, query)
	}
	return out, nil
}

func (f *Fallback) Add(ctx context.Context, item Item) (*Item, error) {
	out, err := f.primary.Add(ctx, item)
	if err != nil {
		f.warn("Add", err)
		return f.secondary.Add(ctx, item)
	}
	return out, nil
}

func (f *Fallback) warn(op string, err error) {
	slog.Warn("menu service unreachable, using mock data",
		slog.String("op", op), slog.String(logkey.ERROR, err.Error()))
}
