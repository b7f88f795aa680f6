package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the backend /kitchen resource family over HTTP JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Chefs(ctx context.Context) ([]Chef, error) {
	var out []Chef
	if err := c.call(ctx, http.MethodGet, "/kitchen/chefs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AvailableChefs(ctx context.Context) ([]Chef, error) {
	var out []Chef
	if err := c.call(ctx, http.MethodGet, "/kitchen/chefs/available", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PendingOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.call(ctx, http.MethodGet, "/kitchen/orders/pending", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OrderQueue(ctx context.Context) (*Queue, error) {
	var out Queue
	if err := c.call(ctx, http.MethodGet, "/kitchen/order-queue", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StartPreparing(ctx context.Context, orderID int) (*StepResult, error) {
	var out StepResult
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/kitchen/orders/%d/start", orderID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteOrder(ctx context.Context, orderID int) (*StepResult, error) {
	var out StepResult
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/kitchen/orders/%d/complete", orderID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EstimateTime(ctx context.Context) (*Estimate, error) {
	var out Estimate
	if err := c.call(ctx, http.MethodPost, "/kitchen/estimate-time", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error calling kitchen service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("kitchen service returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding kitchen service response: %w", err)
	}
	return nil
}
