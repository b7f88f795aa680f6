package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the backend /orders resource family over HTTP JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client against baseURL (e.g. http://localhost:8080/api).
// The timeout applies to every call; on expiry the caller sees an ordinary
// network error.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) List(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.getJSON(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int) (*Order, error) {
	var out Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListItems(ctx context.Context) ([]Line, error) {
	var out []Line
	if err := c.getJSON(ctx, "/orders/items", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, order NewOrder) (*Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out Order
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus sends the bare status string as text/plain, matching the
// backend controller's signature.
func (c *Client) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	url := fmt.Sprintf("%s/orders/%d/status", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, strings.NewReader(string(status)))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	var out Order
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Cancel(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/orders/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) ByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	var out []Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/customer/%d", customerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ByStatus(ctx context.Context, status Status) ([]Order, error) {
	var out []Order
	if err := c.getJSON(ctx, "/orders/status/"+string(status), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error calling order service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order service returned %s", resp.Status)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding order service response: %w", err)
	}
	return nil
}
