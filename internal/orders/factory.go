package orders

import (
	"time"

	"github.com/code-differently/cs-25-2-team2/internal/config"
)

// NewGateway wires the order data source for the configured mode. The mock
// fallback is a deliberate, selectable mode rather than something callers
// discover by catching errors.
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
