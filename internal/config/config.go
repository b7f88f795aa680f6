package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// GatewayMode selects how the order/menu/kitchen gateways reach their data.
type GatewayMode string

const (
	// ModeRemote talks to the backend API and surfaces its errors.
	ModeRemote GatewayMode = "remote"
	// ModeMock serves the fixed in-memory dataset and never touches the network.
	ModeMock GatewayMode = "mock"
	// ModeFallback talks to the backend API and silently degrades to the mock
	// dataset on any failure. This is the default.
	ModeFallback GatewayMode = "fallback"
)

type Conf struct {
	ListenAddr     string
	EndpointPrefix string

	// APIBaseURL is the backend REST API, e.g. http://localhost:8080/api.
	APIBaseURL string
	// ChatBackendURL hosts the chatbot endpoint the chat proxy forwards to.
	ChatBackendURL string
	HTTPTimeout    time.Duration
	Mode           GatewayMode

	// TaxRate is applied to the cart subtotal, e.g. 0.08 for 8%.
	TaxRate float64

	// StoragePath is the JSON file backing cart/session state. Empty means
	// in-memory only.
	StoragePath string

	JWTSecret string

	// ConsulAddr/ConsulService, when set, resolve the backend address through
	// Consul instead of APIBaseURL.
	ConsulAddr    string
	ConsulService string
}

// Load reads configuration from the environment, with .env support for local
// development. Missing optional values fall back to built-in defaults.
func Load() (Conf, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, reading environment directly")
	}

	c := Conf{
		ListenAddr:     getEnv("LISTEN_ADDR", ":3000"),
		EndpointPrefix: getEnv("SERVICE_ENDPOINT_PREFIX", "/api"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		ChatBackendURL: getEnv("CHAT_BACKEND_URL", "http://localhost:8080"),
		HTTPTimeout:    10 * time.Second,
		Mode:           GatewayMode(getEnv("GATEWAY_MODE", string(ModeFallback))),
		TaxRate:        0.08,
		StoragePath:    os.Getenv("STORAGE_PATH"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-only-secret"),
		ConsulAddr:     os.Getenv("CONSUL_ADDR"),
		ConsulService:  os.Getenv("CONSUL_SERVICE"),
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return Conf{}, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %q: %w", v, err)
		}
		c.HTTPTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return Conf{}, fmt.Errorf("invalid TAX_RATE %q", v)
		}
		c.TaxRate = rate
	}

	switch c.Mode {
	case ModeRemote, ModeMock, ModeFallback:
	default:
		return Conf{}, fmt.Errorf("invalid GATEWAY_MODE %q", c.Mode)
	}
	return c, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
