package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/code-differently/cs-25-2-team2/handlers"
	"github.com/code-differently/cs-25-2-team2/internal/auth"
	"github.com/code-differently/cs-25-2-team2/internal/cart"
	"github.com/code-differently/cs-25-2-team2/internal/checkout"
	"github.com/code-differently/cs-25-2-team2/internal/config"
	"github.com/code-differently/cs-25-2-team2/internal/consul"
	"github.com/code-differently/cs-25-2-team2/internal/kitchen"
	"github.com/code-differently/cs-25-2-team2/internal/menu"
	"github.com/code-differently/cs-25-2-team2/internal/orders"
	"github.com/code-differently/cs-25-2-team2/internal/storage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("startup failed", slog.String(logkey.ERROR, err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var kv storage.KV
	if cfg.StoragePath != "" {
		fileKV, err := storage.NewFile(cfg.StoragePath)
		if err != nil {
			return err
		}
		kv = fileKV
	} else {
		kv = storage.NewMemory()
	}

	baseURL := cfg.APIBaseURL
	if cfg.ConsulAddr != "" && cfg.ConsulService != "" {
		client, err := consul.NewClient(cfg.ConsulAddr)
		if err != nil {
			return err
		}
		resolved, err := consul.ResolveBaseURL(client, cfg.ConsulService)
		if err != nil {
			slog.Warn("consul discovery failed, using configured base URL",
				slog.String(logkey.ERROR, err.Error()))
		} else {
			baseURL = resolved
		}
	}

	store := cart.NewStore(kv)
	store.Subscribe(func() {
		slog.Debug("cart updated")
	})
	calc := cart.NewCalculator(cfg.TaxRate)

	orderGW := orders.NewGateway(cfg.Mode, baseURL, cfg.HTTPTimeout)
	menuGW := menu.NewGateway(cfg.Mode, baseURL, cfg.HTTPTimeout)
	kitchenGW := kitchen.NewGateway(cfg.Mode, baseURL, cfg.HTTPTimeout)

	keys := auth.NewKeys(cfg.JWTSecret)
	authSvc := auth.NewService(baseURL, cfg.HTTPTimeout, keys, kv)

	orchestrator := checkout.New(store, calc, authSvc, orderGW)

	h := handlers.NewHandler(store, calc, orderGW, menuGW, kitchenGW, authSvc, orchestrator,
		cfg.ChatBackendURL, &http.Client{Timeout: cfg.HTTPTimeout})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handlers.API(cfg.EndpointPrefix, keys, h),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("starting server", slog.String("addr", cfg.ListenAddr),
			slog.String("mode", string(cfg.Mode)))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-shutdown:
		slog.Info("shutdown started", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return err
		}
	}
	return nil
}
