package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/account"
	"github.com/ramenku/ramenku/internal/admin"
	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/catalog"
	"github.com/ramenku/ramenku/internal/config"
	ramenHttp "github.com/ramenku/ramenku/internal/handler/http"
	"github.com/ramenku/ramenku/internal/order"
	"github.com/ramenku/ramenku/internal/storage"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "ramenku").Logger()

	log.Info().Msg("Ramenku starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("Failed to open storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	menu := catalog.New()
	accounts := account.NewService(store, account.NewBcryptVerifier())
	carts := cart.NewRegistry()
	orders := order.NewLedger(store)
	checkout := order.NewService(orders, cfg.Payment.Delay)
	adminService := admin.NewService(accounts, orders)

	router := ramenHttp.NewRouter(menu, accounts, carts, orders, checkout, adminService)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Str("backend", cfg.Storage.Backend).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}

	log.Info().Msg("Ramenku stopped gracefully.")
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemory(), nil
	case "bolt":
		return storage.NewBolt(cfg.Storage.BoltPath)
	case "postgres":
		return storage.NewPostgres(cfg.Storage.PostgresDSN)
	case "redis":
		return storage.NewRedis(cfg.Storage.RedisAddr)
	default:
		return nil, errors.New("unknown storage backend")
	}
}
