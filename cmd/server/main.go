package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/platedash/admin-api/internal/adminauth"
	"github.com/platedash/admin-api/internal/authclient"
	"github.com/platedash/admin-api/internal/config"
	"github.com/platedash/admin-api/internal/server"
	"github.com/platedash/admin-api/internal/stats"
	"github.com/platedash/admin-api/internal/storage"
	"github.com/platedash/admin-api/internal/storage/memory"
	"github.com/platedash/admin-api/internal/storage/postgres"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "admin-api",
	})

	loadLocalEnv(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init customer store", "err", err)
	}
	defer closeStore()

	accounts, err := adminauth.LoadAccounts(cfg.AdminsPath)
	if err != nil {
		logger.Fatal("load admin accounts", "err", err, "path", cfg.AdminsPath)
	}
	tokens := adminauth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	snapshot, err := stats.Load(cfg.DashboardPath)
	if err != nil {
		logger.Fatal("load dashboard datasets", "err", err)
	}

	creator := authclient.New(cfg.AuthServiceURL, cfg.AuthTimeout)

	srv := server.New(cfg, server.Deps{
		Store:    store,
		Accounts: accounts,
		Tokens:   tokens,
		Creator:  creator,
		Snapshot: snapshot,
		Logger:   logger,
	})

	go func() {
		logger.Info("admin API listening", "addr", cfg.HTTPAddress(), "admins", accounts.Len())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server", "err", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown", "err", err)
	}
}

// openStore picks Postgres when DATABASE_URL is set, else the in-memory
// directory, optionally seeded from a fixture.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (storage.CustomerStore, func(), error) {
	if cfg.DatabaseURL != "" {
		store, err := postgres.NewCustomerStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("customer directory backed by Postgres")
		return store, store.Close, nil
	}

	store := memory.New()
	if cfg.CustomersSeed != "" {
		if err := store.SeedFromFile(ctx, cfg.CustomersSeed); err != nil {
			return nil, nil, err
		}
		logger.Info("seeded in-memory customer directory", "path", cfg.CustomersSeed)
	} else {
		logger.Info("customer directory held in memory; contents reset on restart")
	}
	return store, func() {}, nil
}

func loadLocalEnv(logger *log.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found; relying on existing environment")
	}
}
