package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fastprodman/pockettrader/internal/api"
	"github.com/fastprodman/pockettrader/internal/infra/logging"
	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/services/directory"
	"github.com/fastprodman/pockettrader/internal/services/ledger"
	"github.com/fastprodman/pockettrader/internal/services/matchfinder"
	"github.com/fastprodman/pockettrader/internal/services/registry"
	"github.com/fastprodman/pockettrader/internal/services/trading"
	"github.com/fastprodman/pockettrader/pkg/envconf"
	"github.com/fastprodman/pockettrader/pkg/shutdownqueue"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	shutdown := shutdownqueue.New(slog.Default())

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdown.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdown.Add("db", func(context.Context) error { return db.Close() })

	dir, err := directory.New(db, cfg.UserCacheSize)
	if err != nil {
		return fmt.Errorf("init directory: %w", err)
	}

	svc := api.Services{
		Directory: dir,
		Ledger:    ledger.New(db),
		Registry:  registry.New(db),
		Matches:   matchfinder.New(db, cfg.Match.SameRarity),
		Trading:   trading.New(db),
		DB:        db,
	}

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, api.NewRouter(svc, cfg.RateLimit))

	shutdown.Add("http", srv.Shutdown)

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "port", cfg.Port, "same_rarity_matches", cfg.Match.SameRarity)

	select {
	case <-ctx.Done():
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
