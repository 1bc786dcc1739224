package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rrogerthat/shoppinglist/internal/api"
	"github.com/rrogerthat/shoppinglist/internal/config"
	"github.com/rrogerthat/shoppinglist/internal/metrics"
	"github.com/rrogerthat/shoppinglist/internal/server"
	"github.com/rrogerthat/shoppinglist/internal/service"
	"github.com/rrogerthat/shoppinglist/internal/storage"
	"github.com/rrogerthat/shoppinglist/internal/storage/memory"
	"github.com/rrogerthat/shoppinglist/internal/storage/sqlite"
	"github.com/rrogerthat/shoppinglist/pkg/logging"
	"github.com/rrogerthat/shoppinglist/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// Logging isn't configured yet; fall back to the defaults.
		logging.Setup("info", "text")
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.Storage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shoppingList := service.NewShoppingListService(store)
	recipes := service.NewRecipeService(store)
	if cfg.SeedData {
		if err := service.Seed(ctx, shoppingList, recipes); err != nil {
			return err
		}
	}

	static, err := staticFiles(cfg.StaticPath)
	if err != nil {
		return err
	}

	handler := api.NewRouter(api.Deps{
		ShoppingList: shoppingList,
		Recipes:      recipes,
		Metrics:      metrics.New(),
		Static:       static,
	})

	srv := server.New(cfg.Addr(), handler)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	select {
	case err := <-srv.Done():
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage == config.StorageSQLite {
		return sqlite.New(cfg.DBPath)
	}
	return memory.New(), nil
}

// staticFiles returns the landing page files: a directory on disk when
// configured, otherwise the embedded copy.
func staticFiles(path string) (fs.FS, error) {
	if path == "" {
		return web.Static(), nil
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	slog.Info("Serving static files", "path", dir)
	return os.DirFS(dir), nil
}
