package main

import (
	"TodoList/internal/config"
	"TodoList/internal/handlers"
	"TodoList/internal/middleware"
	"TodoList/internal/repo"
	"TodoList/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// openStore выбирает хранилище: память при пустом DSN, иначе gorm.
// Возвращает функцию закрытия.
func openStore(cfg *config.Config) (repo.ItemRepository, func() error, error) {
	if cfg.DatabaseDSN == "" {
		return repo.NewTenantStore(), func() error { return nil }, nil
	}
	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return repo.NewItemRepository(gormDB), sqlDB.Close, nil
}

func newServer(cfg *config.Config, store repo.ItemRepository, sugar *zap.SugaredLogger) *http.Server {
	itemService := service.NewItemService(store, sugar)
	imageService := service.NewImageService(cfg.ImageMaxSize())
	h := handlers.NewHandler(itemService, imageService, sugar, cfg)

	return &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// run поднимает сервер и останавливает его по отмене ctx.
func run(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			sugar.Errorw("Failed to close store", "error", err)
		}
	}()

	srv := newServer(cfg, store, sugar)

	sugar.Infow("Starting server",
		"addr", srv.Addr,
		"EnableHTTPS", cfg.EnableHTTPS,
		"store", storeKind(cfg),
		"ImageMaxSizeMB", cfg.ImageMaxSizeMB,
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		sugar.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

func storeKind(cfg *config.Config) string {
	if cfg.DatabaseDSN == "" {
		return "memory"
	}
	return "sql"
}
