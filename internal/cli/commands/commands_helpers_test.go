package commands

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"TodoList/internal/config"
	"TodoList/internal/handlers"
	"TodoList/internal/repo"
	"TodoList/internal/service"

	"go.uber.org/zap"
)

// newTestEnv поднимает настоящий сервер на памяти и конфиг клиента с временным tenant-файлом.
func newTestEnv(t *testing.T) *config.Config {
	t.Helper()
	logger := zap.NewNop().Sugar()
	cfg := &config.Config{ImageMaxSizeMB: config.DefaultImageMaxSizeMB}
	h := handlers.NewHandler(
		service.NewItemService(repo.NewTenantStore(), logger),
		service.NewImageService(cfg.ImageMaxSize()),
		logger,
		cfg,
	)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)

	cfg.ServerURL = ts.URL
	cfg.TenantFile = filepath.Join(t.TempDir(), "TodoList", "tenant_id")
	return cfg
}
