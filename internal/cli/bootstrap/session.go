package bootstrap

import (
	"fmt"

	"TodoList/internal/cli/api"
	fsrepo "TodoList/internal/cli/repo/fs"
	"TodoList/internal/cli/service"
	"TodoList/internal/config"

	"go.uber.org/zap"
)

// Session — всё, что нужно команде для работы с сервером от имени тенанта.
type Session struct {
	TenantID  string
	NewTenant bool
	Client    *api.Client
	Items     service.ItemService
	Tenants   *service.TenantService
	Logger    *zap.SugaredLogger
}

// Logger используется командами клиента. По умолчанию молчит, main подменяет его.
var Logger = zap.NewNop().Sugar()

// OpenSession загружает (или создаёт) tenant id и собирает HTTP-клиент и сервис записей.
func OpenSession(cfg *config.Config) (*Session, error) {
	tenants := service.NewTenantService(fsrepo.NewTenantFSStore(cfg.TenantFile), Logger)
	tenantID, created, err := tenants.Current()
	if err != nil {
		return nil, fmt.Errorf("load tenant id: %w", err)
	}
	if created {
		Logger.Debugw("new tenant id generated", "tenant_id", tenantID, "file", cfg.TenantFile)
	}

	client := api.NewClient(cfg.ServerURL, tenantID)
	return &Session{
		TenantID:  tenantID,
		NewTenant: created,
		Client:    client,
		Items:     service.NewItemServiceRemote(client, Logger, cfg.ImageMaxSize()),
		Tenants:   tenants,
		Logger:    Logger,
	}, nil
}
