package handlers_test

import (
	"TodoList/internal/config"
	"TodoList/internal/handlers"
	"TodoList/internal/middleware"
	"TodoList/internal/model"
	"TodoList/internal/repo"
	"TodoList/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Мок хранилища для сценариев с ошибками
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) ListItems(ctx context.Context, tenantID string) ([]model.Item, error) {
	args := m.Called(ctx, tenantID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) GetItem(ctx context.Context, tenantID, itemID string) (*model.Item, error) {
	args := m.Called(ctx, tenantID, itemID)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) AddItem(ctx context.Context, tenantID string, item model.Item) error {
	return m.Called(ctx, tenantID, item).Error(0)
}
func (m *hMockItemRepo) UpdateItem(ctx context.Context, tenantID, itemID string, upd model.ItemUpdate) (*model.Item, error) {
	args := m.Called(ctx, tenantID, itemID, upd)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) DeleteItem(ctx context.Context, tenantID, itemID string) (bool, error) {
	args := m.Called(ctx, tenantID, itemID)
	return args.Bool(0), args.Error(1)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{BaseURL: "localhost:8080", ImageMaxSizeMB: config.DefaultImageMaxSizeMB}
}

func newRouter(r repo.ItemRepository) http.Handler {
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)
	cfg := testConfig()
	h := handlers.NewHandler(
		service.NewItemService(r, logger),
		service.NewImageService(cfg.ImageMaxSize()),
		logger,
		cfg,
	)
	return h.Router
}

func newMemoryRouter() http.Handler {
	return newRouter(repo.NewTenantStore())
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeItem(t *testing.T, rr *httptest.ResponseRecorder) model.Item {
	t.Helper()
	var it model.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &it), rr.Body.String())
	return it
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Error
}

func createItem(t *testing.T, h http.Handler, tenant, name string) model.Item {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/"+tenant+"/items", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeItem(t, rr)
}
