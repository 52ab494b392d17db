package handlers

import (
	"TodoList/internal/middleware"
	"TodoList/internal/model"
	"TodoList/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает коллекцию записей тенанта и отдельные записи.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// List отдаёт все записи тенанта
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantIDFromContext(r.Context())

	items, err := h.ItemService.List(r.Context(), tenantID)
	if err != nil {
		h.Logger.Errorw("List: service error", "tenant_id", tenantID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create создаёт запись из {"name": "..."}
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantIDFromContext(r.Context())

	var in service.CreateItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("Create: invalid request body", "tenant_id", tenantID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	it, err := h.ItemService.Create(r.Context(), tenantID, in)
	if err != nil {
		h.writeServiceError(w, "Create", tenantID, "", err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// Get отдаёт одну запись
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantIDFromContext(r.Context())
	itemID := chi.URLParam(r, "itemId")

	it, err := h.ItemService.Get(r.Context(), tenantID, itemID)
	if err != nil {
		h.writeServiceError(w, "Get", tenantID, itemID, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Patch частично обновляет запись. Неизвестные поля игнорируются, null равен отсутствию поля.
func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantIDFromContext(r.Context())
	itemID := chi.URLParam(r, "itemId")

	var upd model.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.Logger.Warnw("Patch: invalid request body", "tenant_id", tenantID, "item_id", itemID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	it, err := h.ItemService.Update(r.Context(), tenantID, itemID, upd)
	if err != nil {
		h.writeServiceError(w, "Patch", tenantID, itemID, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Delete удаляет запись, 204 без тела
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantIDFromContext(r.Context())
	itemID := chi.URLParam(r, "itemId")

	if err := h.ItemService.Delete(r.Context(), tenantID, itemID); err != nil {
		h.writeServiceError(w, "Delete", tenantID, itemID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) writeServiceError(w http.ResponseWriter, op, tenantID, itemID string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "name is required")
	default:
		h.Logger.Errorw(op+": service error", "tenant_id", tenantID, "item_id", itemID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
