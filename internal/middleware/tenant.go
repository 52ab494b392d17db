package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type ctxKey string

const tenantIDKey ctxKey = "tenant_id"

// WithTenant достаёт {tenantId} из маршрута chi и кладёт его в контекст.
// tenantId непрозрачен и не нормализуется: пустой или с пробелами по краям отклоняется с 400.
func WithTenant(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := chi.URLParam(r, "tenantId")
		msg := ""
		switch {
		case strings.TrimSpace(tenantID) == "":
			msg = "tenant id is required"
		case strings.TrimSpace(tenantID) != tenantID:
			msg = "invalid tenant id"
		}
		if msg != "" {
			logger.Warnw("WithTenant: rejected tenant id", "tenant_id", tenantID, "uri", r.RequestURI)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
			return
		}
		h.ServeHTTP(w, r.WithContext(WithTenantID(r.Context(), tenantID)))
	})
}

// WithTenantID возвращает контекст с tenant id
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// TenantIDFromContext возвращает tenant id из контекста
func TenantIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tenantIDKey).(string)
	return v, ok && v != ""
}
