package handlers

import (
	"TodoList/internal/config"
	"TodoList/internal/middleware"
	"TodoList/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	imageService *service.ImageService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Handlers
	itemHandler := NewItemHandler(itemService, logger)
	imageHandler := NewImageHandler(imageService, logger, config)

	r.Get("/health", Health)

	r.Route("/api/{tenantId}", func(r chi.Router) {
		r.Use(middleware.WithTenant)

		r.Get("/items", itemHandler.List)
		r.Post("/items", itemHandler.Create)
		r.Get("/items/{itemId}", itemHandler.Get)
		r.Patch("/items/{itemId}", itemHandler.Patch)
		r.Delete("/items/{itemId}", itemHandler.Delete)

		r.Post("/images/upload", imageHandler.Upload)
	})

	return &Handler{Router: r}
}
