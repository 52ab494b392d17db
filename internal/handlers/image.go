package handlers

import (
	"TodoList/internal/config"
	"TodoList/internal/middleware"
	"TodoList/internal/service"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"go.uber.org/zap"
)

// ImageHandler принимает картинку и возвращает её как data URI.
type ImageHandler struct {
	ImageService *service.ImageService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewImageHandler(imageService *service.ImageService, logger *zap.SugaredLogger, cfg *config.Config) *ImageHandler {
	return &ImageHandler{ImageService: imageService, Logger: logger, Config: cfg}
}

var errNoFilePart = errors.New("no file part")

type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Upload загрузка картинки (multipart, поле file или image).
// Части читаются потоком: тип проверяется раньше, чем считается размер.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantIDFromContext(r.Context())

	// внешний предохранитель: файл + запас на остальные поля формы
	r.Body = http.MaxBytesReader(w, r.Body, h.ImageService.MaxSize()+1<<20)

	mr, err := r.MultipartReader()
	if err != nil {
		h.Logger.Warnw("Upload: not a multipart request", "tenant_id", tenantID, "error", err)
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	part, err := nextFilePart(mr, "file", "image")
	if err != nil {
		h.Logger.Warnw("Upload: missing file", "tenant_id", tenantID, "error", err)
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer part.Close()

	contentType, content, err := service.DetectContentType(part.Header.Get("Content-Type"), part)
	if err != nil {
		h.Logger.Errorw("Upload: failed to read file", "tenant_id", tenantID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	// Size неизвестен до чтения, потолок проверяется при чтении
	uri, err := h.ImageService.EncodeDataURI(&service.ImageFile{
		ContentType: contentType,
		Content:     content,
	})
	var mbe *http.MaxBytesError
	switch {
	case errors.Is(err, service.ErrNoFile):
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	case errors.Is(err, service.ErrNotImage):
		writeError(w, http.StatusBadRequest, "File must be an image")
		return
	case errors.Is(err, service.ErrTooLarge), errors.As(err, &mbe):
		h.Logger.Warnw("Upload: file too large", "tenant_id", tenantID, "file", part.FileName())
		writeError(w, http.StatusBadRequest, h.tooLargeMessage())
		return
	case err != nil:
		h.Logger.Errorw("Upload: encode failed", "tenant_id", tenantID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	h.Logger.Infow("image uploaded", "tenant_id", tenantID, "file", part.FileName(), "type", contentType)
	writeJSON(w, http.StatusOK, uploadResponse{URL: uri, Message: "Image uploaded successfully"})
}

func (h *ImageHandler) tooLargeMessage() string {
	mb := config.DefaultImageMaxSizeMB
	if h.Config != nil && h.Config.ImageMaxSizeMB > 0 {
		mb = h.Config.ImageMaxSizeMB
	}
	return fmt.Sprintf("File size must be less than %dMB", mb)
}

// nextFilePart пропускает части формы до первого файла в одном из полей
func nextFilePart(mr *multipart.Reader, fields ...string) (*multipart.Part, error) {
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, errNoFilePart
		}
		if err != nil {
			return nil, err
		}
		if part.FileName() != "" && slices.Contains(fields, part.FormName()) {
			return part, nil
		}
		_ = part.Close()
	}
}
