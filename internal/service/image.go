package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultImageMaxSize — потолок размера загружаемой картинки (5 MiB).
const DefaultImageMaxSize int64 = 5 << 20

// Ошибки валидации загрузки.
var (
	ErrNoFile   = errors.New("no file uploaded")
	ErrNotImage = errors.New("file must be an image")
	ErrTooLarge = errors.New("file is too large")
)

// ImageFile описывает загруженный файл так, как его видит хендлер.
type ImageFile struct {
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageService превращает картинку в data URI. Ничего не сохраняет.
type ImageService struct {
	maxSize int64
}

func NewImageService(maxSize int64) *ImageService {
	if maxSize <= 0 {
		maxSize = DefaultImageMaxSize
	}
	return &ImageService{maxSize: maxSize}
}

// MaxSize возвращает действующий потолок в байтах.
func (s *ImageService) MaxSize() int64 { return s.maxSize }

// Validate проверяет файл в порядке: наличие, тип, размер.
func (s *ImageService) Validate(f *ImageFile) error {
	if f == nil || f.Content == nil {
		return ErrNoFile
	}
	if !strings.HasPrefix(f.ContentType, "image/") {
		return ErrNotImage
	}
	if f.Size > s.maxSize {
		return ErrTooLarge
	}
	return nil
}

// EncodeDataURI валидирует файл, читает его целиком и возвращает data:<mime>;base64,<payload>.
func (s *ImageService) EncodeDataURI(f *ImageFile) (string, error) {
	if err := s.Validate(f); err != nil {
		return "", err
	}
	// читаем на байт больше лимита: заявленный Size мог соврать
	data, err := io.ReadAll(io.LimitReader(f.Content, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", ErrTooLarge
	}
	return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DetectContentType возвращает заявленный тип, а если его нет, определяет по первым байтам.
// Возвращает reader, который отдаёт файл целиком, включая прочитанный префикс.
func DetectContentType(declared string, r io.Reader) (string, io.Reader, error) {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared, r, nil
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, fmt.Errorf("sniff content type: %w", err)
	}
	head = head[:n]
	ct := http.DetectContentType(head)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return ct, io.MultiReader(bytes.NewReader(head), r), nil
}
