package service

import (
	"TodoList/internal/cli/api"
	"TodoList/internal/model"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DefaultImageMaxSize — клиентский лимит картинки, совпадает с серверным.
const DefaultImageMaxSize int64 = 5 << 20

var (
	ErrBlankName       = errors.New("name must not be blank")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrInvalidFileName = errors.New("file name may contain only letters, digits, '.', '_' and '-'")
	ErrImageTooLarge   = errors.New("file size must be less than 5MB")
	ErrNoImageURL      = errors.New("server returned no image url")
)

var fileNameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ItemsAPI описывает, что сервису нужно от HTTP-клиента.
type ItemsAPI interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	CreateItem(ctx context.Context, name string) (*model.Item, error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	UpdateItem(ctx context.Context, id string, upd model.ItemUpdate) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename, contentType string, content io.Reader) (*api.UploadResult, error)
}

var _ ItemsAPI = (*api.Client)(nil)

// ItemService описывает юзкейс-уровень работы с записями для CLI.
type ItemService interface {
	// List возвращает записи тенанта в порядке добавления.
	List(ctx context.Context) ([]model.Item, error)
	// Add создаёт запись; пустое имя отклоняется без запроса к серверу.
	Add(ctx context.Context, name string) (*model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	// Edit отправляет только заданные поля.
	Edit(ctx context.Context, id string, upd model.ItemUpdate) (*model.Item, error)
	// Toggle переключает isCompleted.
	Toggle(ctx context.Context, id string) (*model.Item, error)
	Remove(ctx context.Context, id string) error
	// AttachImage загружает файл и записывает полученный data URI в imageUrl.
	AttachImage(ctx context.Context, id, path string) (*model.Item, error)
}

// ItemServiceRemote реализует ItemService поверх REST API.
type ItemServiceRemote struct {
	api          ItemsAPI
	logger       *zap.SugaredLogger
	maxImageSize int64
}

// NewItemServiceRemote конструктор сервиса item
func NewItemServiceRemote(a ItemsAPI, logger *zap.SugaredLogger, maxImageSize int64) *ItemServiceRemote {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if maxImageSize <= 0 {
		maxImageSize = DefaultImageMaxSize
	}
	return &ItemServiceRemote{api: a, logger: logger, maxImageSize: maxImageSize}
}

func (s *ItemServiceRemote) List(ctx context.Context) ([]model.Item, error) {
	return s.api.ListItems(ctx)
}

func (s *ItemServiceRemote) Add(ctx context.Context, name string) (*model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	return s.api.CreateItem(ctx, name)
}

func (s *ItemServiceRemote) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.api.GetItem(ctx, id)
}

func (s *ItemServiceRemote) Edit(ctx context.Context, id string, upd model.ItemUpdate) (*model.Item, error) {
	if upd.IsEmpty() {
		return nil, ErrNothingToUpdate
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, ErrBlankName
	}
	return s.api.UpdateItem(ctx, id, upd)
}

func (s *ItemServiceRemote) Toggle(ctx context.Context, id string) (*model.Item, error) {
	it, err := s.api.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	done := !it.IsCompleted
	s.logger.Debugw("toggle item", "item_id", id, "is_completed", done)
	return s.api.UpdateItem(ctx, id, model.ItemUpdate{IsCompleted: &done})
}

func (s *ItemServiceRemote) Remove(ctx context.Context, id string) error {
	return s.api.DeleteItem(ctx, id)
}

func (s *ItemServiceRemote) AttachImage(ctx context.Context, id, path string) (*model.Item, error) {
	name := filepath.Base(path)
	if !fileNameRe.MatchString(name) {
		return nil, ErrInvalidFileName
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > s.maxImageSize {
		return nil, ErrImageTooLarge
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// тип по расширению; неизвестный сервер определит сам
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	res, err := s.api.UploadImage(ctx, name, contentType, f)
	if err != nil {
		return nil, err
	}
	if res.URL == "" {
		return nil, ErrNoImageURL
	}
	s.logger.Debugw("image uploaded", "item_id", id, "file", name, "size", info.Size())

	return s.api.UpdateItem(ctx, id, model.ItemUpdate{ImageURL: &res.URL})
}
