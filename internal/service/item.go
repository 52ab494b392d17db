package service

import (
	"TodoList/internal/model"
	"TodoList/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Доменные ошибки. Хендлер переводит их в HTTP-статусы.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("item not found")
)

// CreateItemInput: тело запроса на создание записи.
type CreateItemInput struct {
	Name string `json:"name"`
}

// ItemService инкапсулирует бизнес-логику работы с Item.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
	newID  func() string
	now    func() time.Time
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger, newID: uuid.NewString, now: time.Now}
}

// List возвращает записи тенанта в порядке добавления.
func (s *ItemService) List(ctx context.Context, tenantID string) ([]model.Item, error) {
	items, err := s.repo.ListItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get возвращает запись или ErrNotFound.
func (s *ItemService) Get(ctx context.Context, tenantID, itemID string) (*model.Item, error) {
	it, err := s.repo.GetItem(ctx, tenantID, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Create проверяет имя, генерирует id и сохраняет новую запись со значениями по умолчанию.
func (s *ItemService) Create(ctx context.Context, tenantID string, in CreateItemInput) (*model.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	it := model.Item{
		ID:          s.newID(),
		TenantID:    tenantID,
		Name:        name,
		IsCompleted: false,
		Memo:        "",
		ImageURL:    "",
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.AddItem(ctx, tenantID, it); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	s.logger.Debugw("item created", "tenant_id", tenantID, "item_id", it.ID)
	return &it, nil
}

// Update применяет частичное обновление. Переданное имя не может быть пустым.
func (s *ItemService) Update(ctx context.Context, tenantID, itemID string, upd model.ItemUpdate) (*model.Item, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		upd.Name = &name
	}

	it, err := s.repo.UpdateItem(ctx, tenantID, itemID, upd)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// Delete удаляет запись; ErrNotFound если её не было.
func (s *ItemService) Delete(ctx context.Context, tenantID, itemID string) error {
	removed, err := s.repo.DeleteItem(ctx, tenantID, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
