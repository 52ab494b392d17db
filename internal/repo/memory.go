package repo

import (
	"TodoList/internal/model"
	"context"
	"sync"
	"time"
)

// TenantStore хранит items в памяти процесса: тенант → список в порядке добавления.
// Создаётся пустым при старте, ничего не сохраняет на диск, исчезает вместе с процессом.
// Все операции выполняются под одним мьютексом.
type TenantStore struct {
	mu    sync.Mutex
	items map[string][]model.Item
	now   func() time.Time
}

var _ ItemRepository = (*TenantStore)(nil)

// NewTenantStore создаёт пустое хранилище.
func NewTenantStore() *TenantStore {
	return &TenantStore{items: make(map[string][]model.Item), now: time.Now}
}

// list возвращает список тенанта, лениво создавая его. Вызывать под mu.
func (s *TenantStore) list(tenantID string) []model.Item {
	items, ok := s.items[tenantID]
	if !ok {
		items = []model.Item{}
		s.items[tenantID] = items
	}
	return items
}

func indexOf(items []model.Item, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// ListItems никогда не возвращает ошибку.
func (s *TenantStore) ListItems(_ context.Context, tenantID string) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.list(tenantID)
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out, nil
}

func (s *TenantStore) GetItem(_ context.Context, tenantID, itemID string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.list(tenantID)
	i := indexOf(items, itemID)
	if i < 0 {
		return nil, ErrNotFound
	}
	it := items[i].Clone()
	return &it, nil
}

func (s *TenantStore) AddItem(_ context.Context, tenantID string, item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[tenantID] = append(s.list(tenantID), item.Clone())
	return nil
}

func (s *TenantStore) UpdateItem(_ context.Context, tenantID, itemID string, upd model.ItemUpdate) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.list(tenantID)
	i := indexOf(items, itemID)
	if i < 0 {
		return nil, ErrNotFound
	}
	it := items[i]
	upd.Apply(&it)
	now := s.now().UTC()
	it.UpdatedAt = &now
	items[i] = it
	out := it.Clone()
	return &out, nil
}

func (s *TenantStore) DeleteItem(_ context.Context, tenantID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.list(tenantID)
	i := indexOf(items, itemID)
	if i < 0 {
		return false, nil
	}
	s.items[tenantID] = append(items[:i], items[i+1:]...)
	return true, nil
}
