package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"TodoList/internal/cli/repo"
)

// TenantFSStore хранит tenant id CLI в файле.
type TenantFSStore struct {
	Path string
}

var _ repo.TenantStore = (*TenantFSStore)(nil)

func NewTenantFSStore(path string) *TenantFSStore {
	return &TenantFSStore{Path: path}
}

// Save сохраняет tenant id в файл, создавая каталог при необходимости.
func (s *TenantFSStore) Save(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return errors.New("empty tenant id")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(tenantID), 0o600)
}

// Load читает tenant id из файла. Если файла нет или он пуст, возвращает repo.ErrNoTenant.
func (s *TenantFSStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", repo.ErrNoTenant
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	id := strings.TrimSpace(string(b))
	if id == "" {
		return "", repo.ErrNoTenant
	}
	return id, nil
}
