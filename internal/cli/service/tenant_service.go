package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"TodoList/internal/cli/repo"

	"go.uber.org/zap"
)

const (
	tenantPrefix    = "user-"
	tenantSuffixLen = 9
	tenantAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var tenantRe = regexp.MustCompile(`^user-[a-z0-9]{9}$`)

// TenantService выдаёт клиенту постоянный tenant id.
type TenantService struct {
	store  repo.TenantStore
	logger *zap.SugaredLogger
}

func NewTenantService(store repo.TenantStore, logger *zap.SugaredLogger) *TenantService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TenantService{store: store, logger: logger}
}

// Current возвращает сохранённый tenant id; при первом запуске генерирует и сохраняет новый.
// created сообщает, что id был создан сейчас. Чужой формат (например, id, перенесённый
// с другой машины вручную) используется как есть, но с предупреждением.
func (s *TenantService) Current() (id string, created bool, err error) {
	id, err = s.store.Load()
	if err == nil {
		if !isGeneratedTenantID(id) {
			s.logger.Warnw("stored tenant id has unexpected format", "tenant_id", id, "want", tenantRe.String())
		}
		return id, false, nil
	}
	if !errors.Is(err, repo.ErrNoTenant) {
		return "", false, err
	}
	id, err = s.Rotate()
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Rotate генерирует новый tenant id и сохраняет его. Старые записи остаются у прежнего тенанта.
func (s *TenantService) Rotate() (string, error) {
	id, err := GenerateTenantID()
	if err != nil {
		return "", err
	}
	if err := s.store.Save(id); err != nil {
		return "", fmt.Errorf("save tenant id: %w", err)
	}
	return id, nil
}

// GenerateTenantID возвращает "user-" и 9 случайных символов [a-z0-9].
func GenerateTenantID() (string, error) {
	var sb strings.Builder
	sb.WriteString(tenantPrefix)
	alphabetLen := big.NewInt(int64(len(tenantAlphabet)))
	for i := 0; i < tenantSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(tenantAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// isGeneratedTenantID сообщает, что id имеет формат GenerateTenantID.
func isGeneratedTenantID(id string) bool {
	return tenantRe.MatchString(id)
}
