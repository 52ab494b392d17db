package repo

import "errors"

// ErrNoTenant — tenant id ещё не сохранён.
var ErrNoTenant = errors.New("no stored tenant id")

// TenantStore описывает хранилище идентификатора тенанта на клиенте.
type TenantStore interface {
	Save(tenantID string) error
	Load() (string, error)
}
