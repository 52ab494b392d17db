package repo

import (
	"TodoList/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound: записи с таким id у тенанта нет.
var ErrNotFound = errors.New("item not found")

// ItemRepository определяет контракт хранилища items, разбитого по тенантам.
type ItemRepository interface {
	// ListItems возвращает все записи тенанта в порядке добавления. Для нового тенанта список пуст.
	ListItems(ctx context.Context, tenantID string) ([]model.Item, error)

	// GetItem ищет запись по id; ErrNotFound если её нет.
	GetItem(ctx context.Context, tenantID, itemID string) (*model.Item, error)

	// AddItem добавляет запись в конец списка тенанта. Дубликаты id не проверяются.
	AddItem(ctx context.Context, tenantID string, item model.Item) error

	// UpdateItem применяет частичное обновление и проставляет UpdatedAt.
	UpdateItem(ctx context.Context, tenantID, itemID string, upd model.ItemUpdate) (*model.Item, error)

	// DeleteItem удаляет запись; false если удалять было нечего.
	DeleteItem(ctx context.Context, tenantID, itemID string) (bool, error)
}

// itemRow описывает строку таблицы items. Seq задаёт порядок добавления.
type itemRow struct {
	Seq         uint64     `gorm:"primaryKey;autoIncrement"`
	TenantID    string     `gorm:"not null;index:idx_items_tenant_item,priority:1"`
	ItemID      string     `gorm:"not null;index:idx_items_tenant_item,priority:2"`
	Name        string     `gorm:"not null"`
	IsCompleted bool       `gorm:"not null;default:false"`
	Memo        string     `gorm:"not null;default:''"`
	ImageURL    string     `gorm:"not null;default:''"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (itemRow) TableName() string { return "items" }

func rowFromItem(tenantID string, it model.Item) itemRow {
	return itemRow{
		TenantID:    tenantID,
		ItemID:      it.ID,
		Name:        it.Name,
		IsCompleted: it.IsCompleted,
		Memo:        it.Memo,
		ImageURL:    it.ImageURL,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (r itemRow) toItem() model.Item {
	return model.Item{
		ID:          r.ItemID,
		TenantID:    r.TenantID,
		Name:        r.Name,
		IsCompleted: r.IsCompleted,
		Memo:        r.Memo,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type itemRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewItemRepository создаёт реализацию репозитория поверх gorm.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db, now: time.Now}
}

func (r *itemRepo) ListItems(ctx context.Context, tenantID string) ([]model.Item, error) {
	var rows []itemRow
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toItem())
	}
	return items, nil
}

func (r *itemRepo) findRow(ctx context.Context, tenantID, itemID string) (*itemRow, error) {
	var row itemRow
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND item_id = ?", tenantID, itemID).
		Order("seq ASC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *itemRepo) GetItem(ctx context.Context, tenantID, itemID string) (*model.Item, error) {
	row, err := r.findRow(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	it := row.toItem()
	return &it, nil
}

func (r *itemRepo) AddItem(ctx context.Context, tenantID string, item model.Item) error {
	row := rowFromItem(tenantID, item)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *itemRepo) UpdateItem(ctx context.Context, tenantID, itemID string, upd model.ItemUpdate) (*model.Item, error) {
	row, err := r.findRow(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	it := row.toItem()
	upd.Apply(&it)
	now := r.now().UTC()
	it.UpdatedAt = &now

	merged := rowFromItem(tenantID, it)
	merged.Seq = row.Seq
	// Save пишет все колонки, включая пустые строки и false
	if err := r.db.WithContext(ctx).Save(&merged).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) DeleteItem(ctx context.Context, tenantID, itemID string) (bool, error) {
	row, err := r.findRow(ctx, tenantID, itemID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	tx := r.db.WithContext(ctx).Delete(&itemRow{}, row.Seq)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
