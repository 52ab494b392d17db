package model

import "time"

// Item это запись списка дел одного тенанта.
type Item struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenantId"`
	Name        string     `json:"name"`
	IsCompleted bool       `json:"isCompleted"`
	Memo        string     `json:"memo"`
	ImageURL    string     `json:"imageUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ItemUpdate — частичное обновление: nil означает «поле не передано».
type ItemUpdate struct {
	Name        *string `json:"name,omitempty"`
	Memo        *string `json:"memo,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// IsEmpty сообщает, что ни одно поле не передано.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Memo == nil && u.ImageURL == nil && u.IsCompleted == nil
}

// Apply переносит переданные поля поверх it. Остальные поля не трогаются.
func (u ItemUpdate) Apply(it *Item) {
	if u.Name != nil {
		it.Name = *u.Name
	}
	if u.Memo != nil {
		it.Memo = *u.Memo
	}
	if u.ImageURL != nil {
		it.ImageURL = *u.ImageURL
	}
	if u.IsCompleted != nil {
		it.IsCompleted = *u.IsCompleted
	}
}

// Clone возвращает копию, не разделяющую UpdatedAt с исходной записью.
func (it Item) Clone() Item {
	if it.UpdatedAt != nil {
		t := *it.UpdatedAt
		it.UpdatedAt = &t
	}
	return it
}
