package service

import (
	"TodoList/internal/model"
	"TodoList/internal/repo"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Мок ItemRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListItems(ctx context.Context, tenantID string) ([]model.Item, error) {
	args := m.Called(ctx, tenantID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetItem(ctx context.Context, tenantID, itemID string) (*model.Item, error) {
	args := m.Called(ctx, tenantID, itemID)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) AddItem(ctx context.Context, tenantID string, item model.Item) error {
	return m.Called(ctx, tenantID, item).Error(0)
}
func (m *mockItemRepo) UpdateItem(ctx context.Context, tenantID, itemID string, upd model.ItemUpdate) (*model.Item, error) {
	args := m.Called(ctx, tenantID, itemID, upd)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) DeleteItem(ctx context.Context, tenantID, itemID string) (bool, error) {
	args := m.Called(ctx, tenantID, itemID)
	return args.Bool(0), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// хелперы
func ptrStr(s string) *string { return &s }
func ptrBool(v bool) *bool    { return &v }

func TestItemService_Create_Defaults(t *testing.T) {
	store := repo.NewTenantStore()
	svc := NewItemService(store, zap.NewNop().Sugar())
	ctx := context.Background()

	it, err := svc.Create(ctx, "user-abc123def", CreateItemInput{Name: "  buy milk "})
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "user-abc123def", it.TenantID)
	assert.Equal(t, "buy milk", it.Name)
	assert.False(t, it.IsCompleted)
	assert.Equal(t, "", it.Memo)
	assert.Equal(t, "", it.ImageURL)
	assert.WithinDuration(t, time.Now().UTC(), it.CreatedAt, time.Second)
	assert.Nil(t, it.UpdatedAt)

	got, err := svc.Get(ctx, "user-abc123def", it.ID)
	require.NoError(t, err)
	assert.Equal(t, *it, *got)
}

func TestItemService_Create_UniqueIDs(t *testing.T) {
	svc := NewItemService(repo.NewTenantStore(), zap.NewNop().Sugar())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		it, err := svc.Create(ctx, "t", CreateItemInput{Name: "n"})
		require.NoError(t, err)
		assert.False(t, seen[it.ID], "id reused: %s", it.ID)
		seen[it.ID] = true
	}
}

func TestItemService_Create_InvalidName(t *testing.T) {
	ir := new(mockItemRepo)
	svc := NewItemService(ir, zap.NewNop().Sugar())

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), "t", CreateItemInput{Name: name})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	ir.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestItemService_Create_RepoError(t *testing.T) {
	ir := new(mockItemRepo)
	svc := NewItemService(ir, zap.NewNop().Sugar())
	svc.newID = func() string { return "fixed-id" }

	ir.On("AddItem", mock.Anything, "t", mock.MatchedBy(func(it model.Item) bool {
		return it.ID == "fixed-id" && it.Name == "n"
	})).Return(errors.New("db")).Once()

	_, err := svc.Create(context.Background(), "t", CreateItemInput{Name: "n"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	ir.AssertExpectations(t)
}

func TestItemService_Get_NotFoundMapping(t *testing.T) {
	ir := new(mockItemRepo)
	svc := NewItemService(ir, zap.NewNop().Sugar())
	ctx := context.Background()

	ir.On("GetItem", mock.Anything, "t", "missing").Return((*model.Item)(nil), repo.ErrNotFound).Once()
	_, err := svc.Get(ctx, "t", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	ir.On("GetItem", mock.Anything, "t", "boom").Return((*model.Item)(nil), errors.New("db")).Once()
	_, err = svc.Get(ctx, "t", "boom")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	ir.AssertExpectations(t)
}

func TestItemService_Update(t *testing.T) {
	t.Run("name only changes name and updatedAt", func(t *testing.T) {
		svc := NewItemService(repo.NewTenantStore(), zap.NewNop().Sugar())
		ctx := context.Background()
		created, err := svc.Create(ctx, "t", CreateItemInput{Name: "old"})
		require.NoError(t, err)
		_, err = svc.Update(ctx, "t", created.ID, model.ItemUpdate{Memo: ptrStr("memo"), ImageURL: ptrStr("u")})
		require.NoError(t, err)
		before, err := svc.Get(ctx, "t", created.ID)
		require.NoError(t, err)

		after, err := svc.Update(ctx, "t", created.ID, model.ItemUpdate{Name: ptrStr("x")})
		require.NoError(t, err)

		assert.Equal(t, "x", after.Name)
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.TenantID, after.TenantID)
		assert.Equal(t, before.Memo, after.Memo)
		assert.Equal(t, before.ImageURL, after.ImageURL)
		assert.Equal(t, before.IsCompleted, after.IsCompleted)
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
		require.NotNil(t, after.UpdatedAt)
		assert.False(t, after.UpdatedAt.Before(*before.UpdatedAt))
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ir := new(mockItemRepo)
		svc := NewItemService(ir, zap.NewNop().Sugar())
		_, err := svc.Update(context.Background(), "t", "i1", model.ItemUpdate{Name: ptrStr("  ")})
		assert.ErrorIs(t, err, ErrInvalidInput)
		ir.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name is trimmed before store", func(t *testing.T) {
		ir := new(mockItemRepo)
		svc := NewItemService(ir, zap.NewNop().Sugar())
		ir.On("UpdateItem", mock.Anything, "t", "i1", mock.MatchedBy(func(u model.ItemUpdate) bool {
			return u.Name != nil && *u.Name == "trimmed"
		})).Return(&model.Item{ID: "i1", Name: "trimmed"}, nil).Once()

		it, err := svc.Update(context.Background(), "t", "i1", model.ItemUpdate{Name: ptrStr(" trimmed ")})
		require.NoError(t, err)
		assert.Equal(t, "trimmed", it.Name)
		ir.AssertExpectations(t)
	})

	t.Run("not found and repo error", func(t *testing.T) {
		ir := new(mockItemRepo)
		svc := NewItemService(ir, zap.NewNop().Sugar())
		ir.On("UpdateItem", mock.Anything, "t", "missing", mock.Anything).Return((*model.Item)(nil), repo.ErrNotFound).Once()
		ir.On("UpdateItem", mock.Anything, "t", "boom", mock.Anything).Return((*model.Item)(nil), errors.New("db")).Once()

		_, err := svc.Update(context.Background(), "t", "missing", model.ItemUpdate{IsCompleted: ptrBool(true)})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Update(context.Background(), "t", "boom", model.ItemUpdate{IsCompleted: ptrBool(true)})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		ir.AssertExpectations(t)
	})
}

func TestItemService_Delete(t *testing.T) {
	svc := NewItemService(repo.NewTenantStore(), zap.NewNop().Sugar())
	ctx := context.Background()
	it, err := svc.Create(ctx, "t", CreateItemInput{Name: "n"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "t", it.ID))
	_, err = svc.Get(ctx, "t", it.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "t", it.ID), ErrNotFound)

	ir := new(mockItemRepo)
	svc = NewItemService(ir, zap.NewNop().Sugar())
	ir.On("DeleteItem", mock.Anything, "t", "x").Return(false, errors.New("db")).Once()
	err = svc.Delete(ctx, "t", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestItemService_List_UnseenTenant(t *testing.T) {
	svc := NewItemService(repo.NewTenantStore(), zap.NewNop().Sugar())
	items, err := svc.List(context.Background(), "user-newtenant")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
