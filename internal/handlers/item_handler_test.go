package handlers_test

import (
	"TodoList/internal/model"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_ListEmptyTenant(t *testing.T) {
	h := newMemoryRouter()

	rr := doJSON(t, h, http.MethodGet, "/api/user-newtenant/items", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestItemHandler_CreateAndList(t *testing.T) {
	h := newMemoryRouter()

	a := createItem(t, h, "t1", "first")
	b := createItem(t, h, "t1", "second")
	createItem(t, h, "t2", "other tenant")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "t1", a.TenantID)
	assert.False(t, a.IsCompleted)
	assert.Equal(t, "", a.Memo)
	assert.Equal(t, "", a.ImageURL)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Nil(t, a.UpdatedAt)

	rr := doJSON(t, h, http.MethodGet, "/api/t1/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var items []model.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
}

func TestItemHandler_CreateResponseShape(t *testing.T) {
	h := newMemoryRouter()

	rr := doJSON(t, h, http.MethodPost, "/api/t1/items", map[string]string{"name": "shape"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	for _, k := range []string{"id", "tenantId", "name", "isCompleted", "memo", "imageUrl", "createdAt"} {
		assert.Contains(t, raw, k)
	}
	assert.NotContains(t, raw, "updatedAt")
}

func TestItemHandler_CreateInvalid(t *testing.T) {
	h := newMemoryRouter()

	cases := map[string]string{
		"missing name":  `{}`,
		"blank name":    `{"name":"   "}`,
		"malformed":     `{"name":`,
		"wrong type":    `{"name":42}`,
		"empty payload": ``,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := doJSON(t, h, http.MethodPost, "/api/t1/items", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}

	rr := doJSON(t, h, http.MethodGet, "/api/t1/items", nil)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestItemHandler_GetCrossTenant(t *testing.T) {
	h := newMemoryRouter()
	it := createItem(t, h, "t1", "mine")

	rr := doJSON(t, h, http.MethodGet, "/api/t1/items/"+it.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, it, decodeItem(t, rr))

	rr = doJSON(t, h, http.MethodGet, "/api/t2/items/"+it.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Item not found", decodeError(t, rr))
}

func TestItemHandler_Patch(t *testing.T) {
	h := newMemoryRouter()
	it := createItem(t, h, "t1", "old")

	rr := doJSON(t, h, http.MethodPatch, "/api/t1/items/"+it.ID, `{"name":"x","unknown":1,"memo":null}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeItem(t, rr)
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, it.ID, got.ID)
	assert.Equal(t, it.TenantID, got.TenantID)
	assert.Equal(t, it.Memo, got.Memo)
	assert.Equal(t, it.ImageURL, got.ImageURL)
	assert.Equal(t, it.IsCompleted, got.IsCompleted)
	assert.True(t, it.CreatedAt.Equal(got.CreatedAt))
	require.NotNil(t, got.UpdatedAt)
	assert.WithinDuration(t, time.Now(), *got.UpdatedAt, 5*time.Second)

	rr = doJSON(t, h, http.MethodPatch, "/api/t1/items/"+it.ID, map[string]any{"memo": "note", "imageUrl": "https://x/y.png", "isCompleted": true})
	require.Equal(t, http.StatusOK, rr.Code)
	got = decodeItem(t, rr)
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, "note", got.Memo)
	assert.Equal(t, "https://x/y.png", got.ImageURL)
	assert.True(t, got.IsCompleted)
}

func TestItemHandler_PatchErrors(t *testing.T) {
	h := newMemoryRouter()
	it := createItem(t, h, "t1", "n")

	rr := doJSON(t, h, http.MethodPatch, "/api/t1/items/missing", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodPatch, "/api/t1/items/"+it.ID, `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, h, http.MethodPatch, "/api/t1/items/"+it.ID, `{"isCompleted":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, h, http.MethodPatch, "/api/t1/items/"+it.ID, `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// неудачный PATCH ничего не меняет
	rr = doJSON(t, h, http.MethodGet, "/api/t1/items/"+it.ID, nil)
	assert.Equal(t, it, decodeItem(t, rr))
}

func TestItemHandler_Delete(t *testing.T) {
	h := newMemoryRouter()
	a := createItem(t, h, "t1", "a")
	b := createItem(t, h, "t1", "b")

	rr := doJSON(t, h, http.MethodDelete, "/api/t1/items/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doJSON(t, h, http.MethodDelete, "/api/t1/items/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/t1/items", nil)
	var items []model.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
}

// Сценарий: создать, отметить выполненной, удалить, убедиться что её нет
func TestItemHandler_Scenario(t *testing.T) {
	h := newMemoryRouter()
	const tenant = "user-abc123def"

	it := createItem(t, h, tenant, "Buy milk")
	assert.False(t, it.IsCompleted)

	rr := doJSON(t, h, http.MethodPatch, "/api/"+tenant+"/items/"+it.ID, map[string]bool{"isCompleted": true})
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeItem(t, rr)
	assert.True(t, got.IsCompleted)
	assert.Equal(t, "Buy milk", got.Name)
	assert.NotNil(t, got.UpdatedAt)

	rr = doJSON(t, h, http.MethodDelete, "/api/"+tenant+"/items/"+it.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/"+tenant+"/items/"+it.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestItemHandler_RepoErrorsAre500(t *testing.T) {
	ir := new(hMockItemRepo)
	h := newRouter(ir)
	boom := errors.New("db down")

	ir.On("ListItems", mock.Anything, "t1").Return(nil, boom).Once()
	ir.On("AddItem", mock.Anything, "t1", mock.Anything).Return(boom).Once()
	ir.On("GetItem", mock.Anything, "t1", "x").Return(nil, boom).Once()
	ir.On("DeleteItem", mock.Anything, "t1", "x").Return(false, boom).Once()

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/t1/items", ""},
		{http.MethodPost, "/api/t1/items", `{"name":"n"}`},
		{http.MethodGet, "/api/t1/items/x", ""},
		{http.MethodDelete, "/api/t1/items/x", ""},
	} {
		rr := doJSON(t, h, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, tc.method+" "+tc.path)
		assert.Equal(t, "internal error", decodeError(t, rr))
	}
	ir.AssertExpectations(t)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	h := newMemoryRouter()

	rr := doJSON(t, h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotEmpty(t, decodeError(t, rr))

	rr = doJSON(t, h, http.MethodPut, "/api/t1/items", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.NotEmpty(t, decodeError(t, rr))
}

func TestHealth(t *testing.T) {
	h := newMemoryRouter()

	rr := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["time"])
	assert.NoError(t, err)
}
