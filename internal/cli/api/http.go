package api

import (
	"TodoList/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// StatusError — ответ сервера с не-2xx статусом.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// IsNotFound сообщает, что сервер ответил 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// UploadResult описывает ответ на загрузку картинки.
type UploadResult struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Client оборачивает REST API одного тенанта.
type Client struct {
	ServerURL string
	TenantID  string
	HTTP      *http.Client
}

func NewClient(serverURL, tenantID string) *Client {
	return &Client{
		ServerURL: strings.TrimRight(serverURL, "/"),
		TenantID:  tenantID,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) tenantURL(parts ...string) string {
	p := []string{c.ServerURL, "api", url.PathEscape(c.TenantID)}
	for _, s := range parts {
		p = append(p, url.PathEscape(s))
	}
	return strings.Join(p, "/")
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// ListItems GET /api/{tenantId}/items
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.doJSON(ctx, http.MethodGet, c.tenantURL("items"), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// CreateItem POST /api/{tenantId}/items
func (c *Client) CreateItem(ctx context.Context, name string) (*model.Item, error) {
	var it model.Item
	if err := c.doJSON(ctx, http.MethodPost, c.tenantURL("items"), map[string]string{"name": name}, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// GetItem GET /api/{tenantId}/items/{itemId}
func (c *Client) GetItem(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := c.doJSON(ctx, http.MethodGet, c.tenantURL("items", id), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateItem PATCH /api/{tenantId}/items/{itemId}; отправляются только заданные поля
func (c *Client) UpdateItem(ctx context.Context, id string, upd model.ItemUpdate) (*model.Item, error) {
	var it model.Item
	if err := c.doJSON(ctx, http.MethodPatch, c.tenantURL("items", id), upd, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// DeleteItem DELETE /api/{tenantId}/items/{itemId}
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.tenantURL("items", id), nil, nil)
}

// UploadImage POST /api/{tenantId}/images/upload (multipart, поле file)
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, content io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("tenantId", c.TenantID); err != nil {
		return nil, err
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tenantURL("images", "upload"), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var res UploadResult
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) doJSON(ctx context.Context, method, u string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		var eb struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &eb) == nil {
			se.Message = eb.Error
		} else {
			se.Message = strings.TrimSpace(string(body))
		}
		return se
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
