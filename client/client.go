// Package client is a typed HTTP client for the station API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/utils/logger"
)

const defaultTimeout = 20 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     logger.Logger
}

// Option configures a Client
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// New creates a client for the API rooted at baseURL, e.g. "http://localhost:8081/api/v1"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token sent with each request
func (c *Client) Token() string {
	return c.token
}

// envelope is the response wrapper written by every API handler
type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Errors     map[string]string  `json:"errors"`
	Pagination *models.Pagination `json:"pagination"`
}

// do sends reqBody as JSON and decodes the response envelope. A non-2xx status
// becomes an *APIError; the envelope is still returned so callers can read data
// that accompanies a failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody interface{}) (*envelope, []byte, error) {
	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return nil, nil, err
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return nil, nil, err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Message: ErrorMessage(nil, nil, err), Err: err}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, nil, &TransportError{Message: ErrorMessage(resp, nil, readErr), Err: readErr}
	}

	var env envelope
	if len(body) > 0 {
		// a proxy error page is not an envelope; ErrorMessage copes with that below
		_ = json.Unmarshal(body, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp, body)
		if c.logger != nil {
			c.logger.Warnf("%s %s failed with status %d: %s", method, path, resp.StatusCode, apiErr.Message)
		}
		return &env, body, apiErr
	}
	return &env, body, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody, out interface{}) error {
	env, _, err := c.do(ctx, method, path, query, reqBody)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func decodeData(env *envelope, out interface{}) error {
	if out == nil || env == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// Login authenticates and keeps the token for later calls
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, &models.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// ListItems returns one page of inventory matching filter
func (c *Client) ListItems(ctx context.Context, filter *models.InventoryFilter, page, limit int) ([]models.ClassifiedItem, *models.Pagination, error) {
	query := url.Values{}
	if filter != nil {
		setString(query, "category", filter.Category)
		setString(query, "location", filter.Location)
		setString(query, "vehicle_id", filter.VehicleID)
		setString(query, "search", filter.Search)
		setBool(query, "isLowStock", filter.IsLowStock)
		setBool(query, "isExpired", filter.IsExpired)
		setBool(query, "isExpiringSoon", filter.IsExpiringSoon)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	env, _, err := c.do(ctx, http.MethodGet, "/items", query, nil)
	if err != nil {
		return nil, nil, err
	}
	var items []models.ClassifiedItem
	if err := decodeData(env, &items); err != nil {
		return nil, nil, err
	}
	return items, env.Pagination, nil
}

// BulkReorder asks the server to reorder the low-stock subset of itemIDs. When
// every submission failed the partial result is returned with the error.
func (c *Client) BulkReorder(ctx context.Context, itemIDs []string) (*models.BulkReorderResult, error) {
	env, _, err := c.do(ctx, http.MethodPost, "/inventory/bulk-reorder", nil, &models.BulkReorderRequest{ItemIDs: itemIDs})

	var result *models.BulkReorderResult
	if env != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		result = &models.BulkReorderResult{}
		if decodeErr := decodeData(env, result); decodeErr != nil && err == nil {
			return nil, decodeErr
		}
	}
	return result, err
}

// CreateReorder submits a (possibly partial) reorder request
func (c *Client) CreateReorder(ctx context.Context, req *models.CreateReorderRequest) (*models.ReorderRequest, error) {
	var out models.ReorderRequest
	if err := c.doJSON(ctx, http.MethodPost, "/inventory-reorders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReorders returns reorder requests matching filter
func (c *Client) ListReorders(ctx context.Context, filter *models.ReorderFilter) ([]*models.ReorderRequest, error) {
	query := url.Values{}
	if filter != nil {
		setString(query, "status", string(filter.Status))
		setString(query, "priority", string(filter.Priority))
		setString(query, "inventoryItemId", filter.InventoryItemID)
	}
	var out []*models.ReorderRequest
	if err := c.doJSON(ctx, http.MethodGet, "/inventory-reorders", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveReorder approves a pending request; an empty approvedBy means the caller
func (c *Client) ApproveReorder(ctx context.Context, id, approvedBy string) (*models.ReorderRequest, error) {
	return c.transition(ctx, id, "approve", &models.ApproveReorderRequest{ApprovedBy: approvedBy})
}

func (c *Client) ShipReorder(ctx context.Context, id string) (*models.ReorderRequest, error) {
	return c.transition(ctx, id, "ship", nil)
}

// DeliverReorder marks a request delivered; a nil actualQuantity means the ordered quantity
func (c *Client) DeliverReorder(ctx context.Context, id string, actualQuantity *int) (*models.ReorderRequest, error) {
	return c.transition(ctx, id, "deliver", &models.DeliverReorderRequest{ActualQuantity: actualQuantity})
}

func (c *Client) CancelReorder(ctx context.Context, id string) (*models.ReorderRequest, error) {
	return c.transition(ctx, id, "cancel", nil)
}

func (c *Client) transition(ctx context.Context, id, action string, body interface{}) (*models.ReorderRequest, error) {
	var out models.ReorderRequest
	path := "/inventory-reorders/" + url.PathEscape(id) + "/" + action
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListShifts returns the schedules, optionally limited to one date (YYYY-MM-DD)
func (c *Client) ListShifts(ctx context.Context, date string) ([]*models.ShiftSchedule, error) {
	query := url.Values{}
	setString(query, "date", date)

	_, body, err := c.do(ctx, http.MethodGet, "/shift-schedules", query, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Schedules []*models.ShiftSchedule `json:"schedules"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode schedules: %w", err)
	}
	return out.Schedules, nil
}

// ValidateShift runs the server-side conflict checks without saving. id is
// empty for a new schedule.
func (c *Client) ValidateShift(ctx context.Context, id string, req *models.ShiftScheduleRequest) (map[string]string, error) {
	query := url.Values{}
	setString(query, "id", id)

	env, _, err := c.do(ctx, http.MethodPost, "/shift-schedules/validate", query, req)
	if err != nil {
		return nil, err
	}
	if env.Errors == nil {
		return map[string]string{}, nil
	}
	return env.Errors, nil
}

func (c *Client) CreateShift(ctx context.Context, req *models.ShiftScheduleRequest) (*models.ShiftSchedule, error) {
	var out models.ShiftSchedule
	if err := c.doJSON(ctx, http.MethodPost, "/shift-schedules", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateShift(ctx context.Context, id string, req *models.ShiftScheduleRequest) (*models.ShiftSchedule, error) {
	var out models.ShiftSchedule
	if err := c.doJSON(ctx, http.MethodPut, "/shift-schedules/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}
