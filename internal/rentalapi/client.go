package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/rental-desk/internal/metrics"
	"github.com/sjperalta/rental-desk/pkg/logger"
)

// Client talks to the rental backend over JSON/HTTP
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	timeout time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sends a bearer token on every request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds every call
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a client for the backend at baseURL. Cookies set by the
// backend are kept and sent back, like a browser with credentials included.
func New(baseURL string, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid rental api base url %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http:    &http.Client{Jar: jar},
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCustomers returns customers matching the query
func (c *Client) ListCustomers(ctx context.Context, q CustomerQuery) ([]Customer, error) {
	params := url.Values{}
	setParam(params, "search", q.Search)
	setIntParam(params, "skip", q.Skip)
	setIntParam(params, "limit", q.Limit)

	var out []Customer
	if err := c.do(ctx, http.MethodGet, "customers/", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindCustomerByPhone looks a customer up by phone number
func (c *Client) FindCustomerByPhone(ctx context.Context, phone string) (*Customer, error) {
	params := url.Values{}
	setParam(params, "phone", phone)

	var out Customer
	if err := c.do(ctx, http.MethodGet, "customers/by-phone", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVehicles returns vehicles matching the query
func (c *Client) ListVehicles(ctx context.Context, q VehicleQuery) ([]Vehicle, error) {
	params := url.Values{}
	setParam(params, "search", q.Search)
	setParam(params, "type_id", q.TypeID)
	setIntParam(params, "skip", q.Skip)
	setIntParam(params, "limit", q.Limit)

	var out []Vehicle
	if err := c.do(ctx, http.MethodGet, "cars/", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVehicleTypes returns all vehicle types
func (c *Client) ListVehicleTypes(ctx context.Context) ([]VehicleType, error) {
	var out []VehicleType
	if err := c.do(ctx, http.MethodGet, "car-types/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBranches returns all branches
func (c *Client) ListBranches(ctx context.Context) ([]Branch, error) {
	var out []Branch
	if err := c.do(ctx, http.MethodGet, "branches/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEmployees returns staff matching the query
func (c *Client) ListEmployees(ctx context.Context, q EmployeeQuery) ([]Employee, error) {
	params := url.Values{}
	setParam(params, "search", q.Search)
	setParam(params, "branch_id", q.BranchID)
	setIntParam(params, "skip", q.Skip)
	setIntParam(params, "limit", q.Limit)

	var out []Employee
	if err := c.do(ctx, http.MethodGet, "employees/", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateContract submits a new contract
func (c *Client) CreateContract(ctx context.Context, payload ContractCreate) (*ContractCreated, error) {
	var out ContractCreated
	if err := c.do(ctx, http.MethodPost, "contracts", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment records a payment against a created contract
func (c *Client) RecordPayment(ctx context.Context, contractID int64, amount decimal.Decimal, method string) error {
	params := url.Values{}
	params.Set("amount", amount.String())
	params.Set("method", method)

	path := "contracts/" + strconv.FormatInt(contractID, 10) + "/payments"
	return c.do(ctx, http.MethodPost, path, params, nil, nil)
}

func (c *Client) buildURL(path string, params url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequests.WithLabelValues(method, metrics.Resource(path), "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequests.WithLabelValues(method, metrics.Resource(path), strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	logger.Debug("Rental API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       decodeBody(resp.Header.Get("Content-Type"), raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeBody(contentType string, raw []byte) any {
	if strings.Contains(contentType, "application/json") {
		var payload any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil
		}
		return payload
	}
	return string(raw)
}

func setParam(params url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}

func setIntParam(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, strconv.Itoa(value))
	}
}
