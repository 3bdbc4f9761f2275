package backendapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/requestid"
)

const (
	headerAuthorization = "Authorization"
	headerNewToken      = "X-New-Token"
	headerRequestID     = requestid.Header
)

// Client клиент внешнего REST API.
// Держит учётный токен: подставляет его в каждый запрос и заменяет,
// если сервер прислал новый в X-New-Token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore
	metrics    Metrics
	log        Logger

	mu             sync.RWMutex
	token          string
	tokenLoaded    bool
	onUnauthorized func()
}

// NewClient создает новый экземпляр клиента API
func NewClient(baseURL string, timeout time.Duration, store TokenStore, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		store: store,
		log:   log,
	}
}

// WithMetrics включает метрики вызовов
func (c *Client) WithMetrics(m Metrics) *Client {
	c.metrics = m
	return c
}

// OnUnauthorized регистрирует обработчик потери аутентификации (ответ 401 при наличии токена)
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Token возвращает текущий токен (из памяти или из хранилища)
func (c *Client) Token(ctx context.Context) (string, bool) {
	c.mu.RLock()
	if c.tokenLoaded {
		token := c.token
		c.mu.RUnlock()
		return token, token != ""
	}
	c.mu.RUnlock()

	token, err := c.store.Get(ctx, domain.StateKeyAuthToken)
	if err != nil {
		token = ""
	}

	c.mu.Lock()
	if !c.tokenLoaded {
		c.token = token
		c.tokenLoaded = true
	}
	token = c.token
	c.mu.Unlock()

	return token, token != ""
}

// SetToken сохраняет токен в памяти и в хранилище
func (c *Client) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.tokenLoaded = true
	c.mu.Unlock()

	if err := c.store.Set(ctx, domain.StateKeyAuthToken, token); err != nil {
		return fmt.Errorf("%w: failed to persist token: %v", ErrInternal, err)
	}
	return nil
}

// ClearToken удаляет токен из памяти и из хранилища
func (c *Client) ClearToken(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.tokenLoaded = true
	c.mu.Unlock()

	if err := c.store.Delete(ctx, domain.StateKeyAuthToken); err != nil {
		return fmt.Errorf("%w: failed to delete token: %v", ErrInternal, err)
	}
	return nil
}

// Login обменивает email и пароль на токен и сохраняет его
func (c *Client) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", ErrInvalidResponse)
	}

	if err := c.SetToken(ctx, resp.Token); err != nil {
		return nil, err
	}

	profile := resp.User.toDomain()
	return &profile, nil
}

// CurrentUser получает профиль по сохранённому токену
func (c *Client) CurrentUser(ctx context.Context) (*domain.UserProfile, error) {
	var user *userDTO
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrEmptyData
	}

	profile := user.toDomain()
	return &profile, nil
}

// ListProducts получает каталог продуктов
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, nil, &resp); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, domain.Product{
			ID:        p.ID,
			Name:      p.Name,
			BasePrice: p.BasePrice,
			IsDefault: p.IsDefault,
			IsActive:  p.IsActive,
		})
	}
	return products, nil
}

// ListBranches получает список филиалов
func (c *Client) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	var resp branchesResponse
	if err := c.do(ctx, http.MethodGet, "/api/branches", nil, nil, &resp); err != nil {
		return nil, err
	}

	branches := make([]domain.Branch, 0, len(resp.Branches))
	for _, b := range resp.Branches {
		branches = append(branches, domain.Branch{
			ID:            b.ID,
			Name:          b.Name,
			Address:       b.Address,
			BranchNumber:  b.BranchNumber,
			EmployeeCount: b.EmployeeCount,
		})
	}
	return branches, nil
}

// CreateBooking отправляет нормализованное бронирование
func (c *Client) CreateBooking(ctx context.Context, payload domain.BookingPayload) (*domain.Booking, error) {
	var created *bookingDTO
	if err := c.do(ctx, http.MethodPost, "/api/bookings", nil, fromDomainPayload(payload), &created); err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrEmptyData
	}

	booking := created.toDomain()
	return &booking, nil
}

// ListBookings получает страницу бронирований
func (c *Client) ListBookings(ctx context.Context, filter domain.BookingsFilter) (*domain.BookingsPage, error) {
	query := url.Values{}
	if filter.BranchID != nil && *filter.BranchID != "" {
		query.Set("branchId", *filter.BranchID)
	}
	if filter.StartDate != nil {
		query.Set("startDate", filter.StartDate.Format(domain.DateFormat))
	}
	if filter.EndDate != nil {
		query.Set("endDate", filter.EndDate.Format(domain.DateFormat))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var resp *bookingsResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookings", query, nil, &resp); err != nil {
		return nil, err
	}

	page := &domain.BookingsPage{
		Bookings: []domain.Booking{},
		Page:     domain.DefaultPage,
		Limit:    domain.DefaultLimit,
	}
	if resp == nil {
		return page, nil
	}

	for i := range resp.Bookings {
		page.Bookings = append(page.Bookings, resp.Bookings[i].toDomain())
	}
	page.Count = intOr(resp.Count, len(page.Bookings))
	page.Total = intOr(resp.Total, len(page.Bookings))
	page.Page = intOr(resp.Page, domain.DefaultPage)
	page.Limit = intOr(resp.Limit, domain.DefaultLimit)

	return page, nil
}

// Health проверяет доступность API
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health *Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &health); err != nil {
		return nil, err
	}
	if health == nil {
		return nil, ErrEmptyData
	}
	return health, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// do выполняет запрос и разбирает конверт {message, data} в out
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body interface{}, out interface{}) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := requestid.Ensure(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, requestID)

	token, hasToken := c.Token(ctx)
	if hasToken {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, endpoint, 0, start)
		c.log.Error("%s %s failed (request_id=%s): %v", method, endpoint, requestID, err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	c.observe(method, endpoint, resp.StatusCode, start)

	// продление токена применяется к любому ответу, не только к логину
	if newToken := resp.Header.Get(headerNewToken); newToken != "" {
		if err := c.SetToken(ctx, newToken); err != nil {
			c.log.Error("%s %s: failed to persist renewed token: %v", method, endpoint, err)
		} else {
			c.log.Info("%s %s: credential renewed by server", method, endpoint)
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, env.Message)
		if resp.StatusCode == http.StatusUnauthorized && hasToken {
			c.dropCredential(ctx)
		}
		c.log.Warn("%s %s returned %d (request_id=%s): %s", method, endpoint, resp.StatusCode, requestID, apiErr.Message)
		return apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if decodeErr != nil {
		return fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, decodeErr)
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}

	return nil
}

// dropCredential сбрасывает токен после 401: истёкший и невалидный токен не различаются
func (c *Client) dropCredential(ctx context.Context) {
	if err := c.ClearToken(ctx); err != nil {
		c.log.Error("failed to clear rejected credential: %v", err)
	}

	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()

	if hook != nil {
		hook()
	}
}

func (c *Client) observe(method, endpoint string, status int, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveUpstream(method, endpoint, status, time.Since(start))
}

// IsUnauthorized проверяет, что API отклонил учётные данные
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
