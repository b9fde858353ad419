// Package gateway is the console's HTTP client for the admin backend. It
// injects the session bearer token, normalizes the backend's uneven response
// envelopes and converts failures into APIError values the views can show.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/devendraInfograins/CardApp/internal/config"
	"github.com/devendraInfograins/CardApp/internal/console/session"
	"github.com/devendraInfograins/CardApp/internal/models"
)

// APIError is a failed backend call. Status is zero when the request never
// reached the backend.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("gateway: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("gateway: %s", e.Message)
}

// Option configures a Client.
type Option func(*Client)

// WithTransport overrides the underlying round tripper. Used to point the
// client at fixtures or a test server.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

// WithUnauthorizedHandler registers fn to run once when the backend first
// rejects the session token.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client talks to the admin backend on behalf of the console.
type Client struct {
	baseURL        string
	http           *http.Client
	session        *session.Store
	onUnauthorized func()
	unauthOnce     sync.Once
}

// NewClient constructs a gateway client. sess supplies the bearer token and
// is cleared when the backend rejects it.
func NewClient(cfg config.APIConfig, sess *session.Store, opts ...Option) *Client {
	timeout := cfg.Timeout.Std()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		session: sess,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AdminUser is the signed-in admin profile returned by login.
type AdminUser struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// loginResponse is the backend's login envelope.
type loginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// Login authenticates against the backend and stores the issued token and
// admin profile in the session.
func (c *Client) Login(ctx context.Context, email, password, totpCode string) (*AdminUser, error) {
	body := map[string]string{"email": email, "password": password}
	if totpCode != "" {
		body["totpCode"] = totpCode
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, body, &resp); err != nil {
		return nil, err
	}

	if errSet := c.session.Set(session.KeyToken, resp.Token); errSet != nil {
		return nil, errSet
	}
	profile, _ := json.Marshal(resp.User)
	if errSet := c.session.Set(session.KeyAdminUser, string(profile)); errSet != nil {
		return nil, errSet
	}
	return &resp.User, nil
}

// Logout revokes the session token on the backend and clears the session.
// The session is cleared even when the backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	errCall := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if errClear := c.session.Clear(); errClear != nil {
		return errClear
	}
	return errCall
}

// CardHolders fetches the KYC card holder list.
func (c *Client) CardHolders(ctx context.Context) ([]models.CardHolder, error) {
	return fetchList[models.CardHolder](ctx, c, "/admin/card-holder-list", nil, "cardHolders")
}

// CardRequests fetches the card request queue.
func (c *Client) CardRequests(ctx context.Context) ([]models.CardRequest, error) {
	return fetchList[models.CardRequest](ctx, c, "/admin/card-request-list", nil, "reqList")
}

// ApprovePayload is the approval request body. CardNumber may be left empty
// to let the backend assign one.
type ApprovePayload struct {
	CardRequestID   uint64 `json:"cardRequestId"`
	MerchantOrderNo string `json:"merchantOrderNo"`
	HolderID        uint64 `json:"holderId"`
	CardTypeID      string `json:"cardTypeId"`
	Amount          string `json:"amount"`
	CardNumber      string `json:"cardNumber,omitempty"`
}

// ApproveCardRequest submits an approval and returns the updated request.
func (c *Client) ApproveCardRequest(ctx context.Context, payload ApprovePayload) (*models.CardRequest, error) {
	var envelope struct {
		CardRequest models.CardRequest `json:"cardRequest"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/approveCardRequest", nil, payload, &envelope); err != nil {
		return nil, err
	}
	return &envelope.CardRequest, nil
}

// CardTypes fetches the card product catalog.
func (c *Client) CardTypes(ctx context.Context) ([]models.CardInfo, error) {
	return fetchList[models.CardInfo](ctx, c, "/admin/cardInfoList", nil, "cardInfo", "cardInfoList")
}

// CreateCardType adds a card product to the catalog.
func (c *Client) CreateCardType(ctx context.Context, info models.CardInfo) (*models.CardInfo, error) {
	var envelope struct {
		CardInfo models.CardInfo `json:"cardInfo"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/createCardInfo", nil, info, &envelope); err != nil {
		return nil, err
	}
	return &envelope.CardInfo, nil
}

// Wallets fetches platform wallets, optionally narrowed by network or status.
func (c *Client) Wallets(ctx context.Context, network, status string) ([]models.Wallet, error) {
	query := url.Values{}
	if network != "" {
		query.Set("network", network)
	}
	if status != "" {
		query.Set("status", status)
	}
	return fetchList[models.Wallet](ctx, c, "/wallets", query, "wallets")
}

// Transactions fetches on-chain transactions, optionally narrowed by type or
// status.
func (c *Client) Transactions(ctx context.Context, txType, status string) ([]models.Transaction, error) {
	query := url.Values{}
	if txType != "" {
		query.Set("type", txType)
	}
	if status != "" {
		query.Set("status", status)
	}
	return fetchList[models.Transaction](ctx, c, "/transactions", query, "transactions")
}

// DashboardStats holds the headline totals shown on the dashboard.
type DashboardStats struct {
	TotalVolume       float64 `json:"totalVolume"`
	TotalTransactions int64   `json:"totalTransactions"`
	ActiveWallets     int64   `json:"activeWallets"`
	TotalGasFees      float64 `json:"totalGasFees"`
}

// Stats fetches the dashboard totals.
func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/analytics/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// VolumePoint is one month of confirmed transaction volume.
type VolumePoint struct {
	Month  string  `json:"month"`
	Volume float64 `json:"volume"`
	Count  int64   `json:"count"`
}

// Volume fetches the monthly volume series. period may be "6months" or
// "12months"; empty means the backend default.
func (c *Client) Volume(ctx context.Context, period string) ([]VolumePoint, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	return fetchList[VolumePoint](ctx, c, "/analytics/volume", query, "volume")
}

// TopWallets fetches the highest-balance wallets.
func (c *Client) TopWallets(ctx context.Context, limit int) ([]models.Wallet, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return fetchList[models.Wallet](ctx, c, "/analytics/top-wallets", query, "wallets")
}

// RecentTransactions fetches the newest transactions.
func (c *Client) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return fetchList[models.Transaction](ctx, c, "/analytics/recent-transactions", query, "transactions")
}

// fetchList fetches path and unwraps the first envelope key that is present.
// The backend is not uniform about envelope naming, so callers list the
// expected key plus any legacy fallbacks; "data" is always tried last. A
// missing key yields an empty slice rather than an error.
func fetchList[T any](ctx context.Context, c *Client, path string, query url.Values, keys ...string) ([]T, error) {
	var raw map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}

	keys = append(keys, "data")
	for _, key := range keys {
		payload, ok := raw[key]
		if !ok {
			continue
		}
		var items []T
		if errUnmarshal := json.Unmarshal(payload, &items); errUnmarshal != nil {
			return nil, &APIError{Message: fmt.Sprintf("malformed %s payload", key)}
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	return []T{}, nil
}

// do performs one backend call. Non-2xx responses become *APIError; a 401
// additionally clears the session and fires the unauthorized hook once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return fmt.Errorf("gateway: encode request: %w", errMarshal)
		}
		reader = bytes.NewReader(encoded)
	}

	req, errReq := http.NewRequestWithContext(ctx, method, target, reader)
	if errReq != nil {
		return fmt.Errorf("gateway: build request: %w", errReq)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Get(session.KeyToken); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, errDo := c.http.Do(req)
	if errDo != nil {
		return &APIError{Message: errDo.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	data, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return &APIError{Status: resp.StatusCode, Message: "read response failed"}
	}

	if resp.StatusCode == http.StatusUnauthorized && path != "/admin/login" {
		_ = c.session.Clear()
		if c.onUnauthorized != nil {
			c.unauthOnce.Do(c.onUnauthorized)
		}
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if errUnmarshal := json.Unmarshal(data, out); errUnmarshal != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

// errorMessage extracts the backend error text from a failure body.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if errUnmarshal := json.Unmarshal(data, &body); errUnmarshal == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return "request failed"
}
