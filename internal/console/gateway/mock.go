package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/devendraInfograins/CardApp/internal/fixtures"
	"github.com/devendraInfograins/CardApp/internal/models"
)

// MockTransport serves the fixture dataset without a backend. It implements
// http.RoundTripper so the console can run in demo mode via WithTransport.
type MockTransport struct {
	mu       sync.Mutex
	requests []models.CardRequest
	infos    []models.CardInfo
}

// NewMockTransport builds a transport preloaded with the fixture dataset.
// Records get sequential IDs the way the backend's database would assign
// them.
func NewMockTransport() *MockTransport {
	m := &MockTransport{
		requests: fixtures.CardRequests(),
		infos:    fixtures.CardInfos(),
	}
	for i := range m.requests {
		m.requests[i].ID = uint64(i + 1)
	}
	for i := range m.infos {
		m.infos[i].ID = uint64(i + 1)
	}
	return m
}

// RoundTrip serves the request from fixture data.
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && path == "/admin/login":
		return m.login(req)
	case req.Method == http.MethodPost && path == "/auth/logout":
		return jsonResponse(req, http.StatusOK, map[string]any{"status": "ok"})
	case path == "/admin/card-holder-list":
		return jsonResponse(req, http.StatusOK, map[string]any{"cardHolders": fixtures.CardHolders()})
	case path == "/admin/card-request-list":
		m.mu.Lock()
		list := append([]models.CardRequest(nil), m.requests...)
		m.mu.Unlock()
		return jsonResponse(req, http.StatusOK, map[string]any{"reqList": list})
	case req.Method == http.MethodPost && path == "/admin/approveCardRequest":
		return m.approve(req)
	case path == "/admin/cardInfoList":
		m.mu.Lock()
		list := append([]models.CardInfo(nil), m.infos...)
		m.mu.Unlock()
		return jsonResponse(req, http.StatusOK, map[string]any{"cardInfo": list})
	case req.Method == http.MethodPost && path == "/admin/createCardInfo":
		return m.createCardInfo(req)
	case path == "/wallets", path == "/analytics/top-wallets":
		return jsonResponse(req, http.StatusOK, map[string]any{"wallets": fixtures.Wallets()})
	case path == "/transactions", path == "/analytics/recent-transactions":
		return jsonResponse(req, http.StatusOK, map[string]any{"transactions": fixtures.Transactions()})
	case path == "/analytics/stats":
		return jsonResponse(req, http.StatusOK, mockStats())
	case path == "/analytics/volume":
		return jsonResponse(req, http.StatusOK, map[string]any{"volume": []VolumePoint{}})
	default:
		return jsonResponse(req, http.StatusNotFound, map[string]any{"error": "not found"})
	}
}

// login accepts the fixture admin credentials.
func (m *MockTransport) login(req *http.Request) (*http.Response, error) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if errDecode := json.NewDecoder(req.Body).Decode(&body); errDecode != nil {
		return jsonResponse(req, http.StatusBadRequest, map[string]any{"error": "invalid json"})
	}
	if body.Email != "admin@blockchain.com" || body.Password != "admin123" {
		return jsonResponse(req, http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
	}
	return jsonResponse(req, http.StatusOK, map[string]any{
		"token": "mock-token",
		"user":  AdminUser{ID: 1, Email: body.Email, Name: "Platform Admin", Role: "Admin"},
	})
}

// approve applies the PENDING-only transition against the in-memory queue.
func (m *MockTransport) approve(req *http.Request) (*http.Response, error) {
	var payload ApprovePayload
	if errDecode := json.NewDecoder(req.Body).Decode(&payload); errDecode != nil {
		return jsonResponse(req, http.StatusBadRequest, map[string]any{"error": "invalid json"})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.requests {
		request := &m.requests[i]
		byID := payload.CardRequestID != 0 && request.ID == payload.CardRequestID
		byOrderNo := payload.MerchantOrderNo != "" && request.MerchantOrderNo == payload.MerchantOrderNo
		if !byID && !byOrderNo {
			continue
		}
		if request.Status != models.CardRequestStatusPending {
			return jsonResponse(req, http.StatusConflict, map[string]any{"error": "card request is not pending"})
		}
		cardNumber := payload.CardNumber
		if cardNumber == "" {
			cardNumber = "4111000000000000"
		}
		request.Status = models.CardRequestStatusApproved
		request.CardID = cardNumber
		request.CardNumber = cardNumber
		request.CardStatus = "active"
		return jsonResponse(req, http.StatusOK, map[string]any{"cardRequest": *request})
	}
	return jsonResponse(req, http.StatusNotFound, map[string]any{"error": "card request not found"})
}

// createCardInfo appends to the in-memory catalog, enforcing cardTypeId
// uniqueness like the backend.
func (m *MockTransport) createCardInfo(req *http.Request) (*http.Response, error) {
	var info models.CardInfo
	if errDecode := json.NewDecoder(req.Body).Decode(&info); errDecode != nil {
		return jsonResponse(req, http.StatusBadRequest, map[string]any{"error": "invalid json"})
	}
	if strings.TrimSpace(info.CardName) == "" || strings.TrimSpace(info.CardTypeID) == "" {
		return jsonResponse(req, http.StatusBadRequest, map[string]any{"error": "cardName and cardTypeId are required"})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.infos {
		if existing.CardTypeID == info.CardTypeID {
			return jsonResponse(req, http.StatusConflict, map[string]any{"error": "cardTypeId already exists"})
		}
	}
	info.ID = uint64(len(m.infos) + 1)
	if info.Status == "" {
		info.Status = models.CardInfoStatusOnline
	}
	m.infos = append(m.infos, info)
	return jsonResponse(req, http.StatusOK, map[string]any{"cardInfo": info})
}

// mockStats aggregates the fixture transactions and wallets.
func mockStats() DashboardStats {
	var stats DashboardStats
	for _, tx := range fixtures.Transactions() {
		stats.TotalTransactions++
		if tx.Status == models.TransactionStatusConfirmed {
			stats.TotalVolume += tx.Amount
			stats.TotalGasFees += tx.GasFee
		}
	}
	for _, w := range fixtures.Wallets() {
		if w.Status == models.WalletStatusActive {
			stats.ActiveWallets++
		}
	}
	return stats
}

// jsonResponse builds an *http.Response carrying a JSON body.
func jsonResponse(req *http.Request, status int, body any) (*http.Response, error) {
	data, errMarshal := json.Marshal(body)
	if errMarshal != nil {
		return nil, errMarshal
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(data)),
		Request:    req,
	}, nil
}
