package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/devendraInfograins/CardApp/internal/config"
	"github.com/devendraInfograins/CardApp/internal/console/session"
	"github.com/devendraInfograins/CardApp/internal/models"
)

func cardInfoFixture() models.CardInfo {
	return models.CardInfo{CardTypeID: "111053", CardName: "Physical Visa"}
}

func newTestSession(t *testing.T) *session.Store {
	t.Helper()
	store, errStore := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if errStore != nil {
		t.Fatalf("new session store: %v", errStore)
	}
	return store
}

func newTestClient(t *testing.T, backend *httptest.Server, sess *session.Store, opts ...Option) *Client {
	t.Helper()
	return NewClient(config.APIConfig{BaseURL: backend.URL}, sess, opts...)
}

func TestClientInjectsBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"wallets": []}`))
	}))
	defer backend.Close()

	sess := newTestSession(t)
	if errSet := sess.Set(session.KeyToken, "tok-123"); errSet != nil {
		t.Fatalf("set token: %v", errSet)
	}
	client := newTestClient(t, backend, sess)

	if _, errCall := client.Wallets(context.Background(), "", ""); errCall != nil {
		t.Fatalf("wallets: %v", errCall)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestUnauthorizedClearsSessionAndFiresHookOnce(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "token revoked"}`))
	}))
	defer backend.Close()

	sess := newTestSession(t)
	if errSet := sess.Set(session.KeyToken, "stale"); errSet != nil {
		t.Fatalf("set token: %v", errSet)
	}
	hookCalls := 0
	client := newTestClient(t, backend, sess, WithUnauthorizedHandler(func() { hookCalls++ }))

	for i := 0; i < 3; i++ {
		_, errCall := client.CardHolders(context.Background())
		apiErr, ok := errCall.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %T (%v)", errCall, errCall)
		}
		if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "token revoked" {
			t.Fatalf("unexpected api error: %+v", apiErr)
		}
	}

	if sess.Get(session.KeyToken) != "" {
		t.Fatal("expected session token cleared after 401")
	}
	if hookCalls != 1 {
		t.Fatalf("expected unauthorized hook to fire once, got %d", hookCalls)
	}
}

func TestFetchListFallsBackAcrossEnvelopeKeys(t *testing.T) {
	bodies := map[string]string{
		"/admin/cardInfoList": `{"cardInfoList": [{"cardTypeId": "111053"}]}`,
		"/wallets":            `{"data": [{"address": "0x1"}]}`,
		"/transactions":       `{"unexpected": true}`,
	}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bodies[r.URL.Path]))
	}))
	defer backend.Close()

	client := newTestClient(t, backend, newTestSession(t))
	ctx := context.Background()

	infos, errInfos := client.CardTypes(ctx)
	if errInfos != nil {
		t.Fatalf("card types: %v", errInfos)
	}
	if len(infos) != 1 || infos[0].CardTypeID != "111053" {
		t.Fatalf("expected legacy cardInfoList key unwrapped, got %+v", infos)
	}

	wallets, errWallets := client.Wallets(ctx, "", "")
	if errWallets != nil {
		t.Fatalf("wallets: %v", errWallets)
	}
	if len(wallets) != 1 || wallets[0].Address != "0x1" {
		t.Fatalf("expected data key fallback, got %+v", wallets)
	}

	txs, errTxs := client.Transactions(ctx, "", "")
	if errTxs != nil {
		t.Fatalf("transactions: %v", errTxs)
	}
	if txs == nil || len(txs) != 0 {
		t.Fatalf("expected empty non-nil slice for missing envelope, got %+v", txs)
	}
}

func TestBackendErrorBecomesAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "cardTypeId already exists"}`))
	}))
	defer backend.Close()

	client := newTestClient(t, backend, newTestSession(t))
	_, errCall := client.CreateCardType(context.Background(), cardInfoFixture())
	apiErr, ok := errCall.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T (%v)", errCall, errCall)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "cardTypeId already exists" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestLoginStoresTokenAndProfile(t *testing.T) {
	sess := newTestSession(t)
	client := NewClient(config.APIConfig{}, sess, WithTransport(NewMockTransport()))

	user, errLogin := client.Login(context.Background(), "admin@blockchain.com", "admin123", "")
	if errLogin != nil {
		t.Fatalf("login: %v", errLogin)
	}
	if user.Email != "admin@blockchain.com" || user.Role != "Admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sess.Get(session.KeyToken) == "" {
		t.Fatal("expected token stored in session")
	}
	if sess.Get(session.KeyAdminUser) == "" {
		t.Fatal("expected admin profile stored in session")
	}
}

func TestMockTransportApproveFollowsPendingRule(t *testing.T) {
	sess := newTestSession(t)
	client := NewClient(config.APIConfig{}, sess, WithTransport(NewMockTransport()))
	ctx := context.Background()

	requests, errList := client.CardRequests(ctx)
	if errList != nil {
		t.Fatalf("card requests: %v", errList)
	}
	if len(requests) == 0 {
		t.Fatal("expected fixture card requests")
	}

	var pendingID uint64
	var approvedID uint64
	for _, request := range requests {
		switch request.Status {
		case "PENDING":
			if pendingID == 0 {
				pendingID = request.ID
			}
		case "APPROVED":
			if approvedID == 0 {
				approvedID = request.ID
			}
		}
	}
	if pendingID == 0 || approvedID == 0 {
		t.Fatal("expected both pending and approved fixtures")
	}

	updated, errApprove := client.ApproveCardRequest(ctx, ApprovePayload{CardRequestID: pendingID})
	if errApprove != nil {
		t.Fatalf("approve pending: %v", errApprove)
	}
	if updated.Status != "APPROVED" || updated.CardNumber == "" {
		t.Fatalf("expected approved request with card number, got %+v", updated)
	}

	_, errConflict := client.ApproveCardRequest(ctx, ApprovePayload{CardRequestID: approvedID})
	apiErr, ok := errConflict.(*APIError)
	if !ok || apiErr.Status != http.StatusConflict {
		t.Fatalf("expected 409 for non-pending request, got %v", errConflict)
	}
}
