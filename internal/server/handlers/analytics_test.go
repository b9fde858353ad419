package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/models"
)

func newAnalyticsRouter(db *gorm.DB) *gin.Engine {
	handler := NewAnalyticsHandler(db)
	router := gin.New()
	router.GET("/analytics/stats", handler.Stats)
	router.GET("/analytics/volume", handler.Volume)
	router.GET("/analytics/top-wallets", handler.TopWallets)
	router.GET("/analytics/recent-transactions", handler.RecentTransactions)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string, out any) {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("GET %s: expected status 200, got %d", path, recorder.Code)
	}
	if errDecode := json.Unmarshal(recorder.Body.Bytes(), out); errDecode != nil {
		t.Fatalf("GET %s: decode: %v", path, errDecode)
	}
}

func TestStatsAggregatesConfirmedTransactions(t *testing.T) {
	db := setupHandlerDB(t)
	now := time.Now().UTC()
	txs := []models.Transaction{
		{TxHash: "0xaaa", FromAddress: "0x1", ToAddress: "0x2", Amount: 100, GasFee: 1, Type: "transfer", Status: models.TransactionStatusConfirmed, Timestamp: now},
		{TxHash: "0xbbb", FromAddress: "0x1", ToAddress: "0x3", Amount: 50, GasFee: 0.5, Type: "swap", Status: models.TransactionStatusConfirmed, Timestamp: now},
		{TxHash: "0xccc", FromAddress: "0x2", ToAddress: "0x3", Amount: 999, GasFee: 9, Type: "transfer", Status: models.TransactionStatusPending, Timestamp: now},
	}
	if errCreate := db.Create(&txs).Error; errCreate != nil {
		t.Fatalf("create transactions: %v", errCreate)
	}
	wallets := []models.Wallet{
		{Address: "0x1", Owner: "a", Network: "Ethereum", Balance: 10, Type: "Hot", Status: models.WalletStatusActive},
		{Address: "0x2", Owner: "b", Network: "Ethereum", Balance: 20, Type: "Cold", Status: models.WalletStatusLocked},
	}
	if errCreate := db.Create(&wallets).Error; errCreate != nil {
		t.Fatalf("create wallets: %v", errCreate)
	}

	router := newAnalyticsRouter(db)
	var stats struct {
		TotalVolume       float64 `json:"totalVolume"`
		TotalTransactions int64   `json:"totalTransactions"`
		ActiveWallets     int64   `json:"activeWallets"`
		TotalGasFees      float64 `json:"totalGasFees"`
	}
	getJSON(t, router, "/analytics/stats", &stats)

	if stats.TotalVolume != 150 {
		t.Fatalf("expected confirmed volume 150, got %v", stats.TotalVolume)
	}
	if stats.TotalTransactions != 3 {
		t.Fatalf("expected 3 transactions, got %d", stats.TotalTransactions)
	}
	if stats.ActiveWallets != 1 {
		t.Fatalf("expected 1 active wallet, got %d", stats.ActiveWallets)
	}
	if stats.TotalGasFees != 1.5 {
		t.Fatalf("expected gas fees 1.5, got %v", stats.TotalGasFees)
	}
}

func TestVolumeBucketsSixMonths(t *testing.T) {
	db := setupHandlerDB(t)
	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 15, 12, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	txs := []models.Transaction{
		{TxHash: "0x1", FromAddress: "0xa", ToAddress: "0xb", Amount: 10, Type: "transfer", Status: models.TransactionStatusConfirmed, Timestamp: thisMonth},
		{TxHash: "0x2", FromAddress: "0xa", ToAddress: "0xb", Amount: 20, Type: "transfer", Status: models.TransactionStatusConfirmed, Timestamp: thisMonth},
		{TxHash: "0x3", FromAddress: "0xa", ToAddress: "0xb", Amount: 5, Type: "transfer", Status: models.TransactionStatusConfirmed, Timestamp: lastMonth},
		{TxHash: "0x4", FromAddress: "0xa", ToAddress: "0xb", Amount: 999, Type: "transfer", Status: models.TransactionStatusFailed, Timestamp: thisMonth},
	}
	if errCreate := db.Create(&txs).Error; errCreate != nil {
		t.Fatalf("create transactions: %v", errCreate)
	}

	router := newAnalyticsRouter(db)
	var resp struct {
		Volume []struct {
			Month  string  `json:"month"`
			Volume float64 `json:"volume"`
			Count  int64   `json:"count"`
		} `json:"volume"`
	}
	getJSON(t, router, "/analytics/volume?period=6months", &resp)

	if len(resp.Volume) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(resp.Volume))
	}
	last := resp.Volume[len(resp.Volume)-1]
	if last.Month != thisMonth.Format("2006-01") {
		t.Fatalf("expected last bucket %s, got %s", thisMonth.Format("2006-01"), last.Month)
	}
	if last.Volume != 30 || last.Count != 2 {
		t.Fatalf("expected current bucket volume=30 count=2, got volume=%v count=%d", last.Volume, last.Count)
	}
	previous := resp.Volume[len(resp.Volume)-2]
	if previous.Volume != 5 || previous.Count != 1 {
		t.Fatalf("expected previous bucket volume=5 count=1, got volume=%v count=%d", previous.Volume, previous.Count)
	}
}

func TestTopWalletsOrdersByBalanceAndHonorsLimit(t *testing.T) {
	db := setupHandlerDB(t)
	for i := 0; i < 8; i++ {
		wallet := models.Wallet{
			Address: fmt.Sprintf("0x%02d", i),
			Owner:   fmt.Sprintf("owner-%d", i),
			Network: "Ethereum",
			Balance: float64(i * 10),
			Type:    "Hot",
			Status:  models.WalletStatusActive,
		}
		if errCreate := db.Create(&wallet).Error; errCreate != nil {
			t.Fatalf("create wallet: %v", errCreate)
		}
	}

	router := newAnalyticsRouter(db)
	var resp struct {
		Wallets []models.Wallet `json:"wallets"`
	}
	getJSON(t, router, "/analytics/top-wallets", &resp)
	if len(resp.Wallets) != 5 {
		t.Fatalf("expected default limit 5, got %d", len(resp.Wallets))
	}
	if resp.Wallets[0].Balance != 70 {
		t.Fatalf("expected highest balance first, got %v", resp.Wallets[0].Balance)
	}

	getJSON(t, router, "/analytics/top-wallets?limit=3", &resp)
	if len(resp.Wallets) != 3 {
		t.Fatalf("expected limit 3, got %d", len(resp.Wallets))
	}
}

func TestRecentTransactionsNewestFirst(t *testing.T) {
	db := setupHandlerDB(t)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		tx := models.Transaction{
			TxHash:      fmt.Sprintf("0xrec%02d", i),
			FromAddress: "0xa",
			ToAddress:   "0xb",
			Amount:      float64(i),
			Type:        "transfer",
			Status:      models.TransactionStatusConfirmed,
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}
		if errCreate := db.Create(&tx).Error; errCreate != nil {
			t.Fatalf("create transaction: %v", errCreate)
		}
	}

	router := newAnalyticsRouter(db)
	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	getJSON(t, router, "/analytics/recent-transactions", &resp)

	if len(resp.Transactions) != 10 {
		t.Fatalf("expected default limit 10, got %d", len(resp.Transactions))
	}
	if resp.Transactions[0].TxHash != "0xrec11" {
		t.Fatalf("expected newest transaction first, got %s", resp.Transactions[0].TxHash)
	}
}
