package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/models"
)

// AnalyticsHandler serves dashboard aggregates over wallets and transactions.
type AnalyticsHandler struct {
	db *gorm.DB // Database handle for aggregate queries.
}

// NewAnalyticsHandler constructs an analytics handler.
func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: db}
}

// Stats returns headline totals for the dashboard cards.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var totals struct {
		TotalVolume  float64
		TotalGasFees float64
	}
	if errScan := h.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total_volume, COALESCE(SUM(gas_fee), 0) AS total_gas_fees").
		Where("status = ?", models.TransactionStatusConfirmed).
		Scan(&totals).Error; errScan != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load stats failed"})
		return
	}

	var totalTransactions int64
	if errCount := h.db.WithContext(ctx).Model(&models.Transaction{}).
		Count(&totalTransactions).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load stats failed"})
		return
	}

	var activeWallets int64
	if errCount := h.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("status = ?", models.WalletStatusActive).
		Count(&activeWallets).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load stats failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalVolume":       totals.TotalVolume,
		"totalTransactions": totalTransactions,
		"activeWallets":     activeWallets,
		"totalGasFees":      totals.TotalGasFees,
	})
}

// volumeBucket is one month of confirmed transaction volume.
type volumeBucket struct {
	Month  string  `json:"month"`  // YYYY-MM label.
	Volume float64 `json:"volume"` // Confirmed amount total for the month.
	Count  int64   `json:"count"`  // Confirmed transaction count for the month.
}

// Volume returns monthly confirmed volume for the chart. The period query
// parameter selects the window; only "6months" and "12months" are recognized
// and the default is six months. Bucketing happens in Go so the query stays
// portable across sqlite and postgres.
func (h *AnalyticsHandler) Volume(c *gin.Context) {
	months := 6
	if period := strings.TrimSpace(c.Query("period")); period == "12months" {
		months = 12
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	var txs []models.Transaction
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("status = ? AND timestamp >= ?", models.TransactionStatusConfirmed, start).
		Order("timestamp ASC").
		Find(&txs).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load volume failed"})
		return
	}

	buckets := make([]volumeBucket, months)
	index := make(map[string]int, months)
	for i := range buckets {
		month := start.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = volumeBucket{Month: month}
		index[month] = i
	}
	for _, tx := range txs {
		if i, ok := index[tx.Timestamp.UTC().Format("2006-01")]; ok {
			buckets[i].Volume += tx.Amount
			buckets[i].Count++
		}
	}

	c.JSON(http.StatusOK, gin.H{"volume": buckets})
}

// TopWallets returns the highest-balance wallets. limit defaults to 5.
func (h *AnalyticsHandler) TopWallets(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 5)

	var wallets []models.Wallet
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("balance DESC").
		Limit(limit).
		Find(&wallets).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load top wallets failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallets": wallets})
}

// RecentTransactions returns the newest transactions. limit defaults to 10.
func (h *AnalyticsHandler) RecentTransactions(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 10)

	var txs []models.Transaction
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("timestamp DESC").
		Limit(limit).
		Find(&txs).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load recent transactions failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// parseLimit parses a positive limit, falling back to def on junk input.
func parseLimit(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	limit, errAtoi := strconv.Atoi(raw)
	if errAtoi != nil || limit <= 0 {
		return def
	}
	return limit
}
