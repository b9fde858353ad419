package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbutil "github.com/devendraInfograins/CardApp/internal/db"
	"github.com/devendraInfograins/CardApp/internal/models"
)

// TransactionHandler serves read-only on-chain transaction listings.
type TransactionHandler struct {
	db *gorm.DB // Database handle for transaction queries.
}

// NewTransactionHandler constructs a transaction handler.
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// List returns transactions newest first. Optional type, status, search and
// limit query parameters narrow the result.
func (h *TransactionHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.Transaction{})

	if txType := strings.TrimSpace(c.Query("type")); txType != "" {
		query = query.Where("type = ?", txType)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", strings.ToLower(status))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := dbutil.NormalizeLikePattern(h.db, "%"+search+"%")
		query = query.Where(
			h.db.Where(dbutil.CaseInsensitiveLikeExpr(h.db, "tx_hash"), pattern).
				Or(dbutil.CaseInsensitiveLikeExpr(h.db, "from_address"), pattern).
				Or(dbutil.CaseInsensitiveLikeExpr(h.db, "to_address"), pattern),
		)
	}
	if limitRaw := strings.TrimSpace(c.Query("limit")); limitRaw != "" {
		if limit, errAtoi := strconv.Atoi(limitRaw); errAtoi == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	var txs []models.Transaction
	if errFind := query.Order("timestamp DESC").Find(&txs).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list transactions failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}
