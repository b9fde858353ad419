package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbutil "github.com/devendraInfograins/CardApp/internal/db"
	"github.com/devendraInfograins/CardApp/internal/models"
)

// WalletHandler serves read-only wallet listings.
type WalletHandler struct {
	db *gorm.DB // Database handle for wallet queries.
}

// NewWalletHandler constructs a wallet handler.
func NewWalletHandler(db *gorm.DB) *WalletHandler {
	return &WalletHandler{db: db}
}

// List returns wallets ordered by balance, highest first. Optional network,
// status and search query parameters narrow the result.
func (h *WalletHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.Wallet{})

	if network := strings.TrimSpace(c.Query("network")); network != "" {
		query = query.Where("network = ?", network)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", strings.ToLower(status))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := dbutil.NormalizeLikePattern(h.db, "%"+search+"%")
		query = query.Where(
			h.db.Where(dbutil.CaseInsensitiveLikeExpr(h.db, "address"), pattern).
				Or(dbutil.CaseInsensitiveLikeExpr(h.db, "owner"), pattern),
		)
	}

	var wallets []models.Wallet
	if errFind := query.Order("balance DESC").Find(&wallets).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list wallets failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallets": wallets})
}
