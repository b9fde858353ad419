package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbutil "github.com/devendraInfograins/CardApp/internal/db"
	"github.com/devendraInfograins/CardApp/internal/models"
)

// CardHolderHandler serves read-only KYC card holder listings.
type CardHolderHandler struct {
	db *gorm.DB // Database handle for holder queries.
}

// NewCardHolderHandler constructs a card holder handler.
func NewCardHolderHandler(db *gorm.DB) *CardHolderHandler {
	return &CardHolderHandler{db: db}
}

// List returns all card holders, newest first. An optional kycStatus query
// parameter narrows by verification state.
func (h *CardHolderHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.CardHolder{})

	if status := strings.TrimSpace(c.Query("kycStatus")); status != "" {
		query = query.Where("kyc_status = ?", strings.ToUpper(status))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := dbutil.NormalizeLikePattern(h.db, "%"+search+"%")
		query = query.Where(
			h.db.Where(dbutil.CaseInsensitiveLikeExpr(h.db, "first_name"), pattern).
				Or(dbutil.CaseInsensitiveLikeExpr(h.db, "last_name"), pattern).
				Or(dbutil.CaseInsensitiveLikeExpr(h.db, "email"), pattern),
		)
	}

	var holders []models.CardHolder
	if errFind := query.Order("created_at DESC").Find(&holders).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list card holders failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cardHolders": holders})
}
