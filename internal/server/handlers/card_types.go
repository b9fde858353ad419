package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/models"
)

// CardTypeHandler serves the card product catalog.
type CardTypeHandler struct {
	db *gorm.DB // Database handle for catalog queries.
}

// NewCardTypeHandler constructs a card type handler.
func NewCardTypeHandler(db *gorm.DB) *CardTypeHandler {
	return &CardTypeHandler{db: db}
}

// List returns every card type in the catalog.
func (h *CardTypeHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.CardInfo{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", strings.ToLower(status))
	}

	var infos []models.CardInfo
	if errFind := query.Order("id ASC").Find(&infos).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list card types failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cardInfo": infos})
}

// Create inserts a new card type. cardName and cardTypeId are required and
// cardTypeId must be unique across the catalog.
func (h *CardTypeHandler) Create(c *gin.Context) {
	var info models.CardInfo
	if errBind := c.ShouldBindJSON(&info); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	info.CardTypeID = strings.TrimSpace(info.CardTypeID)
	info.CardName = strings.TrimSpace(info.CardName)
	if info.CardName == "" || info.CardTypeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardName and cardTypeId are required"})
		return
	}
	if info.Status == "" {
		info.Status = models.CardInfoStatusOnline
	}

	ctx := c.Request.Context()
	var count int64
	if errCount := h.db.WithContext(ctx).Model(&models.CardInfo{}).
		Where("card_type_id = ?", info.CardTypeID).Count(&count).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create card type failed"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cardTypeId already exists"})
		return
	}

	if errCreate := h.db.WithContext(ctx).Create(&info).Error; errCreate != nil {
		if errors.Is(errCreate, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "cardTypeId already exists"})
			return
		}
		log.WithError(errCreate).Error("create card type")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create card type failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cardInfo": info})
}
