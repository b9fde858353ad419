package handlers

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/models"
	"github.com/devendraInfograins/CardApp/internal/util"
)

// CardRequestHandler serves card request listing and approval.
type CardRequestHandler struct {
	db *gorm.DB // Database handle for request queries.
}

// NewCardRequestHandler constructs a card request handler.
func NewCardRequestHandler(db *gorm.DB) *CardRequestHandler {
	return &CardRequestHandler{db: db}
}

// List returns all card requests, newest first.
func (h *CardRequestHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.CardRequest{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", strings.ToUpper(status))
	}

	var requests []models.CardRequest
	if errFind := query.Order("created_at DESC").Find(&requests).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list card requests failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reqList": requests})
}

// approveCardRequest defines the approval payload. cardNumber is optional;
// the server assigns one when the operator leaves it empty.
type approveCardRequest struct {
	CardRequestID   uint64 `json:"cardRequestId"`
	MerchantOrderNo string `json:"merchantOrderNo"`
	HolderID        uint64 `json:"holderId"`
	CardTypeID      string `json:"cardTypeId"`
	Amount          string `json:"amount"`
	CardNumber      string `json:"cardNumber"`
}

// Approve transitions a PENDING card request to APPROVED, assigning the card
// identifier. Requests in any other status are rejected without mutation.
func (h *CardRequestHandler) Approve(c *gin.Context) {
	var body approveCardRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.CardRequestID == 0 && strings.TrimSpace(body.MerchantOrderNo) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardRequestId or merchantOrderNo is required"})
		return
	}

	cardNumber := strings.TrimSpace(body.CardNumber)
	if cardNumber == "" {
		generated, errGen := generateCardNumber()
		if errGen != nil {
			log.WithError(errGen).Error("generate card number")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "card number generation failed"})
			return
		}
		cardNumber = generated
	}

	var approved models.CardRequest
	errTx := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.CardRequest{})
		if body.CardRequestID != 0 {
			query = query.Where("id = ?", body.CardRequestID)
		} else {
			query = query.Where("merchant_order_no = ?", strings.TrimSpace(body.MerchantOrderNo))
		}

		var request models.CardRequest
		if errFind := query.First(&request).Error; errFind != nil {
			return errFind
		}
		if request.Status != models.CardRequestStatusPending {
			return errNotPending
		}

		request.Status = models.CardRequestStatusApproved
		request.CardID = cardNumber
		request.CardNumber = cardNumber
		request.CardStatus = "active"
		if errSave := tx.Save(&request).Error; errSave != nil {
			return errSave
		}
		approved = request
		return nil
	})

	switch {
	case errTx == nil:
		log.Infof("card request %d approved with card %s", approved.ID, util.MaskCardNumber(cardNumber))
		c.JSON(http.StatusOK, gin.H{"cardRequest": approved})
	case errors.Is(errTx, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "card request not found"})
	case errors.Is(errTx, errNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "card request is not pending"})
	default:
		log.WithError(errTx).Error("approve card request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "approve card request failed"})
	}
}

// errNotPending signals an approval attempt on a non-PENDING request.
var errNotPending = errors.New("card request is not pending")

// generateCardNumber produces a 16-digit card number with a fixed test BIN.
func generateCardNumber() (string, error) {
	const prefix = "4111"
	digits := make([]byte, 0, 16)
	digits = append(digits, prefix...)
	for len(digits) < 16 {
		n, errRand := rand.Int(rand.Reader, big.NewInt(10))
		if errRand != nil {
			return "", errRand
		}
		digits = append(digits, byte('0'+n.Int64()))
	}
	return string(digits), nil
}
