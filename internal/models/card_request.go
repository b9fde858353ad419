package models

import "time"

// Card request statuses. The console only ever moves PENDING forward;
// PROCESSING and REJECTED are set by backend-side logic.
const (
	// CardRequestStatusPending marks a request awaiting approval.
	CardRequestStatusPending = "PENDING"
	// CardRequestStatusProcessing marks a request the issuer is working on.
	CardRequestStatusProcessing = "PROCESSING"
	// CardRequestStatusApproved marks a request with an assigned card.
	CardRequestStatusApproved = "APPROVED"
	// CardRequestStatusRejected marks a declined request.
	CardRequestStatusRejected = "REJECTED"
)

// CardRequest is an operator-initiated request to issue a card to a holder.
type CardRequest struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	MerchantOrderNo string `gorm:"type:text;not null;uniqueIndex" json:"merchantOrderNo"` // Unique per request.

	CardHolderID uint64 `gorm:"not null;index" json:"holderId"`       // Holder the card is for.
	CardTypeID   string `gorm:"type:text;not null" json:"cardTypeId"` // Card type template.
	Amount       string `gorm:"type:text;not null;default:'0'" json:"amount"`

	CardID     string `gorm:"type:text" json:"cardId"`     // Empty until assigned.
	CardNumber string `gorm:"type:text" json:"cardNumber"` // Empty until assigned.

	Status     string `gorm:"type:text;not null;default:'PENDING';index" json:"status"`
	CardStatus string `gorm:"type:text" json:"cardStatus"` // Secondary card lifecycle flag.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
