package models

import "time"

// Transaction statuses and types.
const (
	// TransactionStatusConfirmed marks a mined, confirmed transaction.
	TransactionStatusConfirmed = "confirmed"
	// TransactionStatusPending marks a transaction waiting for confirmation.
	TransactionStatusPending = "pending"
	// TransactionStatusFailed marks a reverted or dropped transaction.
	TransactionStatusFailed = "failed"
)

// Transaction is an on-chain transaction observed by the platform.
type Transaction struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	TxHash string `gorm:"type:text;not null;uniqueIndex" json:"txHash"` // Unique transaction hash.

	FromAddress string `gorm:"type:text;not null;index" json:"from"`
	ToAddress   string `gorm:"type:text;not null;index" json:"to"`

	Amount      float64 `gorm:"type:decimal(20,10);not null;default:0" json:"amount"`
	GasFee      float64 `gorm:"type:decimal(20,10);not null;default:0" json:"gasFee"`
	BlockNumber uint64  `gorm:"not null;default:0" json:"blockNumber"`

	Type   string `gorm:"type:text;not null;index" json:"type"` // transfer, swap, contract, mint or burn.
	Status string `gorm:"type:text;not null;default:'pending';index" json:"status"`

	Timestamp time.Time `gorm:"not null;index" json:"timestamp"` // Block timestamp.
}
