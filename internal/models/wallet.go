package models

import "time"

// Wallet statuses.
const (
	// WalletStatusActive marks a usable wallet.
	WalletStatusActive = "active"
	// WalletStatusLocked marks a temporarily locked wallet.
	WalletStatusLocked = "locked"
	// WalletStatusSuspended marks a suspended wallet.
	WalletStatusSuspended = "suspended"
)

// Wallet is an on-chain wallet tracked by the platform.
type Wallet struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Address string  `gorm:"type:text;not null;uniqueIndex" json:"address"` // On-chain address.
	Owner   string  `gorm:"type:text;not null" json:"owner"`
	Network string  `gorm:"type:text;not null;index" json:"network"`
	Balance float64 `gorm:"type:decimal(20,10);not null;default:0" json:"balance"`
	Type    string  `gorm:"type:text;not null;default:'Hot'" json:"type"` // Hot or Cold.
	Status  string  `gorm:"type:text;not null;default:'active';index" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
}
