package models

import (
	"time"

	"gorm.io/datatypes"
)

// Admin represents an administrator account stored in the database.
type Admin struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Email    string `gorm:"type:text;not null;uniqueIndex" json:"email"` // Unique login email.
	Name     string `gorm:"type:text;not null" json:"name"`              // Display name.
	Role     string `gorm:"type:text;not null;default:'Admin'" json:"role"`
	Password string `gorm:"type:text;not null" json:"-"` // Hashed password.

	Active bool `gorm:"not null;default:true" json:"active"` // Whether the admin can sign in.

	Permissions datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"permissions"` // Permission keys in JSON.

	TOTPSecret string `gorm:"type:text" json:"-"` // TOTP secret when a second factor is enrolled.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
