package models

import "time"

// KYC statuses a card holder can be in.
const (
	// KYCStatusPending marks a holder awaiting verification.
	KYCStatusPending = "PENDING"
	// KYCStatusApproved marks a verified holder.
	KYCStatusApproved = "APPROVED"
	// KYCStatusRejected marks a holder that failed verification.
	KYCStatusRejected = "REJECTED"
)

// CardHolder is an identity/KYC record created by the external intake
// process. The console only reads these rows.
type CardHolder struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	FirstName string `gorm:"type:text;not null" json:"firstName"`
	LastName  string `gorm:"type:text;not null" json:"lastName"`
	Email     string `gorm:"type:text;not null;index" json:"email"`
	Mobile    string `gorm:"type:text" json:"mobile"`

	Nationality string `gorm:"type:text" json:"nationality"`
	Address     string `gorm:"type:text" json:"address"`
	City        string `gorm:"type:text" json:"city"`
	State       string `gorm:"type:text" json:"state"`
	PostalCode  string `gorm:"type:text" json:"postalCode"`
	Country     string `gorm:"type:text" json:"country"`

	Occupation   string `gorm:"type:text" json:"occupation"`
	AnnualIncome string `gorm:"type:text" json:"annualIncome"`

	IDType   string `gorm:"type:text" json:"idType"`   // Identity document type.
	IDNumber string `gorm:"type:text" json:"idNumber"` // Identity document number.

	KYCStatus string `gorm:"type:text;not null;default:'PENDING';index" json:"kycStatus"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
}

// FullName joins first and last name for display and search.
func (h CardHolder) FullName() string {
	if h.FirstName == "" {
		return h.LastName
	}
	if h.LastName == "" {
		return h.FirstName
	}
	return h.FirstName + " " + h.LastName
}
