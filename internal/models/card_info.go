package models

import "time"

// Card type statuses.
const (
	// CardInfoStatusOnline marks a card type available for issuing.
	CardInfoStatusOnline = "online"
	// CardInfoStatusOffline marks a withdrawn card type.
	CardInfoStatusOffline = "offline"
)

// CardInfo is a reusable card type configuration template. Quota and price
// fields stay as strings to preserve the wire format the issuing backend
// expects.
type CardInfo struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	CardTypeID   string `gorm:"type:text;not null;uniqueIndex" json:"cardTypeId"` // Unique type identifier.
	CardName     string `gorm:"type:text;not null" json:"cardName"`
	Organization string `gorm:"type:text;not null;default:'Visa'" json:"organization"` // Visa or Mastercard.
	Type         string `gorm:"type:text;not null;default:'Physical'" json:"type"`     // Physical or Virtual.
	Support      string `gorm:"type:text;not null;default:'Visa'" json:"support"`

	CardPrice         string `gorm:"type:text;not null;default:'0'" json:"cardPrice"`
	CardPriceCurrency string `gorm:"type:text;not null;default:'USD'" json:"cardPriceCurrency"`
	FiatCurrency      string `gorm:"type:text;not null;default:'USD'" json:"fiatCurrency"`

	NeedCardHolder           bool   `gorm:"not null;default:true" json:"needCardHolder"`
	NeedDepositForActiveCard bool   `gorm:"not null;default:false" json:"needDepositForActiveCard"`
	DepositAmountMinQuota    string `gorm:"type:text;not null;default:'10'" json:"depositAmountMinQuotaForActiveCard"`
	DepositAmountMaxQuota    string `gorm:"type:text;not null;default:'1000000'" json:"depositAmountMaxQuotaForActiveCard"`

	RechargeCurrency string `gorm:"type:text;not null;default:'USD'" json:"rechargeCurrency"`
	RechargeMinQuota string `gorm:"type:text;not null;default:'10'" json:"rechargeMinQuota"`
	RechargeMaxQuota string `gorm:"type:text;not null;default:'1000000'" json:"rechargeMaxQuota"`
	RechargeFeeRate  string `gorm:"type:text;not null;default:'1'" json:"rechargeFeeRate"`
	RechargeFixedFee string `gorm:"type:text;not null;default:'0'" json:"rechargeFixedFee"`
	RechargeDigital  int    `gorm:"not null;default:2" json:"rechargeDigital"` // Decimal places for recharge amounts.

	EnableActiveCard bool `gorm:"not null;default:true" json:"enableActiveCard"`
	EnableDeposit    bool `gorm:"not null;default:true" json:"enableDeposit"`
	EnableWithdraw   bool `gorm:"not null;default:false" json:"enableWithdraw"`
	EnableCancel     bool `gorm:"not null;default:true" json:"enableCancel"`
	EnableFreeze     bool `gorm:"not null;default:true" json:"enableFreeze"`
	EnableUnFreeze   bool `gorm:"not null;default:true" json:"enableUnFreeze"`

	Status string `gorm:"type:text;not null;default:'online'" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
}
