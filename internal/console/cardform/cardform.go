// Package cardform builds card type creation payloads: a draft starts from
// the platform defaults, the operator fills in what differs, and a single
// submit posts the full payload. On success the draft resets; on failure it
// stays populated for correction.
package cardform

import (
	"context"
	"errors"
	"strings"

	"github.com/devendraInfograins/CardApp/internal/models"
)

// ErrIncomplete means cardName or cardTypeId is missing.
var ErrIncomplete = errors.New("cardform: cardName and cardTypeId are required")

// Creator posts the card type to the backend. *gateway.Client satisfies it.
type Creator interface {
	CreateCardType(ctx context.Context, info models.CardInfo) (*models.CardInfo, error)
}

// Defaults returns a card type payload with every field at its platform
// default. Operators only override what differs.
func Defaults() models.CardInfo {
	return models.CardInfo{
		Organization:          "Visa",
		Type:                  "Physical",
		Support:               "Visa",
		CardPrice:             "0",
		CardPriceCurrency:     "USD",
		FiatCurrency:          "USD",
		NeedCardHolder:        true,
		DepositAmountMinQuota: "10",
		DepositAmountMaxQuota: "1000000",
		RechargeCurrency:      "USD",
		RechargeMinQuota:      "10",
		RechargeMaxQuota:      "1000000",
		RechargeFeeRate:       "1",
		RechargeFixedFee:      "0",
		RechargeDigital:       2,
		EnableActiveCard:      true,
		EnableDeposit:         true,
		EnableWithdraw:        false,
		EnableCancel:          true,
		EnableFreeze:          true,
		EnableUnFreeze:        true,
		Status:                models.CardInfoStatusOnline,
	}
}

// Form is a card type creation draft.
type Form struct {
	Draft models.CardInfo
}

// NewForm returns a form with the defaults applied.
func NewForm() *Form {
	return &Form{Draft: Defaults()}
}

// Reset returns the draft to the defaults.
func (f *Form) Reset() {
	f.Draft = Defaults()
}

// Submit posts the draft. A successful submit resets the draft so the next
// creation starts clean; a failed submit leaves it untouched so the operator
// can correct and retry.
func (f *Form) Submit(ctx context.Context, creator Creator) (*models.CardInfo, error) {
	f.Draft.CardName = strings.TrimSpace(f.Draft.CardName)
	f.Draft.CardTypeID = strings.TrimSpace(f.Draft.CardTypeID)
	if f.Draft.CardName == "" || f.Draft.CardTypeID == "" {
		return nil, ErrIncomplete
	}

	created, errCreate := creator.CreateCardType(ctx, f.Draft)
	if errCreate != nil {
		return nil, errCreate
	}
	f.Reset()
	return created, nil
}
