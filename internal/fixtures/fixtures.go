// Package fixtures provides the demo dataset used by the seed command and by
// the console gateway's mock transport.
package fixtures

import (
	"fmt"
	"time"

	"github.com/devendraInfograins/CardApp/internal/models"
)

// CardHolders returns the demo card holder records.
func CardHolders() []models.CardHolder {
	now := time.Now().UTC()
	return []models.CardHolder{
		{
			FirstName: "Alice", LastName: "Johnson", Email: "alice@example.com", Mobile: "+15550100",
			Nationality: "US", Address: "12 Harbor Way", City: "Austin", State: "TX", PostalCode: "73301", Country: "US",
			Occupation: "Engineer", AnnualIncome: "120000", IDType: "passport", IDNumber: "P4821930",
			KYCStatus: models.KYCStatusApproved, CreatedAt: now.AddDate(0, -7, 0),
		},
		{
			FirstName: "Bob", LastName: "Smith", Email: "bob@example.com", Mobile: "+15550101",
			Nationality: "US", Address: "9 Elm Street", City: "Denver", State: "CO", PostalCode: "80014", Country: "US",
			Occupation: "Analyst", AnnualIncome: "95000", IDType: "driver-license", IDNumber: "D7743821",
			KYCStatus: models.KYCStatusApproved, CreatedAt: now.AddDate(0, -6, -10),
		},
		{
			FirstName: "Charlie", LastName: "Davis", Email: "charlie@example.com", Mobile: "+15550102",
			Nationality: "GB", Address: "4 Mill Lane", City: "Leeds", PostalCode: "LS1 4HT", Country: "GB",
			Occupation: "Trader", AnnualIncome: "150000", IDType: "passport", IDNumber: "P9921475",
			KYCStatus: models.KYCStatusPending, CreatedAt: now.AddDate(0, -5, -3),
		},
		{
			FirstName: "Diana", LastName: "Prince", Email: "diana@example.com", Mobile: "+15550103",
			Nationality: "FR", Address: "8 Rue Lafayette", City: "Paris", PostalCode: "75009", Country: "FR",
			Occupation: "Designer", AnnualIncome: "88000", IDType: "national-id", IDNumber: "N1190238",
			KYCStatus: models.KYCStatusApproved, CreatedAt: now.AddDate(0, -4, -20),
		},
		{
			FirstName: "Ethan", LastName: "Hunt", Email: "ethan@example.com", Mobile: "+15550104",
			Nationality: "US", Address: "77 Sunset Blvd", City: "Los Angeles", State: "CA", PostalCode: "90028", Country: "US",
			Occupation: "Consultant", AnnualIncome: "110000", IDType: "passport", IDNumber: "P3318840",
			KYCStatus: models.KYCStatusRejected, CreatedAt: now.AddDate(0, -3, -2),
		},
	}
}

// CardRequests returns the demo card request records. Holder IDs refer to the
// CardHolders slice in insertion order.
func CardRequests() []models.CardRequest {
	now := time.Now().UTC()
	return []models.CardRequest{
		{
			MerchantOrderNo: "MO-1001", CardHolderID: 1, CardTypeID: "111053", Amount: "150",
			Status: models.CardRequestStatusPending, CreatedAt: now.AddDate(0, 0, -9),
		},
		{
			MerchantOrderNo: "MO-1002", CardHolderID: 2, CardTypeID: "111053", Amount: "200",
			Status: models.CardRequestStatusPending, CreatedAt: now.AddDate(0, 0, -6),
		},
		{
			MerchantOrderNo: "MO-1003", CardHolderID: 4, CardTypeID: "220071", Amount: "75",
			CardID: "4111222233334444", CardNumber: "4111222233334444", CardStatus: "active",
			Status: models.CardRequestStatusApproved, CreatedAt: now.AddDate(0, 0, -15),
		},
		{
			MerchantOrderNo: "MO-1004", CardHolderID: 5, CardTypeID: "220071", Amount: "50",
			Status: models.CardRequestStatusRejected, CreatedAt: now.AddDate(0, 0, -12),
		},
		{
			MerchantOrderNo: "MO-1005", CardHolderID: 1, CardTypeID: "220071", Amount: "300",
			Status: models.CardRequestStatusProcessing, CreatedAt: now.AddDate(0, 0, -2),
		},
	}
}

// CardInfos returns the demo card type configurations.
func CardInfos() []models.CardInfo {
	return []models.CardInfo{
		{
			CardTypeID: "111053", CardName: "Xcentra Physical Card", Organization: "Visa", Type: "Physical",
			Support: "Visa", CardPrice: "25", CardPriceCurrency: "USD", FiatCurrency: "USD",
			NeedCardHolder: true, DepositAmountMinQuota: "10", DepositAmountMaxQuota: "1000000",
			RechargeCurrency: "USD", RechargeMinQuota: "10", RechargeMaxQuota: "1000000",
			RechargeFeeRate: "1", RechargeFixedFee: "0", RechargeDigital: 2,
			EnableActiveCard: true, EnableDeposit: true, EnableCancel: true,
			EnableFreeze: true, EnableUnFreeze: true, Status: models.CardInfoStatusOnline,
		},
		{
			CardTypeID: "220071", CardName: "Xcentra Virtual Card", Organization: "Mastercard", Type: "Virtual",
			Support: "Mastercard", CardPrice: "0", CardPriceCurrency: "USD", FiatCurrency: "USD",
			NeedCardHolder: true, DepositAmountMinQuota: "10", DepositAmountMaxQuota: "500000",
			RechargeCurrency: "USD", RechargeMinQuota: "10", RechargeMaxQuota: "500000",
			RechargeFeeRate: "1.5", RechargeFixedFee: "0", RechargeDigital: 2,
			EnableActiveCard: true, EnableDeposit: true, EnableWithdraw: true, EnableCancel: true,
			EnableFreeze: true, EnableUnFreeze: true, Status: models.CardInfoStatusOnline,
		},
		{
			CardTypeID: "330009", CardName: "Legacy Travel Card", Organization: "Visa", Type: "Physical",
			Support: "Visa", CardPrice: "40", CardPriceCurrency: "USD", FiatCurrency: "USD",
			NeedCardHolder: true, DepositAmountMinQuota: "50", DepositAmountMaxQuota: "200000",
			RechargeCurrency: "USD", RechargeMinQuota: "50", RechargeMaxQuota: "200000",
			RechargeFeeRate: "2", RechargeFixedFee: "1", RechargeDigital: 2,
			EnableActiveCard: true, EnableDeposit: true, EnableCancel: false,
			EnableFreeze: true, EnableUnFreeze: false, Status: models.CardInfoStatusOffline,
		},
	}
}

// Wallets returns the demo wallet records.
func Wallets() []models.Wallet {
	now := time.Now().UTC()
	return []models.Wallet{
		{Address: "0x742d35Cc6634C0532925a3b844Bc9e7595445678", Owner: "Alice Johnson", Network: "Ethereum", Balance: 12.5, Type: "Hot", Status: models.WalletStatusActive, CreatedAt: now.AddDate(0, -7, 0)},
		{Address: "0x8c9e2b1dF3421Aa8976Bc54e7D8901234567890a", Owner: "Bob Smith", Network: "Ethereum", Balance: 8.3, Type: "Hot", Status: models.WalletStatusActive, CreatedAt: now.AddDate(0, -6, -5)},
		{Address: "0x5a3f7e6c8d9A12Bc3456Def7890Ab1234567Cdef", Owner: "Charlie Davis", Network: "Polygon", Balance: 45.7, Type: "Cold", Status: models.WalletStatusActive, CreatedAt: now.AddDate(0, -8, -10)},
		{Address: "0x1d2e9a4bC567890Def1234Abc567890123456789", Owner: "Diana Prince", Network: "BSC", Balance: 5.2, Type: "Hot", Status: models.WalletStatusActive, CreatedAt: now.AddDate(0, -4, -12)},
		{Address: "0x6f8a5c3dE789012Abc345Def678901234567Ab12", Owner: "Ethan Hunt", Network: "Ethereum", Balance: 0.8, Type: "Hot", Status: models.WalletStatusLocked, CreatedAt: now.AddDate(0, -3, -8)},
		{Address: "0x9b7c4d2aF123456Bcd789012Def345678901Abcd", Owner: "Fiona Gallagher", Network: "Arbitrum", Balance: 23.4, Type: "Hot", Status: models.WalletStatusActive, CreatedAt: now.AddDate(0, -2, -18)},
		{Address: "0x3e5f6a8bC234567Cde890123Abc456789012Bcde", Owner: "George Wilson", Network: "Ethereum", Balance: 67.9, Type: "Cold", Status: models.WalletStatusActive, CreatedAt: now.AddDate(0, -9, -2)},
		{Address: "0x2d4e7f9aC345678Def901234Bcd567890123Cdef", Owner: "Hannah Montana", Network: "Optimism", Balance: 11.6, Type: "Hot", Status: models.WalletStatusSuspended, CreatedAt: now.AddDate(0, -1, -9)},
	}
}

// Transactions returns the demo transaction records, spread over the last six
// months so the analytics volume chart has data in every bucket.
func Transactions() []models.Transaction {
	now := time.Now().UTC()
	wallets := Wallets()
	types := []string{"transfer", "transfer", "contract", "swap", "transfer", "mint", "transfer", "burn"}
	statuses := []string{
		models.TransactionStatusConfirmed,
		models.TransactionStatusConfirmed,
		models.TransactionStatusPending,
		models.TransactionStatusConfirmed,
		models.TransactionStatusFailed,
		models.TransactionStatusConfirmed,
		models.TransactionStatusConfirmed,
		models.TransactionStatusConfirmed,
	}
	amounts := []float64{2.5, 0.75, 1.2, 3.8, 0.5, 5.0, 10.5, 1.8}
	fees := []float64{0.00084, 0.00063, 0.00135, 0.00084, 0.00195, 0.00084, 0.00084, 0.00156}

	out := make([]models.Transaction, 0, len(amounts)*3)
	block := uint64(18234558)
	seq := 0
	for round := 0; round < 3; round++ {
		for i := range amounts {
			from := wallets[i%len(wallets)]
			to := wallets[(i+1)%len(wallets)]
			seq++
			block++
			out = append(out, models.Transaction{
				TxHash:      fmt.Sprintf("0x%040x", 0xa1b2c3d4e5f60000+uint64(seq)),
				FromAddress: from.Address,
				ToAddress:   to.Address,
				Amount:      amounts[i],
				GasFee:      fees[i],
				BlockNumber: block,
				Type:        types[i],
				Status:      statuses[i],
				Timestamp:   now.AddDate(0, -(seq % 6), -(seq % 25)).Add(-time.Duration(seq) * time.Hour),
			})
		}
	}
	return out
}
