package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// DefaultAccounts returns the starter accounts used for demo data.
func DefaultAccounts(currency string) []model.Account {
	return []model.Account{
		{ID: "acc-sbi-1", Name: "State Bank of India", Type: model.AccountTypeSavings, Balance: decimal.RequireFromString("245800.50"), Currency: currency},
		{ID: "acc-hdfc-1", Name: "HDFC Bank", Type: model.AccountTypeChecking, Balance: decimal.RequireFromString("132450.75"), Currency: currency},
		{ID: "acc-icici-1", Name: "ICICI Bank", Type: model.AccountTypeCreditCard, Balance: decimal.RequireFromString("-18340.00"), Currency: currency},
	}
}
