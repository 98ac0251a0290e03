package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/godwinide/peakedge/models"
)

// CreateTestAccount creates a customer account with default values
func CreateTestAccount(email, username string) *models.Account {
	now := time.Now()
	return &models.Account{
		ID:          uuid.NewString(),
		Email:       email,
		Username:    username,
		Currency:    "USD",
		PIN:         "483920",
		AccountPlan: models.DefaultAccountPlan,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestAccountWithBalance creates an account carrying a specific balance
func CreateTestAccountWithBalance(email, username string, balance decimal.Decimal) *models.Account {
	account := CreateTestAccount(email, username)
	account.Balance = balance
	return account
}

// CreateTestRecord creates a transaction record for an account
func CreateTestRecord(accountID string, txType models.TransactionType, amount decimal.Decimal) *models.TransactionRecord {
	return &models.TransactionRecord{
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Status:    models.StatusSuccessful,
		CreatedAt: time.Now(),
	}
}
