package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the ledger event behind a transaction record
type TransactionType string

const (
	TransactionTypeCreditDeposit TransactionType = "Credit-Deposit"
	TransactionTypeCreditProfit  TransactionType = "Credit-Profit"
)

// CreditType selects which aggregate a manual credit lands on
type CreditType string

const (
	CreditTypeProfit  CreditType = "Profit"
	CreditTypeDeposit CreditType = "Deposit"
)

// TransactionType returns the history record type for this credit type
func (c CreditType) TransactionType() TransactionType {
	if c == CreditTypeProfit {
		return TransactionTypeCreditProfit
	}
	return TransactionTypeCreditDeposit
}

// Valid reports whether the credit type is one of the known values
func (c CreditType) Valid() bool {
	return c == CreditTypeProfit || c == CreditTypeDeposit
}

// StatusSuccessful is the only status admin-originated records ever carry;
// there is no pending/failed lifecycle for these events.
const StatusSuccessful = "successful"

// TransactionRecord is one immutable entry of the append-only history.
// Records are created once and never updated or deleted, even when the
// owning account is removed.
type TransactionRecord struct {
	ID           int64           `db:"id"`
	AccountID    string          `db:"account_id"`
	Type         TransactionType `db:"type"`
	Amount       decimal.Decimal `db:"amount"`
	Status       string          `db:"status"`
	AccountEmail string          `db:"account_email"`
	CreatedAt    time.Time       `db:"created_at"`
}

// DepositResult reports the outcome of a recorded deposit for presentation
type DepositResult struct {
	AccountID  string
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
	Record     *TransactionRecord
}

// CreditResult reports the outcome of a manual credit for presentation
type CreditResult struct {
	AccountID  string
	CreditType CreditType
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
	Record     *TransactionRecord
}
