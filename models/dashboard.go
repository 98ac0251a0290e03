package models

import "github.com/shopspring/decimal"

// Dashboard bundles everything the admin landing page displays
type Dashboard struct {
	Customers    []*Account
	History      []*TransactionRecord
	TotalBalance decimal.Decimal
}
