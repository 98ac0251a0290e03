package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAccountPlan is assigned to accounts that have no explicit tier.
const DefaultAccountPlan = "STARTER ($1,000 - $10,000)"

// Account represents a customer with profile data and monetary aggregates.
// The aggregate columns are a materialized projection of the transaction
// history for the account; they are only ever changed through the ledger
// service or the explicit admin override path.
type Account struct {
	ID               string          `db:"id"`
	Email            string          `db:"email"`
	Username         string          `db:"username"`
	FullName         string          `db:"fullname"`
	Phone            string          `db:"phone"`
	Gender           string          `db:"gender"`
	Country          string          `db:"country"`
	Currency         string          `db:"currency"`
	SecurityQuestion string          `db:"security_question"`
	SecurityAnswer   string          `db:"security_answer"`
	RegisteredIP     string          `db:"registered_ip"`
	Picture          string          `db:"picture"`
	PIN              string          `db:"pin"`
	Balance          decimal.Decimal `db:"balance"`
	TotalDeposit     decimal.Decimal `db:"total_deposit"`
	ActiveDeposit    decimal.Decimal `db:"active_deposit"`
	TotalEarned      decimal.Decimal `db:"total_earned"`
	TotalWithdraw    decimal.Decimal `db:"total_withdraw"`
	PendingWithdraw  decimal.Decimal `db:"pending_withdrawal"`
	WithdrawalFee    decimal.Decimal `db:"withdrawal_fee"`
	Debt             bool            `db:"debt"`
	AccountPlan      string          `db:"account_plan"`
	RequireUpgrade   bool            `db:"require_upgrade"`
	IsAdmin          bool            `db:"is_admin"`
	PasswordHash     string          `db:"password_hash"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ProfileUpdate enumerates every field the admin edit form may overwrite.
// Monetary values written through here are a direct administrative override:
// they bypass the ledger and produce no transaction record.
type ProfileUpdate struct {
	Email            string
	Username         string
	Phone            string
	Country          string
	Currency         string
	SecurityQuestion string
	SecurityAnswer   string
	RegisteredIP     string
	PIN              string
	Balance          decimal.Decimal
	TotalDeposit     decimal.Decimal
	ActiveDeposit    decimal.Decimal
	TotalEarned      decimal.Decimal
	TotalWithdraw    decimal.Decimal
	PendingWithdraw  decimal.Decimal
	WithdrawalFee    decimal.Decimal
	AccountPlan      string
	RequireUpgrade   bool
}
