package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/godwinide/peakedge/database"
	"github.com/godwinide/peakedge/models"
)

const accountColumns = `
	id, email, username, fullname, phone, gender, country, currency,
	security_question, security_answer, registered_ip, picture, pin,
	balance, total_deposit, active_deposit, total_earned, total_withdraw,
	pending_withdrawal, withdrawal_fee, debt, account_plan, require_upgrade,
	is_admin, password_hash, created_at, updated_at`

// AccountRepository implements the account store against Postgres
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates an account repository backed by the pool
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepositoryWithTx creates an account repository bound to a transaction
func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.Username, &a.FullName, &a.Phone, &a.Gender,
		&a.Country, &a.Currency, &a.SecurityQuestion, &a.SecurityAnswer,
		&a.RegisteredIP, &a.Picture, &a.PIN,
		&a.Balance, &a.TotalDeposit, &a.ActiveDeposit, &a.TotalEarned,
		&a.TotalWithdraw, &a.PendingWithdraw, &a.WithdrawalFee, &a.Debt,
		&a.AccountPlan, &a.RequireUpgrade, &a.IsAdmin, &a.PasswordHash,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID retrieves an account by its id, returning nil when absent
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", id, err)
	}
	return account, nil
}

// GetByEmail retrieves an account by email, returning nil when absent
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(email) = lower($1)`

	account, err := scanAccount(r.q.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

// GetByEmailOrUsername retrieves an account matching either field, for
// duplicate checks during registration
func (r *AccountRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE lower(email) = lower($1) OR lower(username) = lower($2)
		LIMIT 1`

	account, err := scanAccount(r.q.QueryRow(ctx, query, email, username))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email or username: %w", err)
	}
	return account, nil
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, username, fullname, phone, gender, country, currency,
			security_question, security_answer, registered_ip, picture, pin,
			account_plan, is_admin, password_hash
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		account.ID, account.Email, account.Username, account.FullName,
		account.Phone, account.Gender, account.Country, account.Currency,
		account.SecurityQuestion, account.SecurityAnswer, account.RegisteredIP,
		account.Picture, account.PIN, account.AccountPlan, account.IsAdmin,
		account.PasswordHash,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create account %s: %w", account.Email, err)
	}
	return nil
}

// ListCustomers returns all non-admin accounts, newest first
func (r *AccountRepository) ListCustomers(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE is_admin = FALSE ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListAll returns every account, newest first
func (r *AccountRepository) ListAll(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *AccountRepository) list(ctx context.Context, query string) ([]*models.Account, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// TotalBalance returns the sum of all non-admin balances
func (r *AccountRepository) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE is_admin = FALSE`

	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum balances: %w", err)
	}
	return total, nil
}

// ApplyDeposit bumps the deposit aggregates atomically. The increments run
// in-place so two concurrent deposits on the same account both land.
func (r *AccountRepository) ApplyDeposit(ctx context.Context, id string, amount decimal.Decimal, debt bool) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1,
		    active_deposit = active_deposit + $1,
		    total_deposit = total_deposit + $1,
		    debt = $2,
		    updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.q.Exec(ctx, query, amount, debt, id)
	if err != nil {
		return fmt.Errorf("failed to apply deposit for account %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}

// ApplyCredit bumps balance plus the aggregate selected by the credit type
func (r *AccountRepository) ApplyCredit(ctx context.Context, id string, amount decimal.Decimal, creditType models.CreditType) error {
	var query string
	if creditType == models.CreditTypeProfit {
		query = `
			UPDATE accounts
			SET balance = balance + $1,
			    total_earned = total_earned + $1,
			    updated_at = NOW()
			WHERE id = $2
		`
	} else {
		query = `
			UPDATE accounts
			SET balance = balance + $1,
			    active_deposit = active_deposit + $1,
			    updated_at = NOW()
			WHERE id = $2
		`
	}

	result, err := r.q.Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("failed to apply credit for account %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}

// UpdateProfile overwrites the admin-editable fields with the supplied values.
// This is the override path: monetary columns are set directly, outside the
// ledger, and no transaction record is produced.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, update *models.ProfileUpdate) error {
	query := `
		UPDATE accounts
		SET email = $1, username = $2, phone = $3, country = $4, currency = $5,
		    security_question = $6, security_answer = $7, registered_ip = $8,
		    pin = $9, balance = $10, total_deposit = $11, active_deposit = $12,
		    total_earned = $13, total_withdraw = $14, pending_withdrawal = $15,
		    withdrawal_fee = $16, account_plan = $17, require_upgrade = $18,
		    updated_at = NOW()
		WHERE id = $19
	`

	result, err := r.q.Exec(ctx, query,
		update.Email, update.Username, update.Phone, update.Country,
		update.Currency, update.SecurityQuestion, update.SecurityAnswer,
		update.RegisteredIP, update.PIN, update.Balance, update.TotalDeposit,
		update.ActiveDeposit, update.TotalEarned, update.TotalWithdraw,
		update.PendingWithdraw, update.WithdrawalFee, update.AccountPlan,
		update.RequireUpgrade, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile for account %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}

// UpdatePassword stores a new password hash for the account
func (r *AccountRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password for account %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}

// Delete removes an account. Deleting an unknown id is a no-op; transaction
// history for the account is left untouched.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return nil
}
