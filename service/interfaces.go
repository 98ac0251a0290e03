package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/godwinide/peakedge/events"
	"github.com/godwinide/peakedge/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// GetByID retrieves an account by id, returning nil when absent
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// GetByEmail retrieves an account by email, returning nil when absent
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByEmailOrUsername retrieves an account matching either field
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.Account, error)

	// Create inserts a new account
	Create(ctx context.Context, account *models.Account) error

	// ListCustomers returns all non-admin accounts
	ListCustomers(ctx context.Context) ([]*models.Account, error)

	// ListAll returns every account
	ListAll(ctx context.Context) ([]*models.Account, error)

	// TotalBalance returns the sum of all non-admin balances
	TotalBalance(ctx context.Context) (decimal.Decimal, error)

	// ApplyDeposit bumps balance, active_deposit and total_deposit atomically
	// and sets the debt mark
	ApplyDeposit(ctx context.Context, id string, amount decimal.Decimal, debt bool) error

	// ApplyCredit bumps balance plus the aggregate selected by the credit type
	ApplyCredit(ctx context.Context, id string, amount decimal.Decimal, creditType models.CreditType) error

	// UpdateProfile overwrites the admin-editable fields (override path)
	UpdateProfile(ctx context.Context, id string, update *models.ProfileUpdate) error

	// UpdatePassword stores a new password hash
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// Delete removes an account; unknown ids are a no-op
	Delete(ctx context.Context, id string) error
}

// HistoryRepository defines the interface for the append-only transaction
// history. There are intentionally no update or delete operations.
type HistoryRepository interface {
	// Record appends one transaction record
	Record(ctx context.Context, record *models.TransactionRecord) error

	// GetAll returns the full history, newest first
	GetAll(ctx context.Context) ([]*models.TransactionRecord, error)

	// GetByAccount returns the most recent records for one account
	GetByAccount(ctx context.Context, accountID string, limit int) ([]*models.TransactionRecord, error)
}

// SiteRepository defines the interface for the singleton site configuration
type SiteRepository interface {
	// Get returns the site config, or nil when none has been written yet
	Get(ctx context.Context) (*models.SiteConfig, error)

	// SetWallet replaces the wallet address for all readers at once
	SetWallet(ctx context.Context, wallet string) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// CredentialManager hashes and verifies account passwords
type CredentialManager interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// LedgerService is the ledger engine: every operation mutates an account's
// monetary aggregates and appends a matching transaction record as one
// atomic unit.
type LedgerService interface {
	// RecordDeposit credits a deposit onto an account and marks its debt flag
	RecordDeposit(ctx context.Context, accountID string, amount decimal.Decimal, debt bool) (*models.DepositResult, error)

	// CreditAccount applies a manual profit or deposit credit. The amount's
	// sign is ignored; crediting is always additive.
	CreditAccount(ctx context.Context, accountID string, amount decimal.Decimal, creditType models.CreditType) (*models.CreditResult, error)
}

// RegisterInput carries the signup form fields
type RegisterInput struct {
	Username         string
	FullName         string
	Email            string
	Phone            string
	Gender           string
	Country          string
	Currency         string
	SecurityQuestion string
	SecurityAnswer   string
	Password         string
	ConfirmPassword  string
	RegisteredIP     string
	Picture          string
}

// AccountService defines profile administration and customer signup.
// Monetary writes made through UpdateProfile are a direct administrative
// override and bypass the ledger.
type AccountService interface {
	// Register creates a customer account from the signup form
	Register(ctx context.Context, input RegisterInput) (*models.Account, error)

	// Authenticate verifies a signin attempt and returns the account
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)

	// GetAccount fetches one account
	GetAccount(ctx context.Context, id string) (*models.Account, error)

	// GetHistory returns the most recent records for one account
	GetHistory(ctx context.Context, accountID string, limit int) ([]*models.TransactionRecord, error)

	// ListCustomers returns all non-admin accounts
	ListCustomers(ctx context.Context) ([]*models.Account, error)

	// ListAll returns every account
	ListAll(ctx context.Context) ([]*models.Account, error)

	// Dashboard returns the admin landing page data
	Dashboard(ctx context.Context) (*models.Dashboard, error)

	// UpdateProfile overwrites the admin-editable fields of an account
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) error

	// DeleteAccount removes an account; unknown ids succeed silently
	DeleteAccount(ctx context.Context, id string) error

	// ChangePassword validates and stores a new password for the actor
	ChangePassword(ctx context.Context, actorID, password, confirm string) error
}

// SiteService manages the site-wide payout wallet
type SiteService interface {
	// SetWallet validates and stores the payout wallet address
	SetWallet(ctx context.Context, address string) error

	// GetWallet returns the configured wallet, or "" when unset
	GetWallet(ctx context.Context) (string, error)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	AccountRepository() AccountRepository
	HistoryRepository() HistoryRepository
	SiteRepository() SiteRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
