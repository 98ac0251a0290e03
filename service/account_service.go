package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/events"
	"github.com/godwinide/peakedge/models"
)

const minPasswordLength = 6

// accountService implements the AccountService interface
type accountService struct {
	uowFactory  UnitOfWorkFactory
	credentials CredentialManager
}

// NewAccountService creates a new account service
func NewAccountService(uowFactory UnitOfWorkFactory, credentials CredentialManager) AccountService {
	return &accountService{
		uowFactory:  uowFactory,
		credentials: credentials,
	}
}

// generatePIN issues a fresh 6-digit account PIN
func generatePIN() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// Register creates a customer account from the signup form
func (s *accountService) Register(ctx context.Context, input RegisterInput) (*models.Account, error) {
	if input.Username == "" || input.FullName == "" || input.Email == "" ||
		input.Phone == "" || input.Gender == "" || input.Country == "" ||
		input.Currency == "" || input.SecurityQuestion == "" ||
		input.SecurityAnswer == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: please fill all fields", ErrValidation)
	}
	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("%w: both passwords must be the same", ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password length should be a minimum of %d characters", ErrValidation, minPasswordLength)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback() // No-op if already committed

	existing, err := uow.AccountRepository().GetByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, persistence(err)
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := s.credentials.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:               uuid.NewString(),
		Email:            input.Email,
		Username:         input.Username,
		FullName:         input.FullName,
		Phone:            input.Phone,
		Gender:           input.Gender,
		Country:          input.Country,
		Currency:         input.Currency,
		SecurityQuestion: input.SecurityQuestion,
		SecurityAnswer:   input.SecurityAnswer,
		RegisteredIP:     input.RegisteredIP,
		Picture:          input.Picture,
		PIN:              generatePIN(),
		AccountPlan:      models.DefaultAccountPlan,
		PasswordHash:     hash,
	}

	if err := uow.AccountRepository().Create(ctx, account); err != nil {
		return nil, persistence(err)
	}

	uow.EventBus().Publish(events.AccountRegisteredEvent{
		AccountID: account.ID,
		Email:     account.Email,
		Username:  account.Username,
	})

	if err := uow.Commit(); err != nil {
		return nil, persistence(err)
	}

	log.WithFields(log.Fields{
		"accountId": account.ID,
		"email":     account.Email,
	}).Info("Account registered")

	return account, nil
}

// Authenticate verifies a signin attempt and returns the account
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByEmail(ctx, email)
	if err != nil {
		return nil, persistence(err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.credentials.Verify(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// GetAccount fetches one account
func (s *accountService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByID(ctx, id)
	if err != nil {
		return nil, persistence(err)
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return account, nil
}

// GetHistory returns the most recent records for one account
func (s *accountService) GetHistory(ctx context.Context, accountID string, limit int) ([]*models.TransactionRecord, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback()

	records, err := uow.HistoryRepository().GetByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, persistence(err)
	}
	return records, nil
}

// ListCustomers returns all non-admin accounts
func (s *accountService) ListCustomers(ctx context.Context) ([]*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback()

	accounts, err := uow.AccountRepository().ListCustomers(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return accounts, nil
}

// ListAll returns every account
func (s *accountService) ListAll(ctx context.Context) ([]*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback()

	accounts, err := uow.AccountRepository().ListAll(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return accounts, nil
}

// Dashboard returns the admin landing page data: all customers, the full
// history and the total balance held across customer accounts
func (s *accountService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback()

	customers, err := uow.AccountRepository().ListCustomers(ctx)
	if err != nil {
		return nil, persistence(err)
	}

	history, err := uow.HistoryRepository().GetAll(ctx)
	if err != nil {
		return nil, persistence(err)
	}

	total, err := uow.AccountRepository().TotalBalance(ctx)
	if err != nil {
		return nil, persistence(err)
	}

	return &models.Dashboard{
		Customers:    customers,
		History:      history,
		TotalBalance: total,
	}, nil
}

// UpdateProfile overwrites the admin-editable fields of an account. This is
// the override path: monetary fields are written as given, outside the
// ledger, and no transaction record is produced.
func (s *accountService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return persistence(err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByID(ctx, id)
	if err != nil {
		return persistence(err)
	}
	if account == nil {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	// Blank form values fall back to defaults: numeric fields are already
	// zero, the PIN is reissued and the plan reverts to the starter tier.
	if update.PIN == "" {
		update.PIN = generatePIN()
	}
	if update.AccountPlan == "" {
		update.AccountPlan = models.DefaultAccountPlan
	}

	if err := uow.AccountRepository().UpdateProfile(ctx, id, &update); err != nil {
		return persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return persistence(err)
	}

	log.WithField("accountId", id).Info("Account profile overridden")
	return nil
}

// DeleteAccount removes an account. Unknown or blank ids succeed silently,
// and the account's transaction history is preserved.
func (s *accountService) DeleteAccount(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return persistence(err)
	}
	defer uow.Rollback()

	if err := uow.AccountRepository().Delete(ctx, id); err != nil {
		return persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return persistence(err)
	}

	log.WithField("accountId", id).Info("Account deleted")
	return nil
}

// ChangePassword validates and stores a new password for the actor
func (s *accountService) ChangePassword(ctx context.Context, actorID, password, confirm string) error {
	if password == "" || confirm == "" {
		return fmt.Errorf("%w: please fill all fields", ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: both passwords must be the same", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password too short", ErrValidation)
	}

	hash, err := s.credentials.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return persistence(err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByID(ctx, actorID)
	if err != nil {
		return persistence(err)
	}
	if account == nil {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, actorID)
	}

	if err := uow.AccountRepository().UpdatePassword(ctx, actorID, hash); err != nil {
		return persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return persistence(err)
	}

	log.WithField("accountId", actorID).Info("Password updated")
	return nil
}
