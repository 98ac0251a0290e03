package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/godwinide/peakedge/events"
	"github.com/godwinide/peakedge/models"
	"github.com/godwinide/peakedge/repository/testutil"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:         "jdoe",
		FullName:         "Jane Doe",
		Email:            "jane@example.com",
		Phone:            "+15550100",
		Gender:           "female",
		Country:          "US",
		Currency:         "USD",
		SecurityQuestion: "First pet?",
		SecurityAnswer:   "Rex",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
	}
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockBus := new(MockEventPublisher)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)
	mockUoW.SetEventBus(mockBus)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByEmailOrUsername", ctx, "jane@example.com", "jdoe").Return(nil, nil)
	mockCreds.On("Hash", "secret1").Return("hashed-secret", nil)

	mockAccountRepo.On("Create", ctx, mock.MatchedBy(func(a *models.Account) bool {
		return a.Email == "jane@example.com" &&
			a.Username == "jdoe" &&
			a.PasswordHash == "hashed-secret" &&
			a.AccountPlan == models.DefaultAccountPlan &&
			len(a.PIN) == 6 &&
			a.ID != "" &&
			!a.IsAdmin
	})).Return(nil)

	mockBus.On("Publish", mock.MatchedBy(func(e events.AccountRegisteredEvent) bool {
		return e.Email == "jane@example.com"
	})).Return()

	account, err := service.Register(ctx, validRegisterInput())

	assert.NoError(t, err)
	assert.NotNil(t, account)
	assert.True(t, account.Balance.IsZero())

	mockAccountRepo.AssertExpectations(t)
	mockCreds.AssertExpectations(t)
	mockBus.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByEmailOrUsername", ctx, "jane@example.com", "jdoe").
		Return(&models.Account{ID: "existing"}, nil)

	account, err := service.Register(ctx, validRegisterInput())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrDuplicateAccount)
	mockAccountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestAccountService_Register_Validation(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	mockCreds := new(MockCredentialManager)
	service := NewAccountService(mockFactory, mockCreds)

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"missing username", func(in *RegisterInput) { in.Username = "" }},
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "other99" }},
		{"password too short", func(in *RegisterInput) { in.Password = "abc"; in.ConfirmPassword = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.mutate(&input)

			account, err := service.Register(ctx, input)

			assert.Nil(t, account)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	mockFactory.AssertNotCalled(t, "Create")
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	stored := &models.Account{ID: "acc-1", Email: "jane@example.com", PasswordHash: "hashed"}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)
	mockCreds.On("Verify", "hashed", "secret1").Return(nil)

	account, err := service.Authenticate(ctx, "jane@example.com", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	stored := &models.Account{ID: "acc-1", Email: "jane@example.com", PasswordHash: "hashed"}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)
	mockCreds.On("Verify", "hashed", "wrong").Return(ErrInvalidCredentials)

	account, err := service.Authenticate(ctx, "jane@example.com", "wrong")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	account, err := service.Authenticate(ctx, "nobody@example.com", "secret1")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockCreds.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAccountService_Dashboard(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	customers := []*models.Account{
		testutil.CreateTestAccountWithBalance("one@example.com", "one", decimal.NewFromInt(100)),
		testutil.CreateTestAccountWithBalance("two@example.com", "two", decimal.NewFromInt(250)),
	}
	history := []*models.TransactionRecord{
		testutil.CreateTestRecord(customers[0].ID, models.TransactionTypeCreditDeposit, decimal.NewFromInt(100)),
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("ListCustomers", ctx).Return(customers, nil)
	mockHistoryRepo.On("GetAll", ctx).Return(history, nil)
	mockAccountRepo.On("TotalBalance", ctx).Return(decimal.NewFromInt(350), nil)

	dashboard, err := service.Dashboard(ctx)

	assert.NoError(t, err)
	assert.Len(t, dashboard.Customers, 2)
	assert.Len(t, dashboard.History, 1)
	assert.True(t, dashboard.TotalBalance.Equal(decimal.NewFromInt(350)))
}

func TestAccountService_UpdateProfile_Defaults(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByID", ctx, "acc-1").Return(&models.Account{ID: "acc-1"}, nil)

	mockAccountRepo.On("UpdateProfile", ctx, "acc-1", mock.MatchedBy(func(u *models.ProfileUpdate) bool {
		// A blank PIN is reissued and a blank plan reverts to the default
		return len(u.PIN) == 6 &&
			u.AccountPlan == models.DefaultAccountPlan &&
			u.Balance.IsZero()
	})).Return(nil)

	err := service.UpdateProfile(ctx, "acc-1", models.ProfileUpdate{
		Email:    "jane@example.com",
		Username: "jdoe",
	})

	assert.NoError(t, err)
	mockAccountRepo.AssertExpectations(t)
}

func TestAccountService_UpdateProfile_NotFound(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	err := service.UpdateProfile(ctx, "missing", models.ProfileUpdate{})

	assert.ErrorIs(t, err, ErrAccountNotFound)
	mockAccountRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccount_BlankID(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	mockCreds := new(MockCredentialManager)
	service := NewAccountService(mockFactory, mockCreds)

	// Deleting nothing succeeds without touching the store
	err := service.DeleteAccount(ctx, "")

	assert.NoError(t, err)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockAccountRepo.On("Delete", ctx, "acc-1").Return(nil)

	err := service.DeleteAccount(ctx, "acc-1")

	assert.NoError(t, err)
	mockAccountRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	mockSiteRepo := new(MockSiteRepository)
	mockCreds := new(MockCredentialManager)

	mockUoW.SetRepositories(mockAccountRepo, mockHistoryRepo, mockSiteRepo)

	service := NewAccountService(mockFactory, mockCreds)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockCreds.On("Hash", "newsecret").Return("new-hash", nil)
	mockAccountRepo.On("GetByID", ctx, "acc-1").Return(&models.Account{ID: "acc-1"}, nil)
	mockAccountRepo.On("UpdatePassword", ctx, "acc-1", "new-hash").Return(nil)

	err := service.ChangePassword(ctx, "acc-1", "newsecret", "newsecret")

	assert.NoError(t, err)
	mockAccountRepo.AssertExpectations(t)
}

func TestAccountService_ChangePassword_Validation(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	mockCreds := new(MockCredentialManager)
	service := NewAccountService(mockFactory, mockCreds)

	tests := []struct {
		name     string
		password string
		confirm  string
	}{
		{"empty password", "", "newsecret"},
		{"empty confirm", "newsecret", ""},
		{"mismatch", "newsecret", "othersecret"},
		{"too short", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ChangePassword(ctx, "acc-1", tt.password, tt.confirm)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	mockFactory.AssertNotCalled(t, "Create")
	mockCreds.AssertNotCalled(t, "Hash", mock.Anything)
}
