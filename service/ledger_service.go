package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/models"
)

// ledgerService implements the LedgerService interface. Every operation
// writes the history record first and the aggregate bump second, inside one
// unit of work, so readers never observe one without the other.
type ledgerService struct {
	uowFactory UnitOfWorkFactory
}

// NewLedgerService creates a new ledger service
func NewLedgerService(uowFactory UnitOfWorkFactory) LedgerService {
	return &ledgerService{
		uowFactory: uowFactory,
	}
}

func (s *ledgerService) RecordDeposit(ctx context.Context, accountID string, amount decimal.Decimal, debt bool) (*models.DepositResult, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", ErrValidation)
	}
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback() // No-op if already committed

	account, err := uow.AccountRepository().GetByID(ctx, accountID)
	if err != nil {
		return nil, persistence(err)
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	record := &models.TransactionRecord{
		AccountID:    accountID,
		Type:         models.TransactionTypeCreditDeposit,
		Amount:       amount,
		Status:       models.StatusSuccessful,
		AccountEmail: account.Email,
	}

	newBalance := account.Balance.Add(amount)

	if err := recordLedgerEntry(ctx, uow, record, newBalance); err != nil {
		return nil, persistence(err)
	}

	if err := uow.AccountRepository().ApplyDeposit(ctx, accountID, amount, debt); err != nil {
		return nil, persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, persistence(err)
	}

	log.WithFields(log.Fields{
		"accountId": accountID,
		"amount":    amount.String(),
		"debt":      debt,
	}).Info("Deposit recorded")

	return &models.DepositResult{
		AccountID:  accountID,
		Amount:     amount,
		NewBalance: newBalance,
		Record:     record,
	}, nil
}

func (s *ledgerService) CreditAccount(ctx context.Context, accountID string, amount decimal.Decimal, creditType models.CreditType) (*models.CreditResult, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", ErrValidation)
	}
	if !creditType.Valid() {
		return nil, fmt.Errorf("%w: unknown credit type %q", ErrValidation, creditType)
	}

	// Crediting is always additive: the caller-supplied sign is discarded.
	// This entry point cannot debit an account.
	amount = amount.Abs()
	if amount.IsZero() {
		return nil, ErrInvalidAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, persistence(err)
	}
	defer uow.Rollback() // No-op if already committed

	account, err := uow.AccountRepository().GetByID(ctx, accountID)
	if err != nil {
		return nil, persistence(err)
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	record := &models.TransactionRecord{
		AccountID:    accountID,
		Type:         creditType.TransactionType(),
		Amount:       amount,
		Status:       models.StatusSuccessful,
		AccountEmail: account.Email,
	}

	newBalance := account.Balance.Add(amount)

	if err := recordLedgerEntry(ctx, uow, record, newBalance); err != nil {
		return nil, persistence(err)
	}

	if err := uow.AccountRepository().ApplyCredit(ctx, accountID, amount, creditType); err != nil {
		return nil, persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, persistence(err)
	}

	log.WithFields(log.Fields{
		"accountId":  accountID,
		"amount":     amount.String(),
		"creditType": creditType,
	}).Info("Credit recorded")

	return &models.CreditResult{
		AccountID:  accountID,
		CreditType: creditType,
		Amount:     amount,
		NewBalance: newBalance,
		Record:     record,
	}, nil
}
