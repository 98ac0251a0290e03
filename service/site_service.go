package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/events"
)

// siteService implements the SiteService interface
type siteService struct {
	uowFactory UnitOfWorkFactory
}

// NewSiteService creates a new site settings service
func NewSiteService(uowFactory UnitOfWorkFactory) SiteService {
	return &siteService{uowFactory: uowFactory}
}

// SetWallet stores the deposit wallet address shown to customers
func (s *siteService) SetWallet(ctx context.Context, wallet string) error {
	if wallet == "" {
		return fmt.Errorf("%w: wallet address is required", ErrValidation)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return persistence(err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.SiteRepository().SetWallet(ctx, wallet); err != nil {
		return persistence(err)
	}

	uow.EventBus().Publish(events.WalletUpdatedEvent{Wallet: wallet})

	if err := uow.Commit(); err != nil {
		return persistence(err)
	}

	log.WithField("wallet", wallet).Info("Site wallet updated")
	return nil
}

// GetWallet returns the configured wallet address, or "" when unset
func (s *siteService) GetWallet(ctx context.Context) (string, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", persistence(err)
	}
	defer uow.Rollback()

	cfg, err := uow.SiteRepository().Get(ctx)
	if err != nil {
		return "", persistence(err)
	}
	if cfg == nil {
		return "", nil
	}
	return cfg.Wallet, nil
}
