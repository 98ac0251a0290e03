package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/config"
	"github.com/godwinide/peakedge/database"
	"github.com/godwinide/peakedge/events"
	"github.com/godwinide/peakedge/repository"
	"github.com/godwinide/peakedge/service"
	"github.com/godwinide/peakedge/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()

	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	// Event bus with the audit log subscriber attached
	eventBus := events.NewBus()
	subscribeAuditLog(eventBus)

	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	credentials := service.NewCredentialManager()
	ledgerService := service.NewLedgerService(uowFactory)
	accountService := service.NewAccountService(uowFactory, credentials)
	siteService := service.NewSiteService(uowFactory)

	sessions := web.NewSessionManager(cfg.SessionSecret, cfg.Environment == "production")
	handlers := web.NewHandlers(accountService, ledgerService, siteService, sessions, cfg.HistoryPageSize)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           web.NewRouter(handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"port":        cfg.Port,
			"environment": cfg.Environment,
		}).Info("Admin console listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	log.Info("Shutdown completed")
	return nil
}

// subscribeAuditLog logs every ledger and account event as a structured
// audit trail entry.
func subscribeAuditLog(bus *events.Bus) {
	bus.Subscribe(events.EventTypeLedgerEntryRecorded, func(ctx context.Context, event events.Event) {
		e := event.(events.LedgerEntryRecordedEvent)
		log.WithFields(log.Fields{
			"accountId":  e.AccountID,
			"recordId":   e.RecordID,
			"type":       e.TransactionType,
			"amount":     e.Amount.String(),
			"newBalance": e.NewBalance.String(),
		}).Info("Ledger entry recorded")
	})

	bus.Subscribe(events.EventTypeAccountRegistered, func(ctx context.Context, event events.Event) {
		e := event.(events.AccountRegisteredEvent)
		log.WithFields(log.Fields{
			"accountId": e.AccountID,
			"email":     e.Email,
		}).Info("Account registered")
	})

	bus.Subscribe(events.EventTypeWalletUpdated, func(ctx context.Context, event events.Event) {
		e := event.(events.WalletUpdatedEvent)
		log.WithField("wallet", e.Wallet).Info("Site wallet updated")
	})
}
