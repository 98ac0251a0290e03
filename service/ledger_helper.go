package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/godwinide/peakedge/events"
	"github.com/godwinide/peakedge/models"
)

// recordLedgerEntry appends a history record and queues the matching event
// on the unit of work's transactional bus. This is the single entry point
// for all ledger writes.
func recordLedgerEntry(ctx context.Context, uow UnitOfWork, record *models.TransactionRecord, newBalance decimal.Decimal) error {
	if err := uow.HistoryRepository().Record(ctx, record); err != nil {
		return fmt.Errorf("failed to record transaction history: %w", err)
	}

	uow.EventBus().Publish(events.LedgerEntryRecordedEvent{
		AccountID:       record.AccountID,
		RecordID:        record.ID,
		TransactionType: record.Type,
		Amount:          record.Amount,
		NewBalance:      newBalance,
	})

	return nil
}
