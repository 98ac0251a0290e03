package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/godwinide/peakedge/models"
)

func TestTransactionalBusFlushDeliversEvents(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	eventReceived := make(chan LedgerEntryRecordedEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	mainBus.Subscribe(EventTypeLedgerEntryRecorded, func(ctx context.Context, event Event) {
		defer wg.Done()
		ledgerEvent, ok := event.(LedgerEntryRecordedEvent)
		if !ok {
			t.Errorf("Expected LedgerEntryRecordedEvent, got %T", event)
			return
		}
		select {
		case eventReceived <- ledgerEvent:
		case <-time.After(1 * time.Second):
			t.Error("Timeout sending event to channel")
		}
	})

	testEvent := LedgerEntryRecordedEvent{
		AccountID:       "9f1f1a6e-8d1f-4a5c-9b58-0a4c9f3c2d11",
		RecordID:        7,
		TransactionType: models.TransactionTypeCreditDeposit,
		Amount:          decimal.NewFromInt(500),
		NewBalance:      decimal.NewFromInt(1500),
	}

	transactionalBus.Publish(testEvent)

	err := transactionalBus.Flush(context.Background())
	assert.NoError(t, err)

	wg.Wait()

	received := <-eventReceived
	assert.Equal(t, testEvent.AccountID, received.AccountID)
	assert.Equal(t, testEvent.RecordID, received.RecordID)
	assert.True(t, testEvent.Amount.Equal(received.Amount))
}

func TestTransactionalBusDiscardDropsEvents(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	delivered := make(chan struct{}, 1)
	mainBus.Subscribe(EventTypeWalletUpdated, func(ctx context.Context, event Event) {
		delivered <- struct{}{}
	})

	transactionalBus.Publish(WalletUpdatedEvent{Wallet: "0xabc"})
	transactionalBus.Discard()

	err := transactionalBus.Flush(context.Background())
	assert.NoError(t, err)

	select {
	case <-delivered:
		t.Error("Discarded event should not have been delivered")
	case <-time.After(100 * time.Millisecond):
	}
}
