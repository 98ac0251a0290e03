package events

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/godwinide/peakedge/models"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeLedgerEntryRecorded EventType = "ledger_entry_recorded"
	EventTypeAccountRegistered   EventType = "account_registered"
	EventTypeWalletUpdated       EventType = "wallet_updated"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// LedgerEntryRecordedEvent is published after a deposit or credit has been
// committed together with its history record
type LedgerEntryRecordedEvent struct {
	AccountID       string
	RecordID        int64
	TransactionType models.TransactionType
	Amount          decimal.Decimal
	NewBalance      decimal.Decimal
}

func (e LedgerEntryRecordedEvent) Type() EventType {
	return EventTypeLedgerEntryRecorded
}

// AccountRegisteredEvent is published when a customer completes signup
type AccountRegisteredEvent struct {
	AccountID string
	Email     string
	Username  string
}

func (e AccountRegisteredEvent) Type() EventType {
	return EventTypeAccountRegistered
}

// WalletUpdatedEvent is published when the site payout wallet changes
type WalletUpdatedEvent struct {
	Wallet string
}

func (e WalletUpdatedEvent) Type() EventType {
	return EventTypeWalletUpdated
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Handlers run asynchronously so a slow subscriber cannot block the
	// request that produced the event.
	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}

// TransactionalBus stashes events published during a unit of work and only
// forwards them to the real bus once the transaction has committed.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush is called after a successful commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	// Events should outlive the transaction context that produced them.
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// Discard is called after rollback to drop buffered events
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
