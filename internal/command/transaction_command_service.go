package command

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/tejpreet12/rn-wallet-backend/internal/cqrs"
	"github.com/tejpreet12/rn-wallet-backend/internal/events"
	"github.com/tejpreet12/rn-wallet-backend/internal/models"
)

// maxAmount is the magnitude bound imposed by the DECIMAL(10, 2) column.
var maxAmount = decimal.RequireFromString("99999999.99")

// TransactionWriter is the slice of the write repository used by the command service.
type TransactionWriter interface {
	Create(ctx context.Context, userID, title, category string, amount decimal.Decimal) (*models.Transaction, error)
	DeleteByID(ctx context.Context, id int64) (*models.Transaction, error)
}

// SummaryInvalidator drops a user's cached summary after a write.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context, userID string)
}

// EventPublisher emits domain events to the event stream.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransactionCommandService creates and deletes ledger entries. Each write is
// a single statement against Postgres; after it commits, the user's cached
// summary is invalidated and an event is published best-effort.
type TransactionCommandService struct {
	writeRepo TransactionWriter
	readRepo  SummaryInvalidator
	publisher EventPublisher
}

func NewTransactionCommandService(writeRepo TransactionWriter, readRepo SummaryInvalidator, publisher EventPublisher) *TransactionCommandService {
	return &TransactionCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

func (s *TransactionCommandService) CreateTransaction(ctx context.Context, cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	if cmd.Amount.Abs().GreaterThan(maxAmount) {
		return nil, fmt.Errorf("invalid amount")
	}

	transaction, err := s.writeRepo.Create(ctx, cmd.UserID, cmd.Title, cmd.Category, cmd.Amount)
	if err != nil {
		return nil, err
	}

	s.readRepo.InvalidateSummary(ctx, transaction.UserID)

	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: transaction.ID,
		UserID:        transaction.UserID,
		Amount:        transaction.Amount,
		Category:      transaction.Category,
	}); err != nil {
		log.Printf("Failed to publish transaction.created event: %v", err)
	}

	return transaction, nil
}

// DeleteTransaction removes a ledger entry and returns the pre-image of the
// deleted record, or a not-found error when no row matches.
func (s *TransactionCommandService) DeleteTransaction(ctx context.Context, cmd cqrs.DeleteTransactionCommand) (*models.Transaction, error) {
	transaction, err := s.writeRepo.DeleteByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	s.readRepo.InvalidateSummary(ctx, transaction.UserID)

	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionDeleted, events.TransactionDeletedEvent{
		TransactionID: transaction.ID,
		UserID:        transaction.UserID,
	}); err != nil {
		log.Printf("Failed to publish transaction.deleted event: %v", err)
	}

	return transaction, nil
}
