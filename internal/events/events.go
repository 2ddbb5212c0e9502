package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	TransactionCreated = "transaction.created"
	TransactionDeleted = "transaction.deleted"
)

// Stream names
const (
	TransactionEventsStream = "transaction.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type TransactionCreatedEvent struct {
	TransactionID int64           `json:"transactionId"`
	UserID        string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
}

type TransactionDeletedEvent struct {
	TransactionID int64  `json:"transactionId"`
	UserID        string `json:"userId"`
}
