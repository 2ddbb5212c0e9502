package query

import (
	"context"
	"fmt"

	"github.com/tejpreet12/rn-wallet-backend/internal/cqrs"
	"github.com/tejpreet12/rn-wallet-backend/internal/models"
)

// TransactionReader is the slice of the read repository used by the query service.
type TransactionReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	SummarizeByUserID(ctx context.Context, userID string) (*models.TransactionSummary, error)
}

// TransactionQueryService serves ledger reads. An empty result is a normal
// outcome here; distinguishing it from a missing user id happens at the
// handler.
type TransactionQueryService struct {
	readRepo TransactionReader
}

func NewTransactionQueryService(readRepo TransactionReader) *TransactionQueryService {
	return &TransactionQueryService{readRepo: readRepo}
}

// ListTransactions returns all transactions for a user ordered newest first.
func (s *TransactionQueryService) ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("missing userId")
	}
	return s.readRepo.ListByUserID(ctx, q.UserID)
}

// GetSummary returns the balance/income/expense aggregate for a user. Every
// field is zero (never absent) for a user without transactions.
func (s *TransactionQueryService) GetSummary(ctx context.Context, q cqrs.GetSummaryQuery) (*models.TransactionSummary, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("missing userId")
	}
	return s.readRepo.SummarizeByUserID(ctx, q.UserID)
}
