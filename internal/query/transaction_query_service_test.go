package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tejpreet12/rn-wallet-backend/internal/cqrs"
	"github.com/tejpreet12/rn-wallet-backend/internal/models"
)

type mockReader struct {
	listFn    func(userID string) ([]models.Transaction, error)
	summaryFn func(userID string) (*models.TransactionSummary, error)
	calls     int
}

func (m *mockReader) ListByUserID(_ context.Context, userID string) ([]models.Transaction, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockReader) SummarizeByUserID(_ context.Context, userID string) (*models.TransactionSummary, error) {
	m.calls++
	if m.summaryFn != nil {
		return m.summaryFn(userID)
	}
	return nil, fmt.Errorf("not configured")
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestListTransactions(t *testing.T) {
	t.Run("missing userId never reaches the store", func(t *testing.T) {
		reader := &mockReader{}
		svc := NewTransactionQueryService(reader)
		_, err := svc.ListTransactions(context.Background(), cqrs.ListTransactionsQuery{})
		if err == nil || err.Error() != "missing userId" {
			t.Fatalf("expected missing userId error, got %v", err)
		}
		if reader.calls != 0 {
			t.Errorf("store must not be queried without a userId")
		}
	})

	t.Run("store order is preserved and empty is not an error", func(t *testing.T) {
		ordered := []models.Transaction{{ID: 9}, {ID: 4}, {ID: 1}}
		reader := &mockReader{listFn: func(userID string) ([]models.Transaction, error) {
			if userID == "user_1" {
				return ordered, nil
			}
			return nil, nil
		}}
		svc := NewTransactionQueryService(reader)

		transactions, err := svc.ListTransactions(context.Background(), cqrs.ListTransactionsQuery{UserID: "user_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, want := range []int64{9, 4, 1} {
			if transactions[i].ID != want {
				t.Errorf("position %d: expected id %d got %d", i, want, transactions[i].ID)
			}
		}

		empty, err := svc.ListTransactions(context.Background(), cqrs.ListTransactionsQuery{UserID: "user_2"})
		if err != nil {
			t.Fatalf("an empty ledger must not be an error: %v", err)
		}
		if len(empty) != 0 {
			t.Errorf("expected no transactions, got %v", empty)
		}
	})
}

func TestGetSummary(t *testing.T) {
	t.Run("missing userId never reaches the store", func(t *testing.T) {
		reader := &mockReader{}
		svc := NewTransactionQueryService(reader)
		_, err := svc.GetSummary(context.Background(), cqrs.GetSummaryQuery{})
		if err == nil || err.Error() != "missing userId" {
			t.Fatalf("expected missing userId error, got %v", err)
		}
		if reader.calls != 0 {
			t.Errorf("store must not be queried without a userId")
		}
	})

	t.Run("aggregate passes through unchanged", func(t *testing.T) {
		reader := &mockReader{summaryFn: func(userID string) (*models.TransactionSummary, error) {
			return &models.TransactionSummary{Balance: amt("125"), Income: amt("150"), Expense: amt("-25")}, nil
		}}
		svc := NewTransactionQueryService(reader)

		summary, err := svc.GetSummary(context.Background(), cqrs.GetSummaryQuery{UserID: "user_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.Balance.Equal(amt("125")) || !summary.Income.Equal(amt("150")) || !summary.Expense.Equal(amt("-25")) {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("empty ledger yields zero values", func(t *testing.T) {
		reader := &mockReader{summaryFn: func(userID string) (*models.TransactionSummary, error) {
			return &models.TransactionSummary{}, nil
		}}
		svc := NewTransactionQueryService(reader)

		summary, err := svc.GetSummary(context.Background(), cqrs.GetSummaryQuery{UserID: "user_2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.Balance.IsZero() || !summary.Income.IsZero() || !summary.Expense.IsZero() {
			t.Errorf("expected all-zero summary, got %+v", summary)
		}
	})
}
