package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. The id and created_at columns are
// store-assigned; records are immutable once written and removed only by an
// explicit delete.
type Transaction struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionSummary is the aggregated view of a user's ledger. The sign
// convention follows the stored amounts: income sums the positive rows,
// expense sums the negative rows and stays negative, balance sums everything.
type TransactionSummary struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
