package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tejpreet12/rn-wallet-backend/internal/models"
)

// InitSchema creates the transactions table if it does not exist yet. The
// DECIMAL(10, 2) column bounds amounts to ±99999999.99 with two fractional
// digits; id and created_at are assigned by the store on insert.
func InitSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			title VARCHAR(255) NOT NULL,
			amount DECIMAL(10, 2) NOT NULL,
			category VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// TransactionWriteRepository handles all state-mutating operations for
// transactions. It operates exclusively against the PostgreSQL write store
// (source of truth); every operation is a single atomic statement.
type TransactionWriteRepository struct {
	db *sql.DB
}

func NewTransactionWriteRepository(db *sql.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Create inserts a new ledger entry and returns the stored record with its
// assigned id and timestamp.
func (r *TransactionWriteRepository) Create(ctx context.Context, userID, title, category string, amount decimal.Decimal) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, title, category, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, amount, category, created_at
	`
	var t models.Transaction
	err := r.db.QueryRowContext(ctx, query, userID, title, category, amount).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &t, nil
}

// DeleteByID removes a ledger entry and returns the deleted record so the
// caller can confirm exactly what was removed.
func (r *TransactionWriteRepository) DeleteByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		DELETE FROM transactions
		WHERE id = $1
		RETURNING id, user_id, title, amount, category, created_at
	`
	var t models.Transaction
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return &t, nil
}
