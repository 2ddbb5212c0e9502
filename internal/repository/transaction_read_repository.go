package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tejpreet12/rn-wallet-backend/internal/models"
	"github.com/tejpreet12/rn-wallet-backend/internal/redis"
)

const summaryViewKeyPrefix = "summary:view:"

// summaryViewTTL bounds staleness if an invalidation is ever lost.
const summaryViewTTL = 30 * time.Second

// TransactionReadRepository handles all read operations for transactions.
// Listing always hits PostgreSQL; the per-user summary is cached in Redis and
// invalidated by the write side on every create or delete.
type TransactionReadRepository struct {
	db    *sql.DB
	cache *redis.ViewCache[models.TransactionSummary]
}

func NewTransactionReadRepository(db *sql.DB, redisClient *goredis.Client) *TransactionReadRepository {
	return &TransactionReadRepository{
		db:    db,
		cache: redis.NewViewCache[models.TransactionSummary](redisClient, summaryViewTTL),
	}
}

// ListByUserID returns all transactions for a user, newest first. Entries
// sharing a timestamp are ordered by descending id so the result is
// deterministic.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// SummarizeByUserID computes balance, income and expense for a user in a
// single scan of the ledger. One statement instead of three keeps it to one
// round trip against a remote store. COALESCE pins every field to 0 when the
// user has no rows; the CASE arms use strict inequalities so a zero amount
// counts toward balance only.
func (r *TransactionReadRepository) SummarizeByUserID(ctx context.Context, userID string) (*models.TransactionSummary, error) {
	cacheKey := summaryViewKeyPrefix + userID
	if summary, ok := r.cache.Get(ctx, cacheKey); ok {
		return summary, nil
	}

	query := `
		SELECT
			COALESCE(SUM(amount), 0) AS balance,
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount END), 0) AS income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN amount END), 0) AS expense
		FROM transactions
		WHERE user_id = $1
	`
	var summary models.TransactionSummary
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&summary.Balance, &summary.Income, &summary.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &summary)
	return &summary, nil
}

// InvalidateSummary drops the cached summary for a user. Called by the write
// side after every successful create or delete.
func (r *TransactionReadRepository) InvalidateSummary(ctx context.Context, userID string) {
	r.cache.Delete(ctx, summaryViewKeyPrefix+userID)
}
