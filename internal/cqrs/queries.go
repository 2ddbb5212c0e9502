package cqrs

// ListTransactionsQuery fetches all transactions for a user, newest first.
type ListTransactionsQuery struct {
	UserID string
}

// GetSummaryQuery fetches the balance/income/expense aggregate for a user.
type GetSummaryQuery struct {
	UserID string
}
