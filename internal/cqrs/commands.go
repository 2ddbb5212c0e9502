package cqrs

import "github.com/shopspring/decimal"

type CreateTransactionCommand struct {
	UserID   string
	Title    string
	Category string
	Amount   decimal.Decimal
}

type DeleteTransactionCommand struct {
	ID int64
}
