package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tejpreet12/rn-wallet-backend/internal/cqrs"
	"github.com/tejpreet12/rn-wallet-backend/internal/middleware"
	"github.com/tejpreet12/rn-wallet-backend/internal/models"
)

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(ctx context.Context, cmd cqrs.CreateTransactionCommand) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, cmd cqrs.DeleteTransactionCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error)
	GetSummary(ctx context.Context, q cqrs.GetSummaryQuery) (*models.TransactionSummary, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

// CreateTransactionRequest carries the caller-supplied fields of a new ledger
// entry. Amount is a pointer so an absent field is distinguishable from zero;
// decimal parsing rejects non-numeric input during body binding.
type CreateTransactionRequest struct {
	UserID   string           `json:"user_id" validate:"required"`
	Title    string           `json:"title" validate:"required"`
	Category string           `json:"category" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.RespondWithError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		return middleware.RespondWithValidationError(c, validationErrors)
	}

	transaction, err := h.commands.CreateTransaction(c.UserContext(), cqrs.CreateTransactionCommand{
		UserID:   req.UserID,
		Title:    req.Title,
		Category: req.Category,
		Amount:   *req.Amount,
	})
	if err != nil {
		switch err.Error() {
		case "invalid amount":
			return middleware.RespondWithError(c, fiber.StatusBadRequest, "Invalid amount")
		default:
			return middleware.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return middleware.RespondWithError(c, fiber.StatusBadRequest, "Missing userId")
	}

	transactions, err := h.queries.ListTransactions(c.UserContext(), cqrs.ListTransactionsQuery{UserID: userID})
	if err != nil {
		switch err.Error() {
		case "missing userId":
			return middleware.RespondWithError(c, fiber.StatusBadRequest, "Missing userId")
		default:
			return middleware.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}
	if len(transactions) == 0 {
		return middleware.RespondWithError(c, fiber.StatusNotFound, "No transactions found")
	}

	return c.JSON(fiber.Map{
		"message":     "Transactions fetched successfully",
		"transaction": transactions,
	})
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.RespondWithError(c, fiber.StatusBadRequest, "Invalid transaction ID")
	}

	transaction, err := h.commands.DeleteTransaction(c.UserContext(), cqrs.DeleteTransactionCommand{ID: id})
	if err != nil {
		switch err.Error() {
		case "transaction not found":
			return middleware.RespondWithError(c, fiber.StatusNotFound, "Transaction not found")
		default:
			return middleware.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(fiber.Map{
		"message":     "Transaction deleted successfully",
		"transaction": transaction,
	})
}

func (h *TransactionHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return middleware.RespondWithError(c, fiber.StatusBadRequest, "Missing userId")
	}

	summary, err := h.queries.GetSummary(c.UserContext(), cqrs.GetSummaryQuery{UserID: userID})
	if err != nil {
		switch err.Error() {
		case "missing userId":
			return middleware.RespondWithError(c, fiber.StatusBadRequest, "Missing userId")
		default:
			return middleware.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Transaction summary fetched successfully",
		"balance": summary.Balance,
		"income":  summary.Income,
		"expense": summary.Expense,
	})
}

// HealthCheck reports liveness. An external scheduled task hits this endpoint
// to keep the instance warm.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
