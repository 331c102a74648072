package transaction

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/webapi/common"
)

// Service is the part of the transaction service the HTTP layer uses.
type Service interface {
	Create(ctx context.Context, req dto.TransactionRequest) (*dto.TransactionRead, error)
	Update(ctx context.Context, id uuid.UUID, req dto.TransactionRequest) (*dto.TransactionRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*dto.TransactionRead, error)
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*dto.TransactionRead, error)
	Summarize(ctx context.Context, userID string, days int) (*dto.FinancialSummary, error)
}

const (
	defaultPageSize    = 50
	defaultSummaryDays = 30
)

// Routes registers HTTP routes for transaction operations.
func Routes(app *fiber.App, svc Service) {
	g := app.Group("/api/transactions")
	g.Post("/", CreateTransaction(svc))
	g.Get("/user/:userId", ListUserTransactions(svc))
	g.Get("/user/:userId/summary", GetSummary(svc))
	g.Get("/:id", GetTransaction(svc))
	g.Put("/:id", UpdateTransaction(svc))
	g.Delete("/:id", DeleteTransaction(svc))
}

// CreateTransaction records a transaction and triggers fraud screening.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /api/transactions [post]
func CreateTransaction(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[dto.TransactionRequest](c)
		if err != nil {
			return nil
		}
		tx, err := svc.Create(c.UserContext(), *req)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// GetTransaction returns one transaction.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/transactions/{id} [get]
func GetTransaction(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		tx, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transaction not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction fetched", tx)
	}
}

// UpdateTransaction replaces the mutable fields of a transaction.
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 200 {object} common.Response
// @Router /api/transactions/{id} [put]
func UpdateTransaction(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		req, err := common.BindAndValidate[dto.TransactionRequest](c)
		if err != nil {
			return nil
		}
		tx, err := svc.Update(c.UserContext(), id, *req)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", tx)
	}
}

// DeleteTransaction removes a transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Router /api/transactions/{id} [delete]
func DeleteTransaction(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListUserTransactions pages through a user's transactions, newest first.
// With from and to (RFC 3339) it returns the whole range instead.
// @Summary List a user's transactions
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Param from query string false "Range start"
// @Param to query string false "Range end"
// @Success 200 {object} common.Response
// @Router /api/transactions/user/{userId} [get]
func ListUserTransactions(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
			start, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid from", err, fiber.StatusBadRequest)
			}
			end, err := time.Parse(time.RFC3339, to)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid to", err, fiber.StatusBadRequest)
			}
			txs, err := svc.ListByDateRange(c.UserContext(), userID, start, end)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
			}
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
		}

		limit, err := common.QueryInt(c, "limit", defaultPageSize)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid limit", err)
		}
		offset, err := common.QueryInt(c, "offset", 0)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid offset", err)
		}
		txs, err := svc.ListByUser(c.UserContext(), userID, limit, offset)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

// GetSummary returns the user's financial summary for the last days.
// @Summary Financial summary
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Param days query int false "Window in days"
// @Success 200 {object} common.Response
// @Router /api/transactions/user/{userId}/summary [get]
func GetSummary(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, err := common.QueryInt(c, "days", defaultSummaryDays)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid days", err)
		}
		summary, err := svc.Summarize(c.UserContext(), c.Params("userId"), days)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build summary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Summary fetched", summary)
	}
}
