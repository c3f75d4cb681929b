package transactionHandler

import (
	"MyPockit/internal/api/transaction"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"MyPockit/pkg/handlerUtil"
	"MyPockit/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) HandleCreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, ok := ctx.Locals("user").(entity.UserLoginData)
	if !ok {
		return errHandler.Handle(ctx, requestID,
			errors.New("user data missing from request context"), ctx.Path(), "get_user_from_context")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req transaction.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.transactionService.Transaction().CreateTransaction(c, user.ID, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction created successfully",
		})
	}
}

func (h *TransactionHandler) HandleGetTransactionsByUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, ok := ctx.Locals("user").(entity.UserLoginData)
	if !ok {
		return errHandler.Handle(ctx, requestID,
			errors.New("user data missing from request context"), ctx.Path(), "get_user_from_context")
	}

	transactions, err := h.transactionService.Transaction().GetTransactionsByUserID(c, user.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions_by_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transactions)
	}
}

func (h *TransactionHandler) HandleDeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, ok := ctx.Locals("user").(entity.UserLoginData)
	if !ok {
		return errHandler.Handle(ctx, requestID,
			errors.New("user data missing from request context"), ctx.Path(), "get_user_from_context")
	}

	transactionID := ctx.Params("id")
	if transactionID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction id is required"), ctx.Path())
	}

	if err := h.transactionService.Transaction().DeleteTransaction(c, user.ID, transactionID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction deleted successfully",
		})
	}
}
