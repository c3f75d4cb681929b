package savedTransactionHandler

import (
	savedTransaction "MyPockit/internal/api/saved_transaction"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"MyPockit/pkg/handlerUtil"
	"MyPockit/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SavedTransactionHandler) HandleCreateSavedTransaction(ctx *fiber.Ctx) error {
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
	}).Debug("Processing create saved transaction request")

	var req savedTransaction.SavedTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.savedTransactionService.SavedTransaction().CreateSavedTransaction(c, user.ID, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_saved_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction has been successfully created!",
		})
	}
}

func (h *SavedTransactionHandler) HandleAddSavedTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	planID := ctx.Params("id")
	if planID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("saved transaction id is required"), ctx.Path())
	}

	if err := h.savedTransactionService.SavedTransaction().AddSavedTransaction(c, planID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_saved_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction has been successfully saved!",
		})
	}
}

func (h *SavedTransactionHandler) HandleEditSavedTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	planID := ctx.Params("id")
	if planID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("saved transaction id is required"), ctx.Path())
	}

	var req savedTransaction.SavedTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.savedTransactionService.SavedTransaction().EditSavedTransaction(c, planID, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "edit_saved_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction has been successfully edited!",
		})
	}
}

func (h *SavedTransactionHandler) HandleDeleteSavedTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	planID := ctx.Params("id")
	if planID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("saved transaction id is required"), ctx.Path())
	}

	if err := h.savedTransactionService.SavedTransaction().DeleteSavedTransaction(c, planID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_saved_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction deleted successfully!",
		})
	}
}

func (h *SavedTransactionHandler) HandleSkipSavedTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	planID := ctx.Params("id")
	if planID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("saved transaction id is required"), ctx.Path())
	}

	if err := h.savedTransactionService.SavedTransaction().SkipSavedTransaction(c, planID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "skip_saved_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction has been successfully skipped for period!",
		})
	}
}

func (h *SavedTransactionHandler) HandleGetSavedTransactionsByUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, ok := ctx.Locals("user").(entity.UserLoginData)
	if !ok {
		return errHandler.Handle(ctx, requestID,
			errors.New("user data missing from request context"), ctx.Path(), "get_user_from_context")
	}

	plans, err := h.savedTransactionService.SavedTransaction().GetSavedTransactionsByUser(c, user.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_saved_transactions_by_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, plans)
	}
}

func (h *SavedTransactionHandler) HandleGetSavedTransactionsByUserForCurrentMonth(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, ok := ctx.Locals("user").(entity.UserLoginData)
	if !ok {
		return errHandler.Handle(ctx, requestID,
			errors.New("user data missing from request context"), ctx.Path(), "get_user_from_context")
	}

	plans, err := h.savedTransactionService.SavedTransaction().GetSavedTransactionsByUserForCurrentMonth(c, user.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_saved_transactions_by_user_for_current_month")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, plans)
	}
}

func (h *SavedTransactionHandler) HandleGetSavedTransactionByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	planID := ctx.Params("id")
	if planID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("saved transaction id is required"), ctx.Path())
	}

	plan, err := h.savedTransactionService.SavedTransaction().GetSavedTransactionByID(c, planID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_saved_transaction_by_id")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, plan)
	}
}
