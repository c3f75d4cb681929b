package categoryHandler

import (
	"MyPockit/internal/api/category"
	contextPkg "MyPockit/pkg/context"
	"MyPockit/pkg/handlerUtil"
	"MyPockit/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CategoryHandler) HandleGetAllCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all categories request")

	categories, err := h.categoryService.Category().GetAllCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_categories")
	}

	typeNames := map[int]string{}
	transactionTypes, err := h.categoryService.Category().GetAllTransactionTypes(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_transaction_types")
	}
	for _, tt := range transactionTypes {
		typeNames[tt.ID] = tt.Name
	}

	result := make([]category.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		result = append(result, category.CategoryResponse{
			ID:                cat.ID,
			Name:              cat.Name,
			TransactionTypeID: cat.TransactionTypeID,
			TransactionType:   typeNames[cat.TransactionTypeID],
			Enabled:           cat.Enabled,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *CategoryHandler) HandleGetAllTransactionTypes(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all transaction types request")

	transactionTypes, err := h.categoryService.Category().GetAllTransactionTypes(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_transaction_types")
	}

	result := make([]category.TransactionTypeResponse, 0, len(transactionTypes))
	for _, tt := range transactionTypes {
		result = append(result, category.TransactionTypeResponse{
			ID:   tt.ID,
			Name: tt.Name,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
