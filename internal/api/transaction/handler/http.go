package transactionHandler

import (
	transactionService "MyPockit/internal/api/transaction/service"
	"MyPockit/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	transactionService transactionService.TransactionService
	validator          *validator.Validate
	middleware         middleware.Middleware
}

func New(
	log *logrus.Logger,
	ts transactionService.TransactionService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		transactionService: ts,
		validator:          validate,
		middleware:         middleware,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions", h.middleware.NewTokenMiddleware)
	transactions.Post("/", h.HandleCreateTransaction)
	transactions.Get("/user", h.HandleGetTransactionsByUser)
	transactions.Delete("/:id", h.HandleDeleteTransaction)
}
