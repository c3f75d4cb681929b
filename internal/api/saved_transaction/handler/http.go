package savedTransactionHandler

import (
	savedTransactionService "MyPockit/internal/api/saved_transaction/service"
	"MyPockit/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SavedTransactionHandler struct {
	log                     *logrus.Logger
	savedTransactionService savedTransactionService.SavedTransactionService
	validator               *validator.Validate
	middleware              middleware.Middleware
}

func New(
	log *logrus.Logger,
	sts savedTransactionService.SavedTransactionService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *SavedTransactionHandler {
	return &SavedTransactionHandler{
		log:                     log,
		savedTransactionService: sts,
		validator:               validate,
		middleware:              middleware,
	}
}

func (h *SavedTransactionHandler) Start(srv fiber.Router) {
	plans := srv.Group("/saved-transactions", h.middleware.NewTokenMiddleware)
	plans.Post("/", h.HandleCreateSavedTransaction)
	plans.Get("/user", h.HandleGetSavedTransactionsByUser)
	plans.Get("/user/month", h.HandleGetSavedTransactionsByUserForCurrentMonth)
	plans.Post("/:id/add", h.HandleAddSavedTransaction)
	plans.Post("/:id/skip", h.HandleSkipSavedTransaction)
	plans.Put("/:id", h.HandleEditSavedTransaction)
	plans.Delete("/:id", h.HandleDeleteSavedTransaction)
	plans.Get("/:id", h.HandleGetSavedTransactionByID)
}
