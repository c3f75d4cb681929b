package categoryHandler

import (
	categoryService "MyPockit/internal/api/category/service"
	"MyPockit/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	log             *logrus.Logger
	categoryService categoryService.CategoryService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs categoryService.CategoryService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		categoryService: cs,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories")
	categories.Get("/all", h.middleware.NewTokenMiddleware, h.HandleGetAllCategories)

	transactionTypes := srv.Group("/transactiontype")
	transactionTypes.Get("/all", h.middleware.NewTokenMiddleware, h.HandleGetAllTransactionTypes)
}
