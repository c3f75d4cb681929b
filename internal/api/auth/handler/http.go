package authHandler

import (
	authService "MyPockit/internal/api/auth/service"
	"MyPockit/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth", h.middleware.NewRateLimiter)
	auth.Post("/signup", h.HandleRegister)
	auth.Get("/signup/verify", h.HandleVerifyRegistration)
	auth.Get("/signup/resend", h.HandleResendVerificationCode)
	auth.Post("/login", h.HandleLogin)

	users := srv.Group("/users")
	users.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetCurrentUser)
}
