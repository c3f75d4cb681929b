package config

import (
	"MyPockit/database/postgres"
	"MyPockit/database/seeder"
	authHandler "MyPockit/internal/api/auth/handler"
	authRepository "MyPockit/internal/api/auth/repository"
	authService "MyPockit/internal/api/auth/service"
	categoryHandler "MyPockit/internal/api/category/handler"
	categoryRepository "MyPockit/internal/api/category/repository"
	categoryService "MyPockit/internal/api/category/service"
	savedTransactionHandler "MyPockit/internal/api/saved_transaction/handler"
	savedTransactionRepository "MyPockit/internal/api/saved_transaction/repository"
	savedTransactionService "MyPockit/internal/api/saved_transaction/service"
	transactionHandler "MyPockit/internal/api/transaction/handler"
	transactionRepository "MyPockit/internal/api/transaction/repository"
	transactionService "MyPockit/internal/api/transaction/service"
	"MyPockit/internal/middleware"
	"MyPockit/pkg/bcrypt"
	"MyPockit/pkg/redis"
	"MyPockit/pkg/smtp"
	"MyPockit/pkg/utils"
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

// WithSeeder loads the reference data (transaction types, default categories,
// admin account) before the server starts accepting requests.
func WithSeeder() ServerOption {
	return func(s *Server) error {
		if s.db == nil {
			return fmt.Errorf("database must be initialized before seeding")
		}
		if err := seeder.New(s.db, s.log).Run(context.Background()); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.smtpMailer, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Category / Transaction Type Lookups
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.New(s.log, categoryRepo)
	categoryHandlers := categoryHandler.New(s.log, categoryServices, s.validator, s.middleware)

	// Realized Transactions
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.New(s.log, transactionRepo, categoryRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, transactionServices, s.validator, s.middleware)

	// Saved / Recurring Transactions
	savedTransactionRepo := savedTransactionRepository.New(s.db, s.log)
	savedTransactionServices := savedTransactionService.New(s.log, savedTransactionRepo, categoryRepo, authRepo, s.utils)
	savedTransactionHandlers := savedTransactionHandler.New(s.log, savedTransactionServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, categoryHandlers, transactionHandlers, savedTransactionHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
