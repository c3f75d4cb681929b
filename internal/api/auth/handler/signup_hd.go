package authHandler

import (
	"MyPockit/internal/api/auth"
	contextPkg "MyPockit/pkg/context"
	"MyPockit/pkg/handlerUtil"
	"MyPockit/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleRegister(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing signup request")

	var req auth.SignUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.authService.User().RegisterUser(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "User registered successfully, please verify your email",
		})
	}
}

func (h *AuthHandler) HandleVerifyRegistration(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	code := ctx.Query("code")
	if code == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("verification code is required"), ctx.Path())
	}

	if err := h.authService.User().VerifyRegistration(c, code); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "verify_registration")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "User verified successfully",
		})
	}
}

func (h *AuthHandler) HandleResendVerificationCode(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	email := ctx.Query("email")
	if email == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("email is required"), ctx.Path())
	}

	if err := h.authService.User().ResendVerificationCode(c, email); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resend_verification_code")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Verification code sent",
		})
	}
}
