package auth

import (
	"MyPockit/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists      = response.NewError(http.StatusConflict, "email already exists")
	ErrUsernameAlreadyExists   = response.NewError(http.StatusConflict, "username already exists")
	ErrUserNotFound            = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidEmailOrPassword  = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotVerified         = response.NewError(http.StatusForbidden, "user is not verified")
	ErrVerificationCodeExpired = response.NewError(http.StatusBadRequest, "verification code expired or not found")
	ErrInvalidVerificationCode = response.NewError(http.StatusBadRequest, "invalid verification code")
)
