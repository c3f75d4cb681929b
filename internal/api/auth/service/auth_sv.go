package authService

import (
	"MyPockit/internal/api/auth"
	contextPkg "MyPockit/pkg/context"
	jwtPkg "MyPockit/pkg/jwt"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenDuration = 24 * time.Hour

func (s *authDomainImpl) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Login attempt with wrong password")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	if !user.IsVerified {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Login attempt by unverified user")
		return auth.LoginUserResponse{}, auth.ErrUserNotVerified
	}

	claims := map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	}

	accessToken, expiredAt, err := jwtPkg.Sign(claims, accessTokenDuration)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginUserResponse{}, err
	}

	return auth.LoginUserResponse{
		AccessToken:      accessToken,
		ExpiresInMinutes: time.Until(time.Unix(expiredAt, 0)).Minutes(),
	}, nil
}
