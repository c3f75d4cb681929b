package authService

import (
	"MyPockit/internal/api/auth"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	verificationCodeLength = 6
	verificationCodeTTL    = 15 * time.Minute
)

func (s *userDomainImpl) RegisterUser(ctx context.Context, req auth.SignUpRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	emailTaken, err := repo.Users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check email existence")
		return err
	}
	if emailTaken {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Email already registered")
		return auth.ErrEmailAlreadyExists
	}

	usernameTaken, err := repo.Users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check username existence")
		return err
	}
	if usernameTaken {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Username already registered")
		return auth.ErrUsernameAlreadyExists
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := entity.User{
		ID:       ULID,
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	if err := s.sendVerificationCode(ctx, req.Email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send verification code")
		return err
	}

	return nil
}

func (s *userDomainImpl) VerifyRegistration(ctx context.Context, code string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	email, err := s.redisServer.GetEmailByVerificationCode(ctx, code)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Verification code not found or expired")
		return auth.ErrVerificationCodeExpired
	}

	storedCode, err := s.redisServer.GetVerificationCode(ctx, email)
	if err != nil || storedCode != code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid verification code")
		return auth.ErrInvalidVerificationCode
	}

	if err := repo.Users.UpdateVerificationStatus(ctx, email, true); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("User not found for verification")
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update verification status")
		return err
	}

	if err := s.redisServer.DeleteVerificationCode(ctx, email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete verification code after use")
	}

	return nil
}

func (s *userDomainImpl) ResendVerificationCode(ctx context.Context, email string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("User not found for resend")
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return err
	}

	if user.IsVerified {
		return nil
	}

	if err := s.sendVerificationCode(ctx, email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to resend verification code")
		return err
	}

	return nil
}

func (s *userDomainImpl) GetByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    id,
			}).Warn("User not found")
			return entity.User{}, auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return entity.User{}, err
	}

	return user, nil
}

func (s *userDomainImpl) sendVerificationCode(ctx context.Context, email string) error {
	code, err := s.utils.NewVerificationCode(verificationCodeLength)
	if err != nil {
		return err
	}

	if err := s.redisServer.SetVerificationCode(ctx, email, code, verificationCodeTTL); err != nil {
		return err
	}

	return s.smtpMailer.SendVerificationCode(email, code)
}
