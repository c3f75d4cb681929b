package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

type IRedis interface {
	SetVerificationCode(ctx context.Context, key string, code string, expiration time.Duration) error
	GetVerificationCode(ctx context.Context, key string) (string, error)
	GetEmailByVerificationCode(ctx context.Context, code string) (string, error)
	DeleteVerificationCode(ctx context.Context, key string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

// SetVerificationCode stores the code under the user's email and a reverse
// entry under the code itself, so signup verification can resolve the email
// from the code alone.
func (r *redisClient) SetVerificationCode(ctx context.Context, key string, code string, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Setting verification code for key %s with expiration %v", key, expiration))
	if err := r.client.Set(ctx, verificationKey(key), code, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting verification code for key %s: %v", key, err))
		return err
	}
	if err := r.client.Set(ctx, reverseKey(code), key, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting reverse verification entry for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetVerificationCode(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, verificationKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Verification code not found for key %s", key))
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting verification code for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) GetEmailByVerificationCode(ctx context.Context, code string) (string, error) {
	val, err := r.client.Get(ctx, reverseKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug("No email found for verification code")
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error resolving verification code: %v", err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteVerificationCode(ctx context.Context, key string) error {
	code, err := r.client.Get(ctx, verificationKey(key)).Result()
	if err == nil {
		if _, err := r.client.Del(ctx, reverseKey(code)).Result(); err != nil {
			logrus.Error(fmt.Sprintf("Error deleting reverse verification entry for key %s: %v", key, err))
		}
	}

	result, err := r.client.Del(ctx, verificationKey(key)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting verification code for key %s: %v", key, err))
		return err
	}

	if result == 0 {
		logrus.Debug(fmt.Sprintf("Verification code key %s not found for deletion", key))
	}

	return nil
}

func verificationKey(email string) string {
	return "verification:" + email
}

func reverseKey(code string) string {
	return "verification:code:" + code
}
