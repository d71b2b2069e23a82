package backend

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/elifesajna/self-employ-final/domain"
)

// CodeConfig tunes one-time verification codes.
type CodeConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// CodeService implements domain.VerificationCodeService with Redis
// persistence. Codes expire on TTL, verification attempts are counted,
// and reissues are throttled per mobile number.
type CodeService struct {
	redisClient *redis.Client
	config      CodeConfig
}

// NewCodeService creates a Redis-based verification code service.
func NewCodeService(redisClient *redis.Client, config CodeConfig) *CodeService {
	return &CodeService{redisClient: redisClient, config: config}
}

func codeKey(mobileNumber string) string    { return "vcode:" + mobileNumber }
func attemptKey(mobileNumber string) string { return "vcode:att:" + mobileNumber }
func resendKey(mobileNumber string) string  { return "vcode:res:" + mobileNumber }

// Issue implements domain.VerificationCodeService
func (s *CodeService) Issue(ctx context.Context, mobileNumber string) (string, error) {
	if canResend, waitTime, _ := s.CanResend(ctx, mobileNumber); !canResend {
		return "", fmt.Errorf("%w: wait %d seconds", domain.ErrCodeResendLimit, waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.redisClient.Set(ctx, codeKey(mobileNumber), code, s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	if err := s.redisClient.Set(ctx, attemptKey(mobileNumber), 0, s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to initialize attempts counter: %w", err)
	}
	if err := s.redisClient.Set(ctx, resendKey(mobileNumber), 1, s.config.ResendWindow).Err(); err != nil {
		return "", fmt.Errorf("failed to set resend throttle: %w", err)
	}

	return code, nil
}

// Consume implements domain.VerificationCodeService. A matching code
// is one-time: it is deleted on success.
func (s *CodeService) Consume(ctx context.Context, mobileNumber, code string) (bool, error) {
	attempts, err := s.redisClient.Incr(ctx, attemptKey(mobileNumber)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, codeKey(mobileNumber), attemptKey(mobileNumber))
		return false, domain.ErrCodeMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, codeKey(mobileNumber)).Result()
	if err == redis.Nil {
		return false, domain.ErrCodeNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get verification code: %w", err)
	}

	if storedCode != code {
		return false, domain.ErrCodeInvalid
	}

	s.redisClient.Del(ctx, codeKey(mobileNumber), attemptKey(mobileNumber))
	return true, nil
}

// CanResend implements domain.VerificationCodeService
func (s *CodeService) CanResend(ctx context.Context, mobileNumber string) (bool, int64, error) {
	ttl, err := s.redisClient.TTL(ctx, resendKey(mobileNumber)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code.
func (s *CodeService) generateSecureCode() (string, error) {
	length := s.config.Length
	if length <= 0 {
		length = 6
	}
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
