package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"quizforge/internal/cache"
	"quizforge/internal/domain"
	"quizforge/internal/logger"
)

// VerificationService issues and checks emailed one-time codes.
type VerificationService interface {
	SendCode(ctx context.Context, email string, codeType domain.VerificationType) error
	VerifyCode(ctx context.Context, email, code string, codeType domain.VerificationType) (bool, error)
}

type verificationService struct {
	store  domain.Cache
	mailer domain.Mailer
}

func NewVerificationService(store domain.Cache, mailer domain.Mailer) VerificationService {
	return &verificationService{store: store, mailer: mailer}
}

// SendCode generates a 6-digit code, stores it with a 10 minute TTL and
// emails it. A newer code replaces any outstanding one.
func (s *verificationService) SendCode(ctx context.Context, email string, codeType domain.VerificationType) error {
	if !codeType.IsValid() {
		return domain.NewInvalidInputError("unsupported verification type")
	}

	code, err := generateCode()
	if err != nil {
		return domain.NewInternalError("failed to generate verification code", err)
	}

	key := cache.VerificationCodeKey(string(codeType), email)
	if err := s.store.Set(ctx, key, code, domain.VerificationCodeTTL); err != nil {
		return domain.NewInternalError("failed to store verification code", err)
	}

	if err := s.mailer.SendVerificationCode(email, code, codeType); err != nil {
		logger.Get().Error("Failed to send verification email",
			zap.String("email", email), zap.Error(err))
		return domain.NewInternalError("failed to send verification email", err)
	}
	return nil
}

// VerifyCode compares the submitted code against the stored one. A match
// consumes the code.
func (s *verificationService) VerifyCode(ctx context.Context, email, code string, codeType domain.VerificationType) (bool, error) {
	if !codeType.IsValid() {
		return false, domain.NewInvalidInputError("unsupported verification type")
	}

	key := cache.VerificationCodeKey(string(codeType), email)
	stored, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return false, nil
		}
		return false, domain.NewInternalError("failed to read verification code", err)
	}
	if stored != code {
		return false, nil
	}

	if err := s.store.Delete(ctx, key); err != nil {
		logger.Get().Warn("Failed to invalidate verification code",
			zap.String("email", email), zap.Error(err))
	}
	return true, nil
}

// generateCode returns a uniformly random 6-digit decimal code.
func generateCode() (string, error) {
	max := big.NewInt(900000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
