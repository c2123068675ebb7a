package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quizforge/internal/cache"
	"quizforge/internal/domain"
	"quizforge/internal/logger"
)

// GuestQuotaService limits how many quizzes an unauthenticated client may
// generate inside a rolling window, keyed by IP.
type GuestQuotaService interface {
	// Consume records one generation attempt and reports whether the caller
	// is still within the quota.
	Consume(ctx context.Context, ip string) error
}

type guestQuotaService struct {
	store  domain.Cache
	limit  int
	window time.Duration
}

func NewGuestQuotaService(store domain.Cache, limit int, window time.Duration) GuestQuotaService {
	return &guestQuotaService{store: store, limit: limit, window: window}
}

func (s *guestQuotaService) Consume(ctx context.Context, ip string) error {
	key := cache.GuestQuotaKey(ip)

	count, err := s.store.Incr(ctx, key)
	if err != nil {
		return domain.NewInternalError("failed to update guest quota", err)
	}
	if count == 1 {
		// First hit opens the window.
		if err := s.store.Expire(ctx, key, s.window); err != nil {
			logger.Get().Warn("Failed to set guest quota expiry",
				zap.String("ip", ip), zap.Error(err))
		}
	}

	if count > int64(s.limit) {
		return domain.NewQuotaExceededError("Guest quiz limit reached. Please sign in to generate more quizzes.")
	}
	return nil
}
