package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"quizforge/internal/domain"
	"quizforge/internal/logger"
)

// ModelInvoker runs a prompt against the primary model and, when the primary
// fails on a rate-limit or quota error, retries once against the fallback.
type ModelInvoker struct {
	primary  domain.TextGenerator
	fallback domain.TextGenerator
}

func NewModelInvoker(primary, fallback domain.TextGenerator) *ModelInvoker {
	return &ModelInvoker{primary: primary, fallback: fallback}
}

// Invoke sends the prompt to the primary model. Any non-retryable primary
// error is returned as-is; a retryable one triggers exactly one fallback
// attempt.
func (m *ModelInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	log := logger.Get()

	if m.primary == nil || m.fallback == nil {
		return "", domain.NewModelConfigError("primary and fallback models must be configured")
	}

	reply, err := m.primary.Complete(ctx, prompt)
	if err == nil {
		return reply, nil
	}

	log.Warn("Primary model failed",
		zap.String("model", m.primary.Name()),
		zap.Error(err))

	if !isRetryable(err) {
		return "", domain.NewProviderError("Model "+m.primary.Name()+" failed", err)
	}

	log.Info("Switching to fallback model", zap.String("model", m.fallback.Name()))

	reply, fallbackErr := m.fallback.Complete(ctx, prompt)
	if fallbackErr != nil {
		log.Error("Fallback model also failed",
			zap.String("model", m.fallback.Name()),
			zap.Error(fallbackErr))
		return "", domain.NewAllProvidersFailedError(fallbackErr)
	}
	return reply, nil
}

// isRetryable reports whether the error looks like a rate-limit or quota
// rejection, the only failure modes worth a fallback attempt.
func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota")
}
