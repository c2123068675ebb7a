package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"

	"quizforge/internal/domain"
)

func TestModelInvoker_PrimarySucceeds(t *testing.T) {
	primary := new(MockTextGenerator)
	fallback := new(MockTextGenerator)
	primary.On("Complete", mock.Anything, "prompt").Return("reply", nil)

	invoker := NewModelInvoker(primary, fallback)
	reply, err := invoker.Invoke(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "reply", reply)
	fallback.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestModelInvoker_FallbackOnRateLimit(t *testing.T) {
	primary := new(MockTextGenerator)
	fallback := new(MockTextGenerator)
	primary.On("Name").Return("primary/model")
	fallback.On("Name").Return("fallback/model")
	primary.On("Complete", mock.Anything, "prompt").Return("", errors.New("Rate limit exceeded for free tier"))
	fallback.On("Complete", mock.Anything, "prompt").Return("fallback reply", nil)

	invoker := NewModelInvoker(primary, fallback)
	reply, err := invoker.Invoke(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "fallback reply", reply)
}

func TestModelInvoker_FallbackOnQuota(t *testing.T) {
	primary := new(MockTextGenerator)
	fallback := new(MockTextGenerator)
	primary.On("Name").Return("primary/model")
	fallback.On("Name").Return("fallback/model")
	primary.On("Complete", mock.Anything, "prompt").Return("", errors.New("monthly QUOTA exhausted"))
	fallback.On("Complete", mock.Anything, "prompt").Return("fallback reply", nil)

	invoker := NewModelInvoker(primary, fallback)
	reply, err := invoker.Invoke(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "fallback reply", reply)
}

func TestModelInvoker_NonRetryableError(t *testing.T) {
	primary := new(MockTextGenerator)
	fallback := new(MockTextGenerator)
	primary.On("Name").Return("primary/model")
	primary.On("Complete", mock.Anything, "prompt").Return("", errors.New("model not found"))

	invoker := NewModelInvoker(primary, fallback)
	_, err := invoker.Invoke(context.Background(), "prompt")

	require.Error(t, err)
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeProviderError, de.Code)
	fallback.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestModelInvoker_BothFail(t *testing.T) {
	primary := new(MockTextGenerator)
	fallback := new(MockTextGenerator)
	primary.On("Name").Return("primary/model")
	fallback.On("Name").Return("fallback/model")
	primary.On("Complete", mock.Anything, "prompt").Return("", errors.New("rate limit hit"))
	fallback.On("Complete", mock.Anything, "prompt").Return("", errors.New("rate limit hit again"))

	invoker := NewModelInvoker(primary, fallback)
	_, err := invoker.Invoke(context.Background(), "prompt")

	require.Error(t, err)
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeAllProvidersFailed, de.Code)
	assert.Equal(t, "Both primary and fallback models failed", de.Message)
}

func TestModelInvoker_Unconfigured(t *testing.T) {
	invoker := NewModelInvoker(nil, nil)
	_, err := invoker.Invoke(context.Background(), "prompt")

	require.Error(t, err)
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeModelConfig, de.Code)
}
