package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationCodeKey(t *testing.T) {
	key := VerificationCodeKey("registration", "user@example.com")
	assert.Equal(t, "verification:registration:user@example.com", key)
}

func TestGuestQuotaKey(t *testing.T) {
	key := GuestQuotaKey("203.0.113.7")
	assert.Equal(t, "guest_quota:203.0.113.7", key)
}
