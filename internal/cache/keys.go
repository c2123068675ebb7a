package cache

import "fmt"

// VerificationCodeKey builds the Redis key that stores a pending email
// verification code. codeType distinguishes the flow the code belongs to
// (e.g. "registration", "password_reset").
func VerificationCodeKey(codeType, email string) string {
	return fmt.Sprintf("verification:%s:%s", codeType, email)
}

// GuestQuotaKey builds the Redis key that counts quiz generations by an
// unauthenticated client, keyed by IP.
func GuestQuotaKey(ip string) string {
	return fmt.Sprintf("guest_quota:%s", ip)
}
