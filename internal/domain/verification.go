package domain

import "time"

// VerificationType distinguishes the flow an emailed code belongs to.
type VerificationType string

const (
	VerificationTypeRegister VerificationType = "register"
	VerificationTypeReset    VerificationType = "reset"
)

const (
	// VerificationCodeTTL is how long an issued code stays valid.
	VerificationCodeTTL = 10 * time.Minute
	// VerificationCodeLength is the number of digits in a code.
	VerificationCodeLength = 6
)

func (t VerificationType) IsValid() bool {
	return t == VerificationTypeRegister || t == VerificationTypeReset
}

// Mailer delivers verification codes to users.
type Mailer interface {
	SendVerificationCode(to, code string, codeType VerificationType) error
}
