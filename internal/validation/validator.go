package validation

import (
	"regexp"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

var (
	ulidRe  = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateGenerateQuizRequest validates a quiz generation request
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	switch domain.SourceKind(req.SourceType) {
	case domain.SourceStoredDocument:
		if strings.TrimSpace(req.SourceID) == "" {
			errors = append(errors, domain.NewMissingFieldError("source_id"))
		} else if !isValidULID(req.SourceID) {
			errors = append(errors, domain.NewInvalidFormatError("source_id", req.SourceID))
		}
	case domain.SourceRawText:
		if strings.TrimSpace(req.RawText) == "" {
			errors = append(errors, domain.NewMissingFieldError("raw_text"))
		} else if len(req.RawText) > domain.MaxRawTextLength {
			errors = append(errors, domain.NewOutOfRangeError("raw_text", len(req.RawText), 1, domain.MaxRawTextLength))
		}
	default:
		errors = append(errors, domain.NewInvalidFormatError("source_type", req.SourceType))
	}

	if req.NumberOfQuestions < 0 || req.NumberOfQuestions > 50 {
		errors = append(errors, domain.NewOutOfRangeError("number_of_questions", req.NumberOfQuestions, 0, 50))
	}

	if req.Difficulty != "" && !domain.IsValidDifficulty(req.Difficulty) {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}

	return errors
}

// ValidateRegisterRequest validates a registration request
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	} else if len(req.Username) < 3 || len(req.Username) > 30 {
		errors = append(errors, domain.NewOutOfRangeError("username", len(req.Username), 3, 30))
	}

	errors = append(errors, v.validateEmail(req.Email)...)

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < 8 || len(req.Password) > 72 {
		errors = append(errors, domain.NewOutOfRangeError("password", len(req.Password), 8, 72))
	}

	return errors
}

// ValidateLoginRequest validates a login request
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateEmail(req.Email)...)

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateSendCodeRequest validates a verification code request
func (v *Validator) ValidateSendCodeRequest(req *dto.SendCodeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateEmail(req.Email)...)

	if !domain.VerificationType(req.Type).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}

	return errors
}

// ValidateVerifyCodeRequest validates a code verification request
func (v *Validator) ValidateVerifyCodeRequest(req *dto.VerifyCodeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateEmail(req.Email)...)

	if strings.TrimSpace(req.Code) == "" {
		errors = append(errors, domain.NewMissingFieldError("code"))
	} else if len(req.Code) != domain.VerificationCodeLength {
		errors = append(errors, domain.NewInvalidFormatError("code", req.Code))
	}

	if !domain.VerificationType(req.Type).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}

	return errors
}

// ValidateCreateTextDocumentRequest validates a pasted text document request
func (v *Validator) ValidateCreateTextDocumentRequest(req *dto.CreateTextDocumentRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if len(req.Text) > domain.MaxRawTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(req.Text), 1, domain.MaxRawTextLength))
	}

	return errors
}

// ValidateQuizID validates a quiz identifier path parameter
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("id", quizID))
	}

	return errors
}

func (v *Validator) validateEmail(email string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !emailRe.MatchString(email) {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}

	return errors
}

func isValidULID(s string) bool {
	return ulidRe.MatchString(s)
}
