package handler

import (
	"github.com/gofiber/fiber/v2"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/service"
	"quizforge/internal/validation"
)

// VerificationHandler handles email verification code requests
type VerificationHandler struct {
	verification service.VerificationService
	validator    *validation.Validator
}

// NewVerificationHandler creates a new VerificationHandler instance
func NewVerificationHandler(verification service.VerificationService, validator *validation.Validator) *VerificationHandler {
	return &VerificationHandler{verification: verification, validator: validator}
}

// SendCode godoc
// @Summary Send a verification code
// @Description Emails a 6-digit code valid for 10 minutes
// @Tags verification
// @Accept json
// @Produce json
// @Param request body dto.SendCodeRequest true "Recipient and code type"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Router /verification/send-code [post]
func (h *VerificationHandler) SendCode(c *fiber.Ctx) error {
	var req dto.SendCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSendCodeRequest(&req); len(errs) > 0 {
		return errs
	}

	if err := h.verification.SendCode(c.Context(), req.Email, domain.VerificationType(req.Type)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Verification code sent"})
}

// VerifyCode godoc
// @Summary Verify a code
// @Description Checks a submitted code; a successful match consumes it
// @Tags verification
// @Accept json
// @Produce json
// @Param request body dto.VerifyCodeRequest true "Submitted code"
// @Success 200 {object} dto.VerifyCodeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /verification/verify-code [post]
func (h *VerificationHandler) VerifyCode(c *fiber.Ctx) error {
	var req dto.VerifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateVerifyCodeRequest(&req); len(errs) > 0 {
		return errs
	}

	ok, err := h.verification.VerifyCode(c.Context(), req.Email, req.Code, domain.VerificationType(req.Type))
	if err != nil {
		return err
	}
	return c.JSON(dto.VerifyCodeResponse{Verified: ok})
}
