package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
	"quizforge/internal/validation"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService service.QuizService
	quota       service.GuestQuotaService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, quota service.GuestQuotaService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		quota:       quota,
		validator:   validator,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz from an uploaded document or raw text. Guests are limited to one quiz per day.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Quiz generation request"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	requesterID := middleware.UserIDFromContext(c)
	if requesterID == "" {
		if err := h.quota.Consume(c.Context(), c.IP()); err != nil {
			return err
		}
	}

	quiz, err := h.quizService.GenerateQuiz(c.Context(), &domain.QuizRequest{
		SourceKind:    domain.SourceKind(req.SourceType),
		SourceID:      req.SourceID,
		RawText:       req.RawText,
		QuestionCount: req.NumberOfQuestions,
		Difficulty:    req.Difficulty,
		RequesterID:   requesterID,
	})
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz generation request served",
		zap.String("quiz_id", quiz.ID),
		zap.String("source_type", req.SourceType))

	return c.JSON(dto.NewQuizResponse(quiz))
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns one of the caller's stored quizzes
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizService.GetQuiz(c.Context(), quizID, middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(quiz))
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Replaces the title and/or questions of a stored quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	quiz, err := h.quizService.UpdateQuiz(c.Context(), &domain.Quiz{
		ID:        quizID,
		Title:     req.Title,
		Questions: req.ToDomainQuestions(),
	}, middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(quiz))
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes one of the caller's stored quizzes
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	if err := h.quizService.DeleteQuiz(c.Context(), quizID, middleware.UserIDFromContext(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz deleted"})
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns all quizzes owned by the caller
// @Tags quizzes
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Security BearerAuth
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizService.ListQuizzes(c.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}

	resp := dto.QuizListResponse{Quizzes: make([]dto.QuizResponse, 0, len(quizzes))}
	for i := range quizzes {
		resp.Quizzes = append(resp.Quizzes, dto.NewQuizResponse(&quizzes[i]))
	}
	return c.JSON(resp)
}
