package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"quizforge/internal/domain"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"
)

// TextExtractor pulls plain text out of a stored PDF file.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// QuizService generates quizzes from documents or raw text and manages the
// stored results.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.Quiz, error)
	GetQuiz(ctx context.Context, quizID, requesterID string) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz *domain.Quiz, requesterID string) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID, requesterID string) error
	ListQuizzes(ctx context.Context, ownerID string) ([]domain.Quiz, error)
}

type quizService struct {
	quizRepo  repository.QuizRepository
	docRepo   repository.DocumentRepository
	extractor TextExtractor
	invoker   *ModelInvoker
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	docRepo repository.DocumentRepository,
	extractor TextExtractor,
	invoker *ModelInvoker,
) QuizService {
	return &quizService{
		quizRepo:  quizRepo,
		docRepo:   docRepo,
		extractor: extractor,
		invoker:   invoker,
	}
}

// GenerateQuiz resolves the request's input text, prompts the model, parses
// the reply and persists the assembled quiz.
func (s *quizService) GenerateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.Quiz, error) {
	log := logger.Get()

	if req.QuestionCount <= 0 {
		req.QuestionCount = domain.DefaultQuestionCount
	}
	if req.Difficulty == "" {
		req.Difficulty = domain.DefaultDifficulty
	}

	inputText, doc, err := s.resolveInput(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt := BuildQuizPrompt(inputText, req.QuestionCount, req.Difficulty)

	reply, err := s.invoker.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuizReply(reply)
	if err != nil {
		log.Error("Failed to parse model reply",
			zap.String("raw_reply", reply), zap.Error(err))
		return nil, err
	}

	for i, q := range questions {
		if n := q.CorrectCount(); n != 1 {
			log.Warn("Question does not have exactly one correct option",
				zap.Int("question_index", i),
				zap.Int("correct_count", n))
		}
	}

	now := time.Now()
	quiz := &domain.Quiz{
		ID:        util.NewULID(),
		Title:     deriveTitle(req, doc),
		OwnerID:   req.RequesterID,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.quizRepo.CreateQuiz(ctx, models.QuizFromDomain(quiz)); err != nil {
		return nil, domain.NewInternalError("failed to save quiz", err)
	}

	log.Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.Int("questions", len(quiz.Questions)),
		zap.Bool("guest", quiz.OwnerID == ""))

	return quiz, nil
}

// resolveInput returns the text the prompt is built from, plus the source
// document when the request references one.
func (s *quizService) resolveInput(ctx context.Context, req *domain.QuizRequest) (string, *domain.Document, error) {
	switch req.SourceKind {
	case domain.SourceStoredDocument:
		if req.SourceID == "" {
			return "", nil, domain.NewInvalidInputError("source_id is required for pdf quizzes")
		}
		doc, err := s.getOwnedDocument(ctx, req.SourceID, req.RequesterID)
		if err != nil {
			return "", nil, err
		}
		text, err := s.resolveDocumentText(ctx, doc)
		if err != nil {
			return "", nil, err
		}
		return text, doc, nil

	case domain.SourceRawText:
		text := strings.TrimSpace(req.RawText)
		if text == "" {
			return "", nil, domain.NewInvalidInputError("raw_text is required for text quizzes")
		}
		if len(text) > domain.MaxRawTextLength {
			return "", nil, domain.NewInvalidInputError("raw_text exceeds the maximum length")
		}
		return text, nil, nil

	default:
		return "", nil, domain.NewInvalidInputError("invalid quiz input")
	}
}

// resolveDocumentText prefers text already stored on the document and falls
// back to extracting the PDF. Status updates after extraction are best
// effort; the generated quiz does not depend on them.
func (s *quizService) resolveDocumentText(ctx context.Context, doc *domain.Document) (string, error) {
	log := logger.Get()

	if doc.ContentText != "" {
		return doc.ContentText, nil
	}
	if doc.FilePath == "" {
		return "", domain.NewMissingContentError(doc.ID)
	}

	text, err := s.extractor.ExtractText(ctx, doc.FilePath)
	if err != nil {
		if updateErr := s.docRepo.UpdateDocumentStatus(ctx, doc.ID, string(domain.DocumentStatusFailed)); updateErr != nil {
			log.Warn("Failed to mark document as failed",
				zap.String("document_id", doc.ID), zap.Error(updateErr))
		}
		return "", domain.NewInternalError("failed to extract text from document", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.NewMissingContentError(doc.ID)
	}

	if err := s.docRepo.UpdateDocumentContent(ctx, doc.ID, text, string(domain.DocumentStatusCompleted)); err != nil {
		log.Warn("Failed to store extracted document text",
			zap.String("document_id", doc.ID), zap.Error(err))
	}
	return text, nil
}

func (s *quizService) getOwnedDocument(ctx context.Context, docID, requesterID string) (*domain.Document, error) {
	model, err := s.docRepo.GetDocumentByID(ctx, docID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load document", err)
	}
	if model == nil {
		return nil, domain.NewDocumentNotFoundError(docID)
	}
	doc := model.ToDomain()
	if doc.OwnerID != "" && doc.OwnerID != requesterID {
		return nil, domain.NewForbiddenError("Not authorized to access this document")
	}
	return doc, nil
}

// deriveTitle picks the quiz title: the source document's title, the first
// words of the raw text, or a generic fallback.
func deriveTitle(req *domain.QuizRequest, doc *domain.Document) string {
	if req.SourceKind == domain.SourceStoredDocument && doc != nil && doc.Title != "" {
		return doc.Title
	}
	if req.SourceKind == domain.SourceRawText {
		words := strings.Fields(req.RawText)
		if len(words) > 0 {
			title := strings.Join(words[:min(len(words), 8)], " ")
			if len(words) >= 8 {
				title += "..."
			}
			return title
		}
	}
	return "Untitled Quiz"
}

func (s *quizService) GetQuiz(ctx context.Context, quizID, requesterID string) (*domain.Quiz, error) {
	return s.getOwnedQuiz(ctx, quizID, requesterID)
}

// UpdateQuiz replaces the quiz's title and questions. Only the owner may
// update; guest quizzes cannot be edited.
func (s *quizService) UpdateQuiz(ctx context.Context, quiz *domain.Quiz, requesterID string) (*domain.Quiz, error) {
	existing, err := s.getOwnedQuiz(ctx, quiz.ID, requesterID)
	if err != nil {
		return nil, err
	}

	if quiz.Title != "" {
		existing.Title = quiz.Title
	}
	if quiz.Questions != nil {
		existing.Questions = quiz.Questions
	}
	existing.UpdatedAt = time.Now()

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.quizRepo.UpdateQuiz(ctx, models.QuizFromDomain(existing)); err != nil {
		return nil, domain.NewInternalError("failed to update quiz", err)
	}
	return existing, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID, requesterID string) error {
	if _, err := s.getOwnedQuiz(ctx, quizID, requesterID); err != nil {
		return err
	}
	if err := s.quizRepo.DeleteQuiz(ctx, quizID); err != nil {
		return domain.NewInternalError("failed to delete quiz", err)
	}
	return nil
}

func (s *quizService) ListQuizzes(ctx context.Context, ownerID string) ([]domain.Quiz, error) {
	modelsList, err := s.quizRepo.ListQuizzesByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}
	quizzes := make([]domain.Quiz, 0, len(modelsList))
	for i := range modelsList {
		quizzes = append(quizzes, *modelsList[i].ToDomain())
	}
	return quizzes, nil
}

// getOwnedQuiz loads a quiz and hides it from anyone but its owner. Quizzes
// without an owner were created by guests and stay readable only in the
// session that created them, so they always come back as not found here.
func (s *quizService) getOwnedQuiz(ctx context.Context, quizID, requesterID string) (*domain.Quiz, error) {
	model, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz", err)
	}
	if model == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	quiz := model.ToDomain()
	if quiz.OwnerID == "" || quiz.OwnerID != requesterID {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return quiz, nil
}
