package dto

import (
	"time"

	"quizforge/internal/domain"
)

// GenerateQuizRequest is the request body for generating a quiz
// @Description Request body for generating a quiz from a document or raw text
type GenerateQuizRequest struct {
	SourceType        string `json:"source_type"`
	SourceID          string `json:"source_id,omitempty"`
	RawText           string `json:"raw_text,omitempty"`
	NumberOfQuestions int    `json:"number_of_questions,omitempty"`
	Difficulty        string `json:"difficulty,omitempty"`
}

// UpdateQuizRequest is the request body for editing a stored quiz
type UpdateQuizRequest struct {
	Title     string              `json:"title,omitempty"`
	Questions []QuizQuestionInput `json:"questions,omitempty"`
}

// QuizQuestionInput is a question as submitted by a client on update
type QuizQuestionInput struct {
	Question    string            `json:"question"`
	Options     []QuizOptionInput `json:"options"`
	Explanation string            `json:"explanation,omitempty"`
}

// QuizOptionInput is an answer option as submitted by a client
type QuizOptionInput struct {
	Label     string `json:"label"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information with its questions
type QuizResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Questions []QuizQuestionResponse `json:"questions"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// QuizQuestionResponse represents one question of a quiz
type QuizQuestionResponse struct {
	Question    string               `json:"question"`
	Options     []QuizOptionResponse `json:"options"`
	Explanation string               `json:"explanation,omitempty"`
}

// QuizOptionResponse represents one answer option
type QuizOptionResponse struct {
	Label     string `json:"label"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizListResponse wraps a list of quizzes
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// NewQuizResponse maps a domain quiz to its API representation
func NewQuizResponse(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := make([]QuizOptionResponse, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, QuizOptionResponse{
				Label:     opt.Label,
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
			})
		}
		questions = append(questions, QuizQuestionResponse{
			Question:    q.Question,
			Options:     options,
			Explanation: q.Explanation,
		})
	}
	return QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: questions,
		CreatedAt: quiz.CreatedAt,
		UpdatedAt: quiz.UpdatedAt,
	}
}

// ToDomainQuestions maps submitted questions to domain questions
func (r *UpdateQuizRequest) ToDomainQuestions() []domain.QuizQuestion {
	if r.Questions == nil {
		return nil
	}
	questions := make([]domain.QuizQuestion, 0, len(r.Questions))
	for _, q := range r.Questions {
		options := make([]domain.QuizOption, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, domain.QuizOption{
				Label:     opt.Label,
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
			})
		}
		questions = append(questions, domain.QuizQuestion{
			Question:    q.Question,
			Options:     options,
			Explanation: q.Explanation,
		})
	}
	return questions
}
