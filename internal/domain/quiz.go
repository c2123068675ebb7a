package domain

import (
	"strings"
	"time"
)

// SourceKind identifies where the input text of a quiz request comes from.
type SourceKind string

const (
	SourceStoredDocument SourceKind = "pdf"
	SourceRawText        SourceKind = "text"
)

const (
	DefaultQuestionCount = 10
	DefaultDifficulty    = "medium"

	// MaxRawTextLength caps directly supplied text.
	MaxRawTextLength = 100000
)

// QuizRequest describes a single quiz-generation call. Exactly one of
// SourceID/RawText is populated, consistent with SourceKind. An empty
// RequesterID denotes an anonymous (guest) requester.
type QuizRequest struct {
	SourceKind    SourceKind
	SourceID      string
	RawText       string
	QuestionCount int
	Difficulty    string
	RequesterID   string
}

// QuizOption is a single answer option with its canonical display label.
type QuizOption struct {
	Label     string `json:"label"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuizQuestion is one multiple-choice question of a quiz.
type QuizQuestion struct {
	Question    string       `json:"question"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation,omitempty"`
}

// CorrectCount returns how many options are flagged correct. A well-formed
// question has exactly one; the normalizer does not enforce it.
func (q QuizQuestion) CorrectCount() int {
	n := 0
	for _, opt := range q.Options {
		if opt.IsCorrect {
			n++
		}
	}
	return n
}

// Quiz is an assembled, persistable quiz. An empty OwnerID marks a
// guest-authored quiz.
type Quiz struct {
	ID        string
	Title     string
	OwnerID   string
	Questions []QuizQuestion
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewInvalidInputError("title is required")
	}
	if len(q.Questions) == 0 {
		return NewInvalidInputError("at least one question is required")
	}
	return nil
}

// IsValidDifficulty reports whether the difficulty value is one of the
// supported levels.
func IsValidDifficulty(diff string) bool {
	switch strings.ToLower(diff) {
	case "easy", "medium", "hard":
		return true
	default:
		return false
	}
}
