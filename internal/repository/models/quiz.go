package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/util"
)

// QuizQuestions stores the question list as a JSONB column.
type QuizQuestions []domain.QuizQuestion

func (q QuizQuestions) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuizQuestions) Scan(src interface{}) error {
	if src == nil {
		*q = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for quiz questions", src)
	}
	return json.Unmarshal(data, q)
}

type Quiz struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	OwnerID   sql.NullString `db:"owner_id"`
	Questions QuizQuestions  `db:"questions"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (q *Quiz) ToDomain() *domain.Quiz {
	return &domain.Quiz{
		ID:        q.ID,
		Title:     q.Title,
		OwnerID:   util.NullStringToString(q.OwnerID),
		Questions: []domain.QuizQuestion(q.Questions),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func QuizFromDomain(q *domain.Quiz) *Quiz {
	return &Quiz{
		ID:        q.ID,
		Title:     q.Title,
		OwnerID:   util.StringToNullString(q.OwnerID),
		Questions: QuizQuestions(q.Questions),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
