package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"quizforge/internal/repository/models"
)

// QuizRepository defines the interface for quiz persistence.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *models.Quiz) error
	GetQuizByID(ctx context.Context, quizID string) (*models.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz *models.Quiz) error
	DeleteQuiz(ctx context.Context, quizID string) error
	ListQuizzesByOwner(ctx context.Context, ownerID string) ([]models.Quiz, error)
}

type sqlxQuizRepository struct {
	db *sqlx.DB
}

func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	query := `INSERT INTO quizzes (id, title, owner_id, questions, created_at, updated_at)
	          VALUES (:id, :title, :owner_id, :questions, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, quiz)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	var quiz models.Quiz
	query := `SELECT * FROM quizzes WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetQuizByID: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &quiz, map[string]interface{}{"id": quizID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return &quiz, nil
}

func (r *sqlxQuizRepository) UpdateQuiz(ctx context.Context, quiz *models.Quiz) error {
	query := `UPDATE quizzes SET title = :title, questions = :questions, updated_at = :updated_at
	          WHERE id = :id`

	quiz.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, quiz)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, quizID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, quizID)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxQuizRepository) ListQuizzesByOwner(ctx context.Context, ownerID string) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	query := `SELECT * FROM quizzes WHERE owner_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &quizzes, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes by owner: %w", err)
	}
	return quizzes, nil
}
