package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })
	return sqlx.NewDb(mockDb, "sqlmock"), mock
}

func TestSQLXQuizRepository_CreateQuiz(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXQuizRepository(db)

	quiz := models.QuizFromDomain(&domain.Quiz{
		ID:    "01HQUIZ",
		Title: "Go Basics",
		Questions: []domain.QuizQuestion{
			{Question: "What does go vet do?", Options: []domain.QuizOption{
				{Label: "A", Text: "Static analysis", IsCorrect: true},
				{Label: "B", Text: "Formats code"},
			}},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})

	mock.ExpectExec("INSERT INTO quizzes").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateQuiz(context.Background(), quiz)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizRepository_GetQuizByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXQuizRepository(db)

	mock.ExpectPrepare("SELECT \\* FROM quizzes").
		ExpectQuery().
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	quiz, err := repo.GetQuizByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, quiz)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizRepository_GetQuizByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXQuizRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "owner_id", "questions", "created_at", "updated_at"}).
		AddRow("01HQUIZ", "Go Basics", "01HUSER",
			[]byte(`[{"question":"Q?","options":[{"label":"A","text":"yes","is_correct":true}]}]`),
			now, now)

	mock.ExpectPrepare("SELECT \\* FROM quizzes").
		ExpectQuery().
		WithArgs("01HQUIZ").
		WillReturnRows(rows)

	quiz, err := repo.GetQuizByID(context.Background(), "01HQUIZ")
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, "Go Basics", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Q?", quiz.Questions[0].Question)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizRepository_DeleteQuiz_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXQuizRepository(db)

	mock.ExpectExec("DELETE FROM quizzes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteQuiz(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizRepository_ListQuizzesByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXQuizRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "owner_id", "questions", "created_at", "updated_at"}).
		AddRow("01HQ1", "First", "01HUSER", []byte(`[]`), now, now).
		AddRow("01HQ2", "Second", "01HUSER", []byte(`[]`), now, now)

	mock.ExpectQuery("SELECT \\* FROM quizzes WHERE owner_id").
		WithArgs("01HUSER").
		WillReturnRows(rows)

	quizzes, err := repo.ListQuizzesByOwner(context.Background(), "01HUSER")
	require.NoError(t, err)
	assert.Len(t, quizzes, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
