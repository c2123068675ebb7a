package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizforge/internal/domain"
)

func TestQuizQuestions_ValueScan(t *testing.T) {
	questions := QuizQuestions{
		{
			Question: "What is the capital of France?",
			Options: []domain.QuizOption{
				{Label: "A", Text: "Paris", IsCorrect: true},
				{Label: "B", Text: "Lyon"},
			},
			Explanation: "Paris has been the capital since 987.",
		},
	}

	val, err := questions.Value()
	require.NoError(t, err)

	var got QuizQuestions
	require.NoError(t, got.Scan(val))
	assert.Equal(t, questions, got)
}

func TestQuizQuestions_ScanString(t *testing.T) {
	var got QuizQuestions
	require.NoError(t, got.Scan(`[{"question":"Q?","options":[{"label":"A","text":"yes","is_correct":true}]}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "Q?", got[0].Question)
	assert.True(t, got[0].Options[0].IsCorrect)
}

func TestQuizQuestions_ScanNil(t *testing.T) {
	got := QuizQuestions{{Question: "stale"}}
	require.NoError(t, got.Scan(nil))
	assert.Nil(t, []domain.QuizQuestion(got))
}

func TestQuizQuestions_ScanUnsupportedType(t *testing.T) {
	var got QuizQuestions
	assert.Error(t, got.Scan(42))
}

func TestQuizFromDomain_GuestOwner(t *testing.T) {
	m := QuizFromDomain(&domain.Quiz{ID: "01ABC", Title: "Untitled Quiz"})
	assert.False(t, m.OwnerID.Valid)
	assert.Equal(t, "", m.ToDomain().OwnerID)
}
