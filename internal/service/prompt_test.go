package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuizPrompt(t *testing.T) {
	prompt := BuildQuizPrompt("Photosynthesis converts light into chemical energy.", 5, "hard")

	assert.True(t, strings.HasPrefix(prompt, "You are a quiz generator AI."))
	assert.Contains(t, prompt, "Generate 5 hard multiple choice questions")
	assert.Contains(t, prompt, "Photosynthesis converts light into chemical energy.")
	assert.Contains(t, prompt, "Format output as JSON array:")
	assert.False(t, strings.HasSuffix(prompt, "\n"))
}
