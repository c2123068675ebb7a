package service

import (
	"fmt"
	"strings"
)

// BuildQuizPrompt renders the instruction prompt sent to the model. The
// wording pins the reply to a JSON array of question objects so the parser
// can rely on the shape.
func BuildQuizPrompt(inputText string, questionCount int, difficulty string) string {
	prompt := fmt.Sprintf(`
You are a quiz generator AI.

Based on the following text,
Generate %d %s multiple choice questions from the following text.

Text:
"""
%s
"""

Each question should include:
- question
- 4 options (A, B, C, D)
- correct answer (e.g., "A")
- explanation

Format output as JSON array:
[
  {
    "question": "...",
    "options": ["A", "B", "C", "D"],
    "answer": "A",
    "explanation": "..."
  }
]
`, questionCount, difficulty, inputText)

	return strings.TrimSpace(prompt)
}
