package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"quizforge/internal/domain"
)

// rawQuestion mirrors the JSON shape the prompt asks the model for.
type rawQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

var (
	fencedJSONRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

	// Leading option-letter prefixes the model tends to emit despite the
	// prompt, e.g. "A) Paris", "b. Lyon", "C: Nice", "D - Lille".
	optionPrefixRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^[A-D]\)\s*(.+)$`),
		regexp.MustCompile(`(?i)^[A-D]\.\s*(.+)$`),
		regexp.MustCompile(`(?i)^[A-D]:\s*(.+)$`),
		regexp.MustCompile(`(?i)^[A-D]\s*-\s*(.+)$`),
		regexp.MustCompile(`(?i)^[A-D]\s+(.+)$`),
	}

	optionLetterRe    = regexp.MustCompile(`(?i)^[A-D]`)
	optionSeparatorRe = regexp.MustCompile(`^[.)\s:-]+`)
)

// ParseQuizReply turns a raw model reply into normalized quiz questions.
// The reply may wrap the JSON array in a fenced code block; anything that
// does not decode into the expected array shape is a parse error.
func ParseQuizReply(reply string) ([]domain.QuizQuestion, error) {
	content := strings.TrimSpace(reply)
	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		content = m[1]
	}

	var raw []rawQuestion
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, domain.NewParseError(err)
	}
	if len(raw) == 0 {
		return nil, domain.NewParseError(nil)
	}

	questions := make([]domain.QuizQuestion, 0, len(raw))
	for _, rq := range raw {
		if rq.Question == "" || len(rq.Options) == 0 {
			return nil, domain.NewParseError(nil)
		}
		questions = append(questions, domain.QuizQuestion{
			Question:    rq.Question,
			Options:     normalizeOptions(rq.Options, rq.Answer),
			Explanation: rq.Explanation,
		})
	}
	return questions, nil
}

// normalizeOptions assigns each option its positional label (A, B, C, ...),
// strips any letter prefix the model repeated in the text, and flags the
// option whose positional label matches the declared answer.
func normalizeOptions(options []string, answer string) []domain.QuizOption {
	correctLabel := strings.ToUpper(strings.TrimSpace(answer))

	out := make([]domain.QuizOption, len(options))
	for i, opt := range options {
		label := string(rune('A' + i))
		text := strings.TrimSpace(opt)

		cleaned := text
		for _, re := range optionPrefixRes {
			if m := re.FindStringSubmatch(text); m != nil && m[1] != "" {
				cleaned = strings.TrimSpace(m[1])
				break
			}
		}
		if cleaned == text && optionLetterRe.MatchString(text) {
			remaining := optionSeparatorRe.ReplaceAllString(text[1:], "")
			if len(remaining) > 0 {
				cleaned = remaining
			}
		}

		out[i] = domain.QuizOption{
			Label:     label,
			Text:      cleaned,
			IsCorrect: label == correctLabel,
		}
	}
	return out
}
