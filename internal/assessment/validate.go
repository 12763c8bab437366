package assessment

import (
	"fmt"
	"strings"
)

// ValidateAnswers checks answers against an ordered question set and returns
// field-level problems keyed by question id. A nil map means the answers are
// acceptable.
func ValidateAnswers(questions []Question, answers map[string]string) map[string]string {
	problems := map[string]string{}
	if len(answers) == 0 {
		problems["answers"] = "at least one answer is required"
	}

	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	for _, id := range RequiredQuestionIDs() {
		if strings.TrimSpace(answers[id]) == "" {
			problems[id] = "answer is required"
		}
	}

	for id, answer := range answers {
		q, ok := byID[id]
		if !ok {
			problems[id] = "unknown question for this category"
			continue
		}
		if q.Type == MultipleChoice && strings.TrimSpace(answer) != "" && !hasOption(q.Options, answer) {
			problems[id] = fmt.Sprintf("must be one of %s", strings.Join(q.Options, ", "))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

func hasOption(options []string, answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, o := range options {
		if strings.EqualFold(o, answer) {
			return true
		}
	}
	return false
}
