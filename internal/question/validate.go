package question

import (
	"fmt"
	"strings"
)

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &MalformedDataError{Issues: collector.issues}
}

// Validate checks decoded questions against the schema rules that the
// decoder alone can not enforce: a non-empty prompt, unique ids and
// non-empty answer choices. Values are checked as-is and never rewritten.
func Validate(questions []Question) error {
	collector := &issueCollector{}
	seenIDs := map[string]int{}
	for i, question := range questions {
		validateQuestion(collector, fmt.Sprintf("questions[%d]", i), question, seenIDs, i)
	}
	return collector.result()
}

func validateQuestion(collector *issueCollector, prefix string, question Question, seenIDs map[string]int, index int) {
	if strings.TrimSpace(question.Prompt) == "" {
		collector.add(prefix+".question", "is required")
	}
	if id := strings.TrimSpace(question.ID); id != "" {
		if first, exists := seenIDs[id]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q (first used by questions[%d])", id, first))
		} else {
			seenIDs[id] = index
		}
	}
	for answerIndex, answer := range question.Answers {
		if strings.TrimSpace(answer) == "" {
			collector.add(fmt.Sprintf("%s.answers[%d]", prefix, answerIndex), "is required")
		}
	}
}
