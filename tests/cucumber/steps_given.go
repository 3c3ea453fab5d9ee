package cucumber

import (
	"encoding/json"
	"fmt"
	"testing/fstest"

	"github.com/cucumber/godog"

	"notoday/internal/question"
	"notoday/internal/viewmodel"
)

func (s *featureState) aQuestionsResourceWith(count int) error {
	questions := make([]question.Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, question.Question{
			ID:     fmt.Sprintf("q%d", i+1),
			Prompt: fmt.Sprintf("Question %d?", i+1),
			Kind:   "craving",
		})
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	s.files[question.DefaultResource] = &fstest.MapFile{Data: data}
	return nil
}

func (s *featureState) aQuestionsResourceContaining(body *godog.DocString) error {
	s.files[question.DefaultResource] = &fstest.MapFile{Data: []byte(body.Content)}
	return nil
}

func (s *featureState) noQuestionsResource() error {
	delete(s.files, question.DefaultResource)
	return nil
}

func (s *featureState) aViewModelBase() error {
	s.base = viewmodel.NewBase()
	s.cancel = s.base.Subscribe(s.recorder.Record)
	return nil
}
