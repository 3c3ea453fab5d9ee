package cucumber

import (
	"context"
	"fmt"
)

func (s *featureState) theDayLoadsItsQuestions() error {
	_, s.loadErr = s.ensureDay().GetQuestions(context.Background())
	return nil
}

func (s *featureState) busyIsSetTo(value string) error {
	if s.base == nil {
		return fmt.Errorf("no view model base in this scenario")
	}
	s.base.SetBusy(value == "true")
	return nil
}
