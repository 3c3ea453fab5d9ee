package cucumber

import (
	"errors"
	"fmt"
	"strings"

	"notoday/internal/day"
	"notoday/internal/question"
)

func (s *featureState) theDayHolds(count int) error {
	got := len(s.ensureDay().Questions())
	if got != count {
		return fmt.Errorf("expected %d questions, got %d", count, got)
	}
	return nil
}

func (s *featureState) theCravingCountIs(count int) error {
	got := s.ensureDay().HowManyCravings()
	if got != count {
		return fmt.Errorf("expected craving count %d, got %d", count, got)
	}
	return nil
}

func (s *featureState) theLoadFailsWithMissingResource() error {
	var missing *question.ResourceMissingError
	if !errors.As(s.loadErr, &missing) {
		return fmt.Errorf("expected ResourceMissingError, got %v", s.loadErr)
	}
	return nil
}

func (s *featureState) theLoadFailsWithMalformedData() error {
	var malformed *question.MalformedDataError
	if !errors.As(s.loadErr, &malformed) {
		return fmt.Errorf("expected MalformedDataError, got %v", s.loadErr)
	}
	return nil
}

func (s *featureState) noNotificationsWereRecorded() error {
	if names := s.recorder.Names(); len(names) != 0 {
		return fmt.Errorf("expected no notifications, got %v", names)
	}
	return nil
}

func (s *featureState) theNotificationsWere(expected string) error {
	want := strings.Split(expected, ", ")
	got := s.recorder.Names()
	if strings.Join(got, ", ") != strings.Join(want, ", ") {
		return fmt.Errorf("expected notifications %v, got %v", want, got)
	}
	return nil
}

func (s *featureState) theLastCravingNotificationCarried(count int) error {
	change, ok := s.recorder.Last(day.PropertyHowManyCravings)
	if !ok {
		return fmt.Errorf("no %s notification recorded", day.PropertyHowManyCravings)
	}
	got, ok := change.Value.(int)
	if !ok || got != count {
		return fmt.Errorf("expected %s=%d, got %v", day.PropertyHowManyCravings, count, change.Value)
	}
	return nil
}
