package cucumber

import (
	"context"
	"testing/fstest"

	"github.com/cucumber/godog"

	"notoday/internal/day"
	"notoday/internal/testutil"
	"notoday/internal/viewmodel"
)

// featureState holds scenario state for the day features.
type featureState struct {
	files    fstest.MapFS
	day      *day.Day
	base     *viewmodel.Base
	recorder *testutil.ChangeRecorder
	cancel   func()
	loadErr  error
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a questions resource with (\d+) questions?$`, state.aQuestionsResourceWith)
	ctx.Step(`^a questions resource containing:$`, state.aQuestionsResourceContaining)
	ctx.Step(`^no questions resource$`, state.noQuestionsResource)
	ctx.Step(`^the questions resource is replaced with (\d+) questions?$`, state.aQuestionsResourceWith)
	ctx.Step(`^a view model base$`, state.aViewModelBase)
	ctx.Step(`^the day loads its questions$`, state.theDayLoadsItsQuestions)
	ctx.Step(`^busy is set to (true|false)$`, state.busyIsSetTo)
	ctx.Step(`^the day holds (\d+) questions?$`, state.theDayHolds)
	ctx.Step(`^the craving count is (\d+)$`, state.theCravingCountIs)
	ctx.Step(`^the load fails with a missing resource error$`, state.theLoadFailsWithMissingResource)
	ctx.Step(`^the load fails with a malformed data error$`, state.theLoadFailsWithMalformedData)
	ctx.Step(`^no notifications were recorded$`, state.noNotificationsWereRecorded)
	ctx.Step(`^the notifications were "([^"]*)"$`, state.theNotificationsWere)
	ctx.Step(`^the last craving notification carried (\d+)$`, state.theLastCravingNotificationCarried)
}

// reset clears state before each scenario.
func (s *featureState) reset() {
	s.files = fstest.MapFS{}
	s.day = nil
	s.base = nil
	s.recorder = &testutil.ChangeRecorder{}
	s.cancel = nil
	s.loadErr = nil
}

// cleanup detaches the recorder.
func (s *featureState) cleanup() {
	if s.cancel != nil {
		s.cancel()
	}
}

// ensureDay builds the day on first use so steps can run in any order.
func (s *featureState) ensureDay() *day.Day {
	if s.day == nil {
		s.day = day.New(s.files, day.Options{})
		s.cancel = s.day.Subscribe(s.recorder.Record)
	}
	return s.day
}
