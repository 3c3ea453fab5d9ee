package cli

import (
	"fmt"
	"io"
	"strings"

	"notoday/internal/assets"
	"notoday/internal/day"
	"notoday/internal/observable"
	"notoday/internal/question"
	"notoday/internal/spec"
	"notoday/internal/viewmodel"
)

// newSession builds the view model for one day screen from the config.
func newSession(cfg spec.Config, date string) (*viewmodel.DayViewModel, error) {
	provider, err := assets.Resolve(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	d := day.New(provider, day.Options{
		ResourceName: cfg.QuestionsFile,
		Date:         strings.TrimSpace(date),
	})
	return viewmodel.NewDayViewModel(d, viewmodel.Options{DateFormat: cfg.DateFormat}), nil
}

// describeChange renders a notification value for plain output.
func describeChange(change observable.Change) string {
	switch value := change.Value.(type) {
	case []question.Question:
		return fmt.Sprintf("%d questions", len(value))
	case error:
		return value.Error()
	case nil:
		return "none"
	default:
		return fmt.Sprintf("%v", value)
	}
}

// printDay writes the loaded questions and the craving count.
func printDay(w io.Writer, vm *viewmodel.DayViewModel) {
	fmt.Fprintf(w, "Day %s\n", vm.Date())
	questions := vm.Questions()
	if len(questions) == 0 {
		fmt.Fprintln(w, "  (no questions)")
	}
	for i, q := range questions {
		line := fmt.Sprintf("  %2d. %s", i+1, strings.Join(strings.Fields(q.Prompt), " "))
		if q.Kind != "" {
			line = fmt.Sprintf("  %2d. [%s] %s", i+1, q.Kind, strings.Join(strings.Fields(q.Prompt), " "))
		}
		if len(q.Answers) > 0 {
			line += " (" + strings.Join(q.Answers, " / ") + ")"
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "Cravings: %d\n", vm.HowManyCravings())
}
