package cli

import (
	"fmt"
	"io"
	"strings"

	"notoday/internal/assets"
	"notoday/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		filePath := flags.String("file", "", "Path to a questions.json file")
		configPath := flags.String("config", "", "Path to config file (default: search for .notoday/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		questions, err := validateQuestions(strings.TrimSpace(*filePath), *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Questions OK (%d)\n", len(questions))
		return ExitOK
	}
}

func validateQuestions(filePath, configPath string) ([]question.Question, error) {
	if filePath != "" {
		return question.LoadFile(filePath)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	provider, err := assets.Resolve(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	return question.Load(provider, cfg.QuestionsFile)
}
