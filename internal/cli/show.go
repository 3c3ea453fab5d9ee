package cli

import (
	"context"
	"fmt"
	"io"

	"notoday/internal/observable"
)

// runShow builds the handler for the show command.
func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .notoday/config.yml)")
		date := flags.String("date", "", "Date label (default: today in date_format)")
		watch := flags.Bool("watch", false, "Print every change notification")
		verbose := flags.Bool("verbose", false, "Trace the load on stderr")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		vm, err := newSession(cfg, *date)
		if err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%v\n", err)
			return ExitError
		}
		defer vm.Close()

		disableColor := *noColor || cfg.UI.NoColor
		logVerbose(*verbose, stderr, disableColor, styleSession, "Session %s date=%s resource=%s", vm.SessionID(), vm.Date(), vm.Day().Resource())
		if *watch {
			vm.Subscribe(func(change observable.Change) {
				fmt.Fprintf(stdout, "changed %s: %s\n", change.Name, describeChange(change))
			})
		}
		if *verbose {
			vm.Subscribe(func(change observable.Change) {
				logVerbose(true, stderr, disableColor, styleChange, "%s -> %s", change.Name, describeChange(change))
			})
		}

		if err := vm.Load(context.Background()); err != nil {
			logVerbose(*verbose, stderr, disableColor, styleError, "load failed")
			fmt.Fprintf(stderr, "Load failed:\n%v\n", err)
			return ExitError
		}
		printDay(stdout, vm)
		return ExitOK
	}
}
