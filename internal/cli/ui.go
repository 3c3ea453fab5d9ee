package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"notoday/internal/ui/live"
	"notoday/internal/viewmodel"
)

// startLive launches the live UI; tests replace it.
var startLive = func(stdout io.Writer, opts live.Options) liveUI {
	return live.Start(stdout, opts)
}

// liveUI is the part of live.Controller the ui command drives.
type liveUI interface {
	Bind(vm *viewmodel.DayViewModel)
	Wait() error
	Close()
	Dropped() int
}

// runUI builds the handler for the ui command.
func runUI(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .notoday/config.yml)")
		date := flags.String("date", "", "Date label (default: today in date_format)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui.mode)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		mode := strings.TrimSpace(*uiMode)
		if mode == "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		vm, err := newSession(cfg, *date)
		if err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%v\n", err)
			return ExitError
		}
		defer vm.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if !decision.useLive {
			if err := vm.Load(ctx); err != nil {
				fmt.Fprintf(stderr, "Load failed:\n%v\n", err)
				return ExitError
			}
			printDay(stdout, vm)
			return ExitOK
		}

		ui := startLive(stdout, live.Options{
			NoColor: *noColor || cfg.UI.NoColor,
			Reload:  func() { _ = vm.Load(ctx) },
		})
		ui.Bind(vm)
		go func() { _ = vm.Load(ctx) }()
		waitErr := ui.Wait()
		ui.Close()
		if dropped := ui.Dropped(); dropped > 0 {
			fmt.Fprintf(stderr, "Live UI dropped %d updates; press r to reload.\n", dropped)
		}
		if waitErr != nil {
			fmt.Fprintf(stderr, "UI failed: %v\n", waitErr)
			return ExitError
		}
		if err := vm.LastError(); err != nil {
			fmt.Fprintf(stderr, "Load failed:\n%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
