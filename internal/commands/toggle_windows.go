//go:build windows

package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"taskbartoggle/internal/settings"
	"taskbartoggle/internal/taskbar"
	"taskbartoggle/internal/toggle"
)

func runToggle(args []string) int {
	fs := flag.NewFlagSet("toggle", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	noReopen := fs.Bool("no-reopen", false, "do not reopen folder windows after the restart")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "usage: taskbartoggle toggle [--no-reopen] [--no-color] [--no-emoji]")
		return 2
	}
	theme := applyCommonFlags(common)

	opts := toggleOptions(settings.Load(), *noReopen)
	theme.Step("toggling taskbar auto-hide, Explorer will restart")
	mode, err := toggle.Run(opts)
	if err != nil {
		switch {
		case errors.Is(err, taskbar.ErrConfigUnavailable):
			theme.Warn("taskbar settings not found in the registry: %v", err)
		case errors.Is(err, taskbar.ErrMalformedConfig):
			theme.Warn("taskbar settings have an unexpected layout, nothing was written: %v", err)
		case errors.Is(err, taskbar.ErrWriteDenied):
			theme.Warn("could not write taskbar settings: %v", err)
		default:
			theme.Warn("toggle failed: %v", err)
		}
		return 1
	}
	theme.Okay("taskbar is now %s", mode)
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	theme := applyCommonFlags(common)
	theme.Okay("%staskbar is %s", theme.Emoji("\U0001F4CC"), taskbar.ReadMode())
	return 0
}

// toggleOptions merges file settings with the command-line switch; the
// flag can only turn reopening off, never back on.
func toggleOptions(s settings.Settings, noReopen bool) toggle.Options {
	d := toggle.DefaultDelays()
	d.RelaunchSettle = time.Duration(s.RelaunchSettleMS) * time.Millisecond
	d.WindowWait = time.Duration(s.WindowWaitMS) * time.Millisecond
	return toggle.Options{
		ReopenWindows: s.ReopenWindows && !noReopen,
		Delays:        d,
	}
}
