//go:build windows

package commands

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"taskbartoggle/internal/settings"
	"taskbartoggle/internal/taskbar"
	"taskbartoggle/internal/toggle"
	"taskbartoggle/internal/tray"
)

func runTray(args []string) int {
	fs := flag.NewFlagSet("tray", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	noReopen := fs.Bool("no-reopen", false, "do not reopen folder windows after restarts")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "usage: taskbartoggle tray [--no-reopen] [--no-color] [--no-emoji]")
		return 2
	}
	theme := applyCommonFlags(common)

	// Settings reload live so the next toggle picks up edits without a
	// tray restart.
	var current atomic.Pointer[settings.Settings]
	first := settings.Load()
	current.Store(&first)
	stop, err := settings.Watch(func(s settings.Settings) {
		current.Store(&s)
	})
	if err != nil {
		theme.Warn("settings watch unavailable: %v", err)
	} else {
		defer stop()
	}

	theme.Step("tray mode: taskbar is %s, click the icon to toggle", taskbar.ReadMode())
	tray.Run(func(ind *tray.Indicator) (taskbar.Mode, error) {
		opts := toggleOptions(*current.Load(), *noReopen)
		opts.AfterRestart = ind.ArmWatchdog
		mode, err := toggle.Run(opts)
		if err != nil {
			theme.Warn("toggle failed: %v", err)
			return 0, err
		}
		theme.Okay("taskbar is now %s", mode)
		return mode, nil
	})
	return 0
}
