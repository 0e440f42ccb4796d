//go:build windows

// Package toggle runs the single straight-line sequence behind both the
// run-once command and the tray activation: snapshot the session, flip the
// registry byte, restart Explorer, put the session back.
package toggle

import (
	"time"

	"taskbartoggle/internal/session"
	"taskbartoggle/internal/shellproc"
	"taskbartoggle/internal/taskbar"
)

// Delays are the fixed pauses between lifecycle steps. There is no signal
// for "Explorer has finished initializing", so these stay duration-based.
type Delays struct {
	CloseGrace     time.Duration
	RelaunchSettle time.Duration
	WindowWait     time.Duration
	FocusSettle    time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		CloseGrace:     150 * time.Millisecond,
		RelaunchSettle: 750 * time.Millisecond,
		WindowWait:     500 * time.Millisecond,
		FocusSettle:    500 * time.Millisecond,
	}
}

type Options struct {
	// ReopenWindows controls session capture/restore. Disabled, the
	// sequence still toggles and restarts but leaves folder windows to
	// their fate.
	ReopenWindows bool
	Delays        Delays
	// AfterRestart runs once the shell has been relaunched, before the
	// settle delay. The tray uses it to arm its re-registration watchdog.
	AfterRestart func()
}

// Run executes one full toggle. Only the registry step can fail the
// operation; everything after the restart is best-effort and degrades
// silently. The sequence is not cancellable once started.
func Run(opts Options) (taskbar.Mode, error) {
	drv := session.WindowsDriver{}

	// The snapshot must be complete before Explorer dies; none of it can
	// be recovered afterwards.
	var st session.State
	if opts.ReopenWindows {
		st = session.Capture(drv)
	} else {
		st.Foreground = session.CaptureForeground(drv)
	}

	mode, err := taskbar.ToggleMode()
	if err != nil {
		return 0, err
	}

	shellproc.CloseFolderWindows(opts.Delays.CloseGrace)
	_ = shellproc.Terminate()
	_ = shellproc.Relaunch()
	if opts.AfterRestart != nil {
		opts.AfterRestart()
	}
	time.Sleep(opts.Delays.RelaunchSettle)

	if opts.ReopenWindows {
		session.RestoreWindows(drv, session.Waiter{
			Timeout:  opts.Delays.WindowWait,
			Interval: 100 * time.Millisecond,
		}, st)
	}
	time.Sleep(opts.Delays.FocusSettle)
	session.RestoreForeground(drv, st.Foreground)
	return mode, nil
}
