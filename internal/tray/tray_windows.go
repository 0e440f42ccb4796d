//go:build windows

// Package tray is the resident presence indicator: a notification-area icon
// whose tooltip and primary menu item name the action a click performs.
package tray

import (
	_ "embed"
	"sync"
	"time"

	"github.com/getlantern/systray"

	"taskbartoggle/internal/taskbar"
)

//go:embed tray.ico
var trayIcon []byte

// Restarting Explorer destroys and recreates the notification area. The
// systray layer re-adds the icon when it sees the taskbar-created
// broadcast; this watchdog is the redundant second trigger for the cases
// where that signal is missed.
const watchdogDelay = 2 * time.Second

// Indicator is the resident tray presence. One instance lives for the
// whole tray session.
type Indicator struct {
	mu            sync.Mutex
	watchdogArmed bool
	toggleItem    *systray.MenuItem
}

// Run blocks until the user quits. onToggle performs the full toggle
// sequence and reports the new mode; it receives the indicator so it can
// arm the watchdog after the shell restart.
func Run(onToggle func(*Indicator) (taskbar.Mode, error)) {
	ind := &Indicator{}
	systray.Run(func() { ind.onReady(onToggle) }, func() {})
}

func (ind *Indicator) onReady(onToggle func(*Indicator) (taskbar.Mode, error)) {
	if len(trayIcon) > 0 {
		systray.SetIcon(trayIcon)
	}
	mode := taskbar.ReadMode()
	ind.toggleItem = systray.AddMenuItem(actionLabel(mode), "Toggle taskbar auto-hide")
	systray.AddSeparator()
	quitItem := systray.AddMenuItem("Quit", "Exit without touching the taskbar")
	systray.SetTooltip(actionLabel(mode))

	go func() {
		for {
			select {
			case <-ind.toggleItem.ClickedCh:
				if mode, err := onToggle(ind); err == nil {
					ind.refresh(mode)
				}
			case <-quitItem.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

// refresh re-applies the tooltip and menu label for the given mode.
func (ind *Indicator) refresh(mode taskbar.Mode) {
	systray.SetTooltip(actionLabel(mode))
	if ind.toggleItem != nil {
		ind.toggleItem.SetTitle(actionLabel(mode))
	}
}

// ArmWatchdog schedules one icon refresh shortly after an Explorer
// relaunch. Only one watchdog may be pending at a time; a toggle fired
// while one is armed does not spawn a second.
func (ind *Indicator) ArmWatchdog() {
	ind.mu.Lock()
	if ind.watchdogArmed {
		ind.mu.Unlock()
		return
	}
	ind.watchdogArmed = true
	ind.mu.Unlock()

	go func() {
		time.Sleep(watchdogDelay)
		if len(trayIcon) > 0 {
			systray.SetIcon(trayIcon)
		}
		ind.refresh(taskbar.ReadMode())
		ind.mu.Lock()
		ind.watchdogArmed = false
		ind.mu.Unlock()
	}()
}

// actionLabel names the action a click performs, so the label flips the
// opposite way from the current state.
func actionLabel(mode taskbar.Mode) string {
	if mode == taskbar.ModeAutoHide {
		return "Show the taskbar automatically"
	}
	return "Hide the taskbar automatically"
}
