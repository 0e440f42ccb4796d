//go:build windows

package taskbar

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows/registry"

	"taskbartoggle/internal/winapi"
)

// The StuckRects3 key holds the blob on current Windows builds; older
// profiles still carry StuckRects2.
const (
	primaryKeyPath = `Software\Microsoft\Windows\CurrentVersion\Explorer\StuckRects3`
	legacyKeyPath  = `Software\Microsoft\Windows\CurrentVersion\Explorer\StuckRects2`
	settingsValue  = "Settings"

	broadcastArea    = "TraySettings"
	broadcastTimeout = time.Second
)

func openSettingsKey(access uint32) (registry.Key, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, primaryKeyPath, access)
	if err == nil {
		return k, nil
	}
	k, err = registry.OpenKey(registry.CURRENT_USER, legacyKeyPath, access)
	if err != nil {
		return 0, fmt.Errorf("%w: open key: %v", ErrConfigUnavailable, err)
	}
	return k, nil
}

// ReadMode reports the current visibility mode without modifying anything.
// Missing or unreadable settings report as always-visible, which is what a
// fresh profile gets.
func ReadMode() Mode {
	k, err := openSettingsKey(registry.QUERY_VALUE)
	if err != nil {
		return ModeAlwaysVisible
	}
	defer k.Close()
	blob, _, err := k.GetBinaryValue(settingsValue)
	if err != nil {
		return ModeAlwaysVisible
	}
	mode, err := ParseMode(blob)
	if err != nil {
		return ModeAlwaysVisible
	}
	return mode
}

// ToggleMode flips the visibility byte with a read-modify-write of the
// existing blob and broadcasts the change. The blob is never synthesized
// from scratch; a malformed read aborts before anything is written.
func ToggleMode() (Mode, error) {
	k, err := openSettingsKey(registry.QUERY_VALUE | registry.SET_VALUE)
	if err != nil {
		return 0, err
	}
	defer k.Close()

	blob, _, err := k.GetBinaryValue(settingsValue)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %v", ErrConfigUnavailable, settingsValue, err)
	}
	next, err := ToggleBlob(blob)
	if err != nil {
		return 0, err
	}
	if err := k.SetBinaryValue(settingsValue, blob); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteDenied, err)
	}

	// Fire-and-forget; a hung listener must not stall the toggle.
	winapi.BroadcastSettingChange(broadcastArea, broadcastTimeout)
	return next, nil
}
