//go:build windows

// Package shellproc owns the Explorer process lifecycle around a settings
// toggle: ask folder windows to close, kill the shell, start a fresh one.
package shellproc

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"taskbartoggle/internal/winapi"
)

const imageName = "explorer.exe"

// ExecutablePath returns the absolute path of the shell binary. Relaunch
// and folder opens never search PATH, so a same-named binary elsewhere
// cannot be picked up.
func ExecutablePath() string {
	dir, err := windows.GetWindowsDirectory()
	if err != nil {
		dir = `C:\Windows`
	}
	return filepath.Join(dir, imageName)
}

// CloseFolderWindows politely asks every visible folder window to close, so
// Explorer gets a chance to persist its per-window state before being
// killed, then waits out the grace period.
func CloseFolderWindows(grace time.Duration) {
	for _, h := range winapi.TopLevelWindows() {
		if winapi.IsWindowVisible(h) && winapi.ClassName(h) == winapi.FolderWindowClass {
			winapi.CloseWindow(h)
		}
	}
	if grace > 0 {
		time.Sleep(grace)
	}
}

// Terminate force-kills every Explorer process except our own. The tool can
// end up hosted inside a shell-named process in edge cases, so the current
// pid is always excluded.
func Terminate() error {
	self := windows.GetCurrentProcessId()
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err := windows.Process32First(snap, &entry); err == nil; err = windows.Process32Next(snap, &entry) {
		name := windows.UTF16ToString(entry.ExeFile[:])
		if !strings.EqualFold(name, imageName) || entry.ProcessID == self {
			continue
		}
		h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, entry.ProcessID)
		if err != nil {
			continue
		}
		_ = windows.TerminateProcess(h, 0)
		windows.CloseHandle(h)
	}
	return nil
}

// Relaunch starts a fresh shell. Success is not verified beyond the
// caller's settle delay; Explorer exposes no reliable ready signal.
func Relaunch() error {
	cmd := exec.Command(ExecutablePath())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", imageName, err)
	}
	return cmd.Process.Release()
}
