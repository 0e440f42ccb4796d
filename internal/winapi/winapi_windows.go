//go:build windows

// Package winapi wraps the handful of user32 entry points this tool needs
// that golang.org/x/sys/windows does not export.
package winapi

import (
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// HWND identifies a top-level window or child control.
type HWND uintptr

// FolderWindowClass is the window class Explorer uses for folder windows.
const FolderWindowClass = "CabinetWClass"

// ShowWindow commands.
const (
	SwHide          = 0
	SwNormal        = 1
	SwShowMinimized = 2
	SwShowMaximized = 3
	SwShow          = 5
	SwMinimize      = 6
	SwMinNoActive   = 7
	SwRestore       = 9
)

const (
	gwHwndNext = 2

	hwndTop       = 0
	hwndBottom    = 1
	hwndBroadcast = 0xFFFF

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010

	wmClose         = 0x0010
	wmSettingChange = 0x001A

	smtoAbortIfHung = 0x0002
)

type Point struct {
	X, Y int32
}

type Rect struct {
	Left, Top, Right, Bottom int32
}

type WindowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    Point
	MaxPosition    Point
	NormalPosition Rect
}

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procGetTopWindow             = user32.NewProc("GetTopWindow")
	procGetWindow                = user32.NewProc("GetWindow")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsChild                  = user32.NewProc("IsChild")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowPlacement       = user32.NewProc("GetWindowPlacement")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetFocus                 = user32.NewProc("GetFocus")
	procMoveWindow               = user32.NewProc("MoveWindow")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procSetActiveWindow          = user32.NewProc("SetActiveWindow")
	procSetFocus                 = user32.NewProc("SetFocus")
	procPostMessageW             = user32.NewProc("PostMessageW")
	procSendMessageTimeoutW      = user32.NewProc("SendMessageTimeoutW")
)

// TopLevelWindows walks the top-level window list front-to-back, so the
// slice index is the window's z-order at the time of the call.
func TopLevelWindows() []HWND {
	var out []HWND
	h, _, _ := procGetTopWindow.Call(0)
	for h != 0 {
		out = append(out, HWND(h))
		h, _, _ = procGetWindow.Call(h, gwHwndNext)
	}
	return out
}

func IsWindow(h HWND) bool {
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

func IsWindowVisible(h HWND) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(h))
	return r != 0
}

func IsChild(parent, child HWND) bool {
	r, _, _ := procIsChild.Call(uintptr(parent), uintptr(child))
	return r != 0
}

func ClassName(h HWND) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func WindowText(h HWND) string {
	var buf [1024]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func WindowPID(h HWND) uint32 {
	var pid uint32
	procGetWindowThreadProcessID.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	return pid
}

func Placement(h HWND) (WindowPlacement, bool) {
	var pl WindowPlacement
	pl.Length = uint32(unsafe.Sizeof(pl))
	r, _, _ := procGetWindowPlacement.Call(uintptr(h), uintptr(unsafe.Pointer(&pl)))
	return pl, r != 0
}

func ForegroundWindow() HWND {
	h, _, _ := procGetForegroundWindow.Call()
	return HWND(h)
}

// FocusedWindow reports keyboard focus for the calling thread's message
// queue; it returns 0 when focus sits in another thread.
func FocusedWindow() HWND {
	h, _, _ := procGetFocus.Call()
	return HWND(h)
}

func MoveWindow(h HWND, r Rect) {
	procMoveWindow.Call(
		uintptr(h),
		uintptr(r.Left),
		uintptr(r.Top),
		uintptr(r.Right-r.Left),
		uintptr(r.Bottom-r.Top),
		1,
	)
}

func ShowWindow(h HWND, cmd int) {
	procShowWindow.Call(uintptr(h), uintptr(cmd))
}

// SetZOrder re-stacks the window without moving, resizing or activating it.
func SetZOrder(h HWND, bottom bool) {
	insertAfter := uintptr(hwndTop)
	if bottom {
		insertAfter = hwndBottom
	}
	procSetWindowPos.Call(uintptr(h), insertAfter, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func FocusWindow(h HWND) {
	procSetForegroundWindow.Call(uintptr(h))
	procSetActiveWindow.Call(uintptr(h))
	procSetFocus.Call(uintptr(h))
}

// CloseWindow posts WM_CLOSE without waiting for the window to handle it.
func CloseWindow(h HWND) {
	procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
}

// BroadcastSettingChange notifies every top-level window that a tray
// setting changed. SMTO_ABORTIFHUNG plus the timeout keeps a hung listener
// from stalling the caller; the result is deliberately ignored.
func BroadcastSettingChange(area string, timeout time.Duration) {
	p, err := windows.UTF16PtrFromString(area)
	if err != nil {
		return
	}
	procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(p)),
		smtoAbortIfHung,
		uintptr(timeout/time.Millisecond),
		0,
	)
}
