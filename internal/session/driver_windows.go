//go:build windows

package session

import (
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"golang.org/x/sys/windows"

	"taskbartoggle/internal/shellproc"
	"taskbartoggle/internal/winapi"
)

// WindowsDriver implements Driver against Win32 and the Shell.Application
// automation object.
type WindowsDriver struct{}

func (WindowsDriver) FolderWindows() []FolderWindow {
	paths := shellFolderPaths()
	var out []FolderWindow
	for z, h := range winapi.TopLevelWindows() {
		if !winapi.IsWindowVisible(h) || winapi.ClassName(h) != winapi.FolderWindowClass {
			continue
		}
		fw := FolderWindow{
			Handle: Handle(h),
			Path:   paths[h],
			ZOrder: z,
		}
		if pl, ok := winapi.Placement(h); ok {
			fw.Placement = placementFromNative(pl)
		}
		out = append(out, fw)
	}
	return out
}

func (WindowsDriver) ForegroundWindow() Handle {
	return Handle(winapi.ForegroundWindow())
}

func (WindowsDriver) FocusedChild(parent Handle) (Handle, bool) {
	child := winapi.FocusedWindow()
	if child != 0 && winapi.IsChild(winapi.HWND(parent), child) {
		return Handle(child), true
	}
	return 0, false
}

func (WindowsDriver) WindowPID(h Handle) uint32 {
	return winapi.WindowPID(winapi.HWND(h))
}

func (WindowsDriver) WindowTitle(h Handle) string {
	return winapi.WindowText(winapi.HWND(h))
}

func (WindowsDriver) WindowPlacement(h Handle) (Placement, bool) {
	pl, ok := winapi.Placement(winapi.HWND(h))
	if !ok {
		return Placement{}, false
	}
	return placementFromNative(pl), true
}

func (WindowsDriver) ProcessImagePath(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)
	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return windows.UTF16ToString(buf[:size])
}

func (WindowsDriver) IsWindow(h Handle) bool {
	return winapi.IsWindow(winapi.HWND(h))
}

func (WindowsDriver) VisibleWindows() []Handle {
	var out []Handle
	for _, h := range winapi.TopLevelWindows() {
		if winapi.IsWindowVisible(h) {
			out = append(out, Handle(h))
		}
	}
	return out
}

// OpenFolder asks Explorer to open a new window at path. The shell binary
// is addressed by absolute path, never via PATH.
func (WindowsDriver) OpenFolder(path string) error {
	return exec.Command(shellproc.ExecutablePath(), path).Start()
}

func (WindowsDriver) FindFolderWindow(path string) (Handle, bool) {
	for h, p := range shellFolderPaths() {
		if strings.EqualFold(p, path) && winapi.IsWindowVisible(h) {
			return Handle(h), true
		}
	}
	return 0, false
}

func (WindowsDriver) ApplyPlacement(h Handle, p Placement) {
	hw := winapi.HWND(h)
	winapi.ShowWindow(hw, winapi.SwNormal)
	winapi.MoveWindow(hw, winapi.Rect{
		Left:   int32(p.Rect.Left),
		Top:    int32(p.Rect.Top),
		Right:  int32(p.Rect.Right),
		Bottom: int32(p.Rect.Bottom),
	})
	switch p.Show {
	case ShowMaximized:
		winapi.ShowWindow(hw, winapi.SwShowMaximized)
	case ShowMinimized:
		winapi.ShowWindow(hw, winapi.SwMinimize)
	}
}

func (WindowsDriver) SetZOrder(h Handle, bottom bool) {
	winapi.SetZOrder(winapi.HWND(h), bottom)
}

func (WindowsDriver) Focus(h Handle, show ShowState) {
	hw := winapi.HWND(h)
	switch show {
	case ShowMaximized:
		winapi.ShowWindow(hw, winapi.SwShowMaximized)
	case ShowMinimized:
		// Bringing a minimized window forward means restoring it.
		winapi.ShowWindow(hw, winapi.SwRestore)
	default:
		winapi.ShowWindow(hw, winapi.SwNormal)
	}
	winapi.FocusWindow(hw)
}

func placementFromNative(pl winapi.WindowPlacement) Placement {
	show := ShowNormal
	switch pl.ShowCmd {
	case winapi.SwShowMinimized, winapi.SwMinimize, winapi.SwMinNoActive:
		show = ShowMinimized
	case winapi.SwShowMaximized:
		show = ShowMaximized
	}
	r := pl.NormalPosition
	return Placement{
		Show: show,
		Rect: Rect{Left: int(r.Left), Top: int(r.Top), Right: int(r.Right), Bottom: int(r.Bottom)},
	}
}

// shellFolderPaths asks the shell automation surface which filesystem
// folder each open shell window is showing. Windows the shell cannot
// account for (control panel views, This PC, anything non-filesystem) are
// absent from the map and end up recorded with an empty path.
func shellFolderPaths() map[winapi.HWND]string {
	out := map[winapi.HWND]string{}
	_ = ole.CoInitialize(0)
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return out
	}
	defer unknown.Release()
	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return out
	}
	defer shell.Release()

	windowsVar, err := oleutil.CallMethod(shell, "Windows")
	if err != nil {
		return out
	}
	coll := windowsVar.ToIDispatch()
	if coll == nil {
		return out
	}
	defer coll.Release()

	countVar, err := oleutil.GetProperty(coll, "Count")
	if err != nil {
		return out
	}
	count := int(countVar.Val)
	for i := 0; i < count; i++ {
		itemVar, err := oleutil.CallMethod(coll, "Item", i)
		if err != nil {
			continue
		}
		item := itemVar.ToIDispatch()
		if item == nil {
			continue
		}
		hwndVar, err := oleutil.GetProperty(item, "HWND")
		if err != nil {
			item.Release()
			continue
		}
		if locVar, err := oleutil.GetProperty(item, "LocationURL"); err == nil {
			if p := pathFromLocationURL(locVar.ToString()); p != "" {
				out[winapi.HWND(uintptr(hwndVar.Val))] = p
			}
		}
		item.Release()
	}
	return out
}

// pathFromLocationURL turns file:///C:/Users/demo into C:\Users\demo.
func pathFromLocationURL(loc string) string {
	const prefix = "file:///"
	if len(loc) < len(prefix) || !strings.EqualFold(loc[:len(prefix)], prefix) {
		return ""
	}
	p := loc[len(prefix):]
	if un, err := url.PathUnescape(p); err == nil {
		p = un
	}
	return filepath.FromSlash(p)
}
