// Package session snapshots the open Explorer folder windows and the
// focused application before a shell restart, and puts as much of that
// state back as it can afterwards. Everything past the snapshot is
// best-effort: a window that cannot be refound is skipped, never an error.
package session

// Handle identifies a native window. It is only meaningful to the Driver
// that produced it.
type Handle uintptr

// ShowState is the portable subset of a window's show command.
type ShowState int

const (
	ShowNormal ShowState = iota
	ShowMinimized
	ShowMaximized
)

type Rect struct {
	Left, Top, Right, Bottom int
}

type Placement struct {
	Show ShowState
	Rect Rect
}

// FolderWindow is one open shell folder window at capture time. A window
// whose path could not be resolved is kept in the snapshot with an empty
// Path and is never reopened.
type FolderWindow struct {
	Handle       Handle
	Path         string
	Placement    Placement
	ZOrder       int
	Focused      bool
	FocusedChild Handle
}

// ForegroundApp describes whichever window held input focus at capture
// time. ExePath stays empty when the owning process cannot be opened.
type ForegroundApp struct {
	Handle    Handle
	PID       uint32
	ExePath   string
	Title     string
	Placement Placement
}

// State is the full snapshot taken before the shell restart. It lives in
// memory only: consumed once after the relaunch, then discarded.
type State struct {
	Windows    []FolderWindow
	Foreground ForegroundApp
}

// Driver is the narrow window-system surface capture and restore run
// against. The real implementation talks to Win32 and the shell automation
// objects; tests substitute a fake.
type Driver interface {
	// FolderWindows returns the open folder windows front-to-back in
	// current z-order, with paths resolved where the shell can account
	// for them.
	FolderWindows() []FolderWindow
	ForegroundWindow() Handle
	FocusedChild(parent Handle) (Handle, bool)
	WindowPID(h Handle) uint32
	WindowTitle(h Handle) string
	WindowPlacement(h Handle) (Placement, bool)
	ProcessImagePath(pid uint32) string
	IsWindow(h Handle) bool
	VisibleWindows() []Handle

	OpenFolder(path string) error
	FindFolderWindow(path string) (Handle, bool)
	ApplyPlacement(h Handle, p Placement)
	SetZOrder(h Handle, bottom bool)
	Focus(h Handle, show ShowState)
}

// Capture records every open folder window plus the foreground app. It must
// run to completion before the shell process dies; nothing here can be
// recovered afterwards.
func Capture(d Driver) State {
	st := State{Foreground: CaptureForeground(d)}
	st.Windows = d.FolderWindows()
	fg := st.Foreground.Handle
	for i := range st.Windows {
		w := &st.Windows[i]
		if w.Handle == fg {
			w.Focused = true
		} else if child, ok := d.FocusedChild(w.Handle); ok {
			w.FocusedChild = child
		}
	}
	return st
}

// CaptureForeground snapshots just the focused application, for runs where
// folder reopening is disabled.
func CaptureForeground(d Driver) ForegroundApp {
	fg := d.ForegroundWindow()
	if fg == 0 {
		return ForegroundApp{}
	}
	app := ForegroundApp{
		Handle: fg,
		PID:    d.WindowPID(fg),
		Title:  d.WindowTitle(fg),
	}
	if pl, ok := d.WindowPlacement(fg); ok {
		app.Placement = pl
	}
	if app.PID != 0 {
		app.ExePath = d.ProcessImagePath(app.PID)
	}
	return app
}

// RestoreWindows replays captured folder windows in reverse capture order,
// so the window that was frontmost is reopened last and ends up on top.
// Windows that never show up within the wait window are skipped; one
// missing window never aborts the rest of the batch.
func RestoreWindows(d Driver, w Waiter, st State) {
	for i := len(st.Windows) - 1; i >= 0; i-- {
		restoreWindow(d, w, st.Windows[i])
	}
}

func restoreWindow(d Driver, w Waiter, fw FolderWindow) {
	if fw.Path == "" {
		return
	}
	if err := d.OpenFolder(fw.Path); err != nil {
		return
	}
	h, ok := w.Await(func() (Handle, bool) {
		return d.FindFolderWindow(fw.Path)
	})
	if !ok {
		return
	}
	d.ApplyPlacement(h, fw.Placement)
	// Minimized windows go to the bottom of the stack so they do not
	// shuffle the visible ordering.
	d.SetZOrder(h, fw.Placement.Show == ShowMinimized)
}

// RestoreForeground hands focus back to the captured application. If the
// original handle is gone, the process's visible windows are searched by
// title instead.
func RestoreForeground(d Driver, app ForegroundApp) {
	if app.Handle == 0 {
		return
	}
	if d.IsWindow(app.Handle) {
		d.Focus(app.Handle, app.Placement.Show)
		return
	}
	if h, ok := PickForegroundCandidate(d, app); ok {
		d.Focus(h, app.Placement.Show)
	}
}
