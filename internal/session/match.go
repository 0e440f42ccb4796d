package session

import (
	"math"
	"strings"
)

// PickForegroundCandidate searches visible windows of the captured process
// for the best title match. An exact title match outranks a substring
// match, and ties break toward the window whose rectangle sits nearest the
// captured placement, so several same-titled windows of one process resolve
// to the original's spot instead of enumeration order.
func PickForegroundCandidate(d Driver, app ForegroundApp) (Handle, bool) {
	type candidate struct {
		h     Handle
		exact bool
		dist  int64
	}
	var best *candidate
	for _, h := range d.VisibleWindows() {
		if d.WindowPID(h) != app.PID {
			continue
		}
		title := d.WindowTitle(h)
		exact := title == app.Title
		if !exact && (app.Title == "" || !strings.Contains(title, app.Title)) {
			continue
		}
		c := candidate{h: h, exact: exact, dist: math.MaxInt64}
		if pl, ok := d.WindowPlacement(h); ok {
			c.dist = rectDistance(pl.Rect, app.Placement.Rect)
		}
		if best == nil || closerMatch(c.exact, c.dist, best.exact, best.dist) {
			best = &c
		}
	}
	if best == nil {
		return 0, false
	}
	return best.h, true
}

func closerMatch(aExact bool, aDist int64, bExact bool, bDist int64) bool {
	if aExact != bExact {
		return aExact
	}
	return aDist < bDist
}

// rectDistance is the squared distance between rectangle centers. Doubled
// center coordinates avoid a pointless halving; only the ordering matters.
func rectDistance(a, b Rect) int64 {
	ax := int64(a.Left + a.Right)
	ay := int64(a.Top + a.Bottom)
	bx := int64(b.Left + b.Right)
	by := int64(b.Top + b.Bottom)
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}
