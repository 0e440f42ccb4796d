// Package taskbar reads and flips the Explorer taskbar visibility mode
// stored in the StuckRects binary settings value.
package taskbar

import (
	"errors"
	"fmt"
)

// Mode is the taskbar visibility byte at offset 0x08 of the settings blob.
type Mode byte

const (
	ModeAlwaysVisible Mode = 0x02
	ModeAutoHide      Mode = 0x03
)

// BlobLen is the fixed size of the StuckRects "Settings" value. The first
// four bytes are a version header, the next four position bitflags; only
// the visibility byte is ever modified here.
const (
	BlobLen    = 64
	modeOffset = 0x08
)

var (
	ErrConfigUnavailable = errors.New("taskbar settings unavailable")
	ErrMalformedConfig   = errors.New("taskbar settings blob malformed")
	ErrWriteDenied       = errors.New("taskbar settings write denied")
)

func (m Mode) String() string {
	switch m {
	case ModeAlwaysVisible:
		return "always visible"
	case ModeAutoHide:
		return "auto-hide"
	default:
		return fmt.Sprintf("unknown (0x%02x)", byte(m))
	}
}

// ParseMode extracts the visibility mode from a settings blob.
func ParseMode(blob []byte) (Mode, error) {
	if len(blob) != BlobLen {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedConfig, len(blob), BlobLen)
	}
	return Mode(blob[modeOffset]), nil
}

// ToggleBlob flips the visibility byte in place and returns the new mode.
// Every other byte is left untouched. An unrecognized byte value toggles to
// always-visible; the two documented values are the only ones seen in the
// wild, so anything else falls back to the safe state.
func ToggleBlob(blob []byte) (Mode, error) {
	cur, err := ParseMode(blob)
	if err != nil {
		return 0, err
	}
	next := ModeAlwaysVisible
	if cur == ModeAlwaysVisible {
		next = ModeAutoHide
	}
	blob[modeOffset] = byte(next)
	return next, nil
}
