package taskbar

import (
	"bytes"
	"errors"
	"testing"
)

func sampleBlob(mode byte) []byte {
	blob := make([]byte, BlobLen)
	// Version header and position flags as seen on a real profile.
	copy(blob, []byte{0x30, 0x00, 0x00, 0x00, 0xFE, 0xFF, 0xFF, 0xFF})
	blob[modeOffset] = mode
	for i := modeOffset + 1; i < BlobLen; i++ {
		blob[i] = byte(i * 7)
	}
	return blob
}

func TestToggleBlobFlipsBothWays(t *testing.T) {
	blob := sampleBlob(byte(ModeAlwaysVisible))
	mode, err := ToggleBlob(blob)
	if err != nil {
		t.Fatalf("ToggleBlob error: %v", err)
	}
	if mode != ModeAutoHide || blob[modeOffset] != byte(ModeAutoHide) {
		t.Fatalf("expected auto-hide, got %v (byte 0x%02x)", mode, blob[modeOffset])
	}

	mode, err = ToggleBlob(blob)
	if err != nil {
		t.Fatalf("ToggleBlob error: %v", err)
	}
	if mode != ModeAlwaysVisible {
		t.Fatalf("expected always visible, got %v", mode)
	}
}

func TestToggleBlobPairPreservesEverything(t *testing.T) {
	original := sampleBlob(byte(ModeAutoHide))
	blob := append([]byte(nil), original...)
	if _, err := ToggleBlob(blob); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if _, err := ToggleBlob(blob); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !bytes.Equal(blob, original) {
		t.Fatalf("double toggle is not an identity:\n got %x\nwant %x", blob, original)
	}
}

func TestToggleBlobSingleTogglePreservesOtherBytes(t *testing.T) {
	original := sampleBlob(byte(ModeAlwaysVisible))
	blob := append([]byte(nil), original...)
	if _, err := ToggleBlob(blob); err != nil {
		t.Fatalf("ToggleBlob error: %v", err)
	}
	for i := range blob {
		if i == modeOffset {
			continue
		}
		if blob[i] != original[i] {
			t.Fatalf("byte %d changed: 0x%02x -> 0x%02x", i, original[i], blob[i])
		}
	}
}

func TestToggleBlobUnknownByteDefaultsToVisible(t *testing.T) {
	blob := sampleBlob(0x7A)
	mode, err := ToggleBlob(blob)
	if err != nil {
		t.Fatalf("ToggleBlob error: %v", err)
	}
	if mode != ModeAlwaysVisible {
		t.Fatalf("unknown byte should toggle to always visible, got %v", mode)
	}
}

func TestToggleBlobRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 8, BlobLen - 1, BlobLen + 1} {
		blob := make([]byte, n)
		for i := range blob {
			blob[i] = 0xAA
		}
		snapshot := append([]byte(nil), blob...)
		if _, err := ToggleBlob(blob); !errors.Is(err, ErrMalformedConfig) {
			t.Fatalf("len %d: expected ErrMalformedConfig, got %v", n, err)
		}
		if !bytes.Equal(blob, snapshot) {
			t.Fatalf("len %d: malformed blob was modified", n)
		}
	}
}

func TestParseMode(t *testing.T) {
	blob := sampleBlob(byte(ModeAutoHide))
	mode, err := ParseMode(blob)
	if err != nil {
		t.Fatalf("ParseMode error: %v", err)
	}
	if mode != ModeAutoHide {
		t.Fatalf("got %v want auto-hide", mode)
	}
	if _, err := ParseMode(blob[:10]); !errors.Is(err, ErrMalformedConfig) {
		t.Fatalf("expected ErrMalformedConfig, got %v", err)
	}
}

func TestModeString(t *testing.T) {
	if ModeAutoHide.String() != "auto-hide" {
		t.Fatalf("got %q", ModeAutoHide.String())
	}
	if got := Mode(0x55).String(); got != "unknown (0x55)" {
		t.Fatalf("got %q", got)
	}
}
