package session

import (
	"testing"
	"time"
)

func TestAwaitFindsAfterRetries(t *testing.T) {
	var slept []time.Duration
	w := Waiter{
		Timeout:  time.Second,
		Interval: 250 * time.Millisecond,
		Sleep:    func(d time.Duration) { slept = append(slept, d) },
	}
	tries := 0
	h, ok := w.Await(func() (Handle, bool) {
		tries++
		if tries == 3 {
			return 0xAB, true
		}
		return 0, false
	})
	if !ok || h != 0xAB {
		t.Fatalf("got %#x ok=%v", h, ok)
	}
	if len(slept) != 2 {
		t.Fatalf("expected 2 sleeps before the hit, got %d", len(slept))
	}
}

func TestAwaitGivesUpAtTimeout(t *testing.T) {
	w := Waiter{
		Timeout:  300 * time.Millisecond,
		Interval: 100 * time.Millisecond,
		Sleep:    func(time.Duration) {},
	}
	tries := 0
	if _, ok := w.Await(func() (Handle, bool) { tries++; return 0, false }); ok {
		t.Fatalf("expected timeout")
	}
	// polls at 0, 100, 200 and 300ms of logical time, then stop
	if tries != 4 {
		t.Fatalf("expected 4 polls, got %d", tries)
	}
}

func TestAwaitDefaultsInterval(t *testing.T) {
	w := Waiter{Timeout: 50 * time.Millisecond, Sleep: func(time.Duration) {}}
	tries := 0
	if _, ok := w.Await(func() (Handle, bool) { tries++; return 0, false }); ok {
		t.Fatalf("expected timeout")
	}
	if tries != 1 {
		t.Fatalf("timeout shorter than the default interval should poll once, got %d", tries)
	}
}
