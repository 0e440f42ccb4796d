package settings

import "testing"

func TestParseDefaultsOnEmpty(t *testing.T) {
	s := Parse(nil)
	if !s.ReopenWindows || s.RelaunchSettleMS != 750 || s.WindowWaitMS != 500 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestParseIgnoresNoise(t *testing.T) {
	body := []byte("# comment\n\nnot a pair\nUNKNOWN_KEY=1\nREOPEN_WINDOWS=0\n")
	s := Parse(body)
	if s.ReopenWindows {
		t.Fatalf("REOPEN_WINDOWS=0 not honored")
	}
	if s.RelaunchSettleMS != 750 {
		t.Fatalf("noise changed an unrelated value: %+v", s)
	}
}

func TestParseClampsDelays(t *testing.T) {
	s := Parse([]byte("RELAUNCH_SETTLE_MS=999999\nWINDOW_WAIT_MS=-5\n"))
	if s.RelaunchSettleMS != 10000 {
		t.Fatalf("settle not clamped: %d", s.RelaunchSettleMS)
	}
	if s.WindowWaitMS != 0 {
		t.Fatalf("negative wait not clamped: %d", s.WindowWaitMS)
	}
}

func TestParseBadNumberKeepsDefault(t *testing.T) {
	s := Parse([]byte("WINDOW_WAIT_MS=soon\n"))
	if s.WindowWaitMS != 500 {
		t.Fatalf("malformed number should keep the default, got %d", s.WindowWaitMS)
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	want := Settings{ReopenWindows: false, RelaunchSettleMS: 1200, WindowWaitMS: 250}
	got := Parse(Render(want))
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestParseKeysAreCaseInsensitive(t *testing.T) {
	s := Parse([]byte("reopen_windows = 0\n"))
	if s.ReopenWindows {
		t.Fatalf("lowercase key not recognized")
	}
}
