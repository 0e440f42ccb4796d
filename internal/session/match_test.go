package session

import "testing"

func TestPickForegroundCandidateExactBeatsSubstring(t *testing.T) {
	f := newFakeDriver()
	f.visible = []Handle{0x1, 0x2}
	f.pids[0x1] = 7
	f.pids[0x2] = 7
	f.titles[0x1] = "notes.txt - Editor (copy)"
	f.titles[0x2] = "notes.txt - Editor"

	h, ok := PickForegroundCandidate(f, ForegroundApp{PID: 7, Title: "notes.txt - Editor"})
	if !ok || h != 0x2 {
		t.Fatalf("exact title should win: got %#x ok=%v", h, ok)
	}
}

func TestPickForegroundCandidateNearestRectBreaksTies(t *testing.T) {
	f := newFakeDriver()
	f.visible = []Handle{0x1, 0x2}
	f.pids[0x1] = 7
	f.pids[0x2] = 7
	f.titles[0x1] = "Shell"
	f.titles[0x2] = "Shell"
	f.placements[0x1] = Placement{Rect: Rect{Left: 2000, Top: 0, Right: 2400, Bottom: 300}}
	f.placements[0x2] = Placement{Rect: Rect{Left: 110, Top: 90, Right: 510, Bottom: 390}}

	want := ForegroundApp{
		PID:       7,
		Title:     "Shell",
		Placement: Placement{Rect: Rect{Left: 100, Top: 100, Right: 500, Bottom: 400}},
	}
	h, ok := PickForegroundCandidate(f, want)
	if !ok || h != 0x2 {
		t.Fatalf("nearest rectangle should win the tie: got %#x ok=%v", h, ok)
	}
}

func TestPickForegroundCandidateIgnoresOtherProcesses(t *testing.T) {
	f := newFakeDriver()
	f.visible = []Handle{0x1}
	f.pids[0x1] = 8
	f.titles[0x1] = "Shell"
	if _, ok := PickForegroundCandidate(f, ForegroundApp{PID: 7, Title: "Shell"}); ok {
		t.Fatalf("window of a different process must not match")
	}
}

func TestPickForegroundCandidateEmptyTitleNeedsExactMatch(t *testing.T) {
	f := newFakeDriver()
	f.visible = []Handle{0x1, 0x2}
	f.pids[0x1] = 7
	f.pids[0x2] = 7
	f.titles[0x1] = "Something"
	f.titles[0x2] = ""
	h, ok := PickForegroundCandidate(f, ForegroundApp{PID: 7, Title: ""})
	if !ok || h != 0x2 {
		t.Fatalf("empty wanted title must only match an empty title, got %#x ok=%v", h, ok)
	}
}
