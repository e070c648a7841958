package components

import (
	"testing"
	"time"

	"worksphere/internal/platform/notice"
)

func TestValueAtNeverOvershoots(t *testing.T) {
	t.Parallel()
	const duration = time.Second
	prev := -1
	for elapsed := time.Duration(0); elapsed <= 2*duration; elapsed += 7 * time.Millisecond {
		v := ValueAt(0, 75, elapsed, duration)
		if v > 75 {
			t.Fatalf("overshoot at %s: %d", elapsed, v)
		}
		if v < prev {
			t.Fatalf("went backwards at %s: %d < %d", elapsed, v, prev)
		}
		prev = v
	}
	if got := ValueAt(0, 75, duration, duration); got != 75 {
		t.Fatalf("final = %d", got)
	}
	if got := ValueAt(0, 75, duration/2, duration); got != 37 {
		t.Fatalf("midpoint = %d", got)
	}
	if got := ValueAt(10, 20, 0, 0); got != 20 {
		t.Fatalf("zero duration = %d", got)
	}
}

func TestCounterIgnoresStaleFrames(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCounter("trust", time.Second)
	_ = c.Start(0, 75, start)
	stale := CounterFrameMsg{ID: "trust", Seq: 1}
	_ = c.Start(0, 90, start)

	stale.At = start.Add(2 * time.Second)
	c, cmd := c.Update(stale)
	if cmd != nil || c.Value() != 0 || !c.Running() {
		t.Fatalf("stale frame applied: value=%d running=%v", c.Value(), c.Running())
	}

	c, cmd = c.Update(CounterFrameMsg{ID: "trust", Seq: 2, At: start.Add(500 * time.Millisecond)})
	if cmd == nil || c.Value() != 45 {
		t.Fatalf("mid frame: value=%d cmd=%v", c.Value(), cmd != nil)
	}
	c, cmd = c.Update(CounterFrameMsg{ID: "trust", Seq: 2, At: start.Add(1200 * time.Millisecond)})
	if cmd != nil || c.Value() != 90 || c.Running() {
		t.Fatalf("final frame: value=%d running=%v", c.Value(), c.Running())
	}
	if c.View() != "90" {
		t.Fatalf("view = %q", c.View())
	}
}

func TestNoticeBarSequenceGuard(t *testing.T) {
	t.Parallel()
	var bar NoticeBar
	if cmd := bar.Show(notice.Error("first")); cmd == nil {
		t.Fatalf("expected hide tick")
	}
	_ = bar.Show(notice.Success("second"))

	bar = bar.Update(NoticeHideMsg{Seq: 1})
	if !bar.Visible() || bar.Current().Text != "second" {
		t.Fatalf("older timer hid the newer notice")
	}
	bar = bar.Update(NoticeHideMsg{Seq: 2})
	if bar.Visible() {
		t.Fatalf("current timer did not hide")
	}
	if bar.View() != "" {
		t.Fatalf("hidden bar rendered %q", bar.View())
	}
}

func TestNoticeBarIgnoresEmpty(t *testing.T) {
	t.Parallel()
	var bar NoticeBar
	if cmd := bar.Show(notice.Notice{}); cmd != nil || bar.Visible() {
		t.Fatalf("empty notice shown")
	}
}

func TestMatchingHints(t *testing.T) {
	t.Parallel()
	got := MatchingHints("theme", 5)
	if len(got) != 2 || got[0] != "theme:toggle" {
		t.Fatalf("hints = %v", got)
	}
	if len(MatchingHints("", 3)) != 3 {
		t.Fatalf("limit not applied")
	}
	if len(MatchingHints("zzz", 5)) != 0 {
		t.Fatalf("unexpected match")
	}
}
