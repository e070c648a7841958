package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"worksphere/internal/platform/notice"
	"worksphere/internal/ui/theme"
)

// NoticeHideMsg hides the notice shown under Seq, if it is still current.
type NoticeHideMsg struct{ Seq int }

// NoticeBar shows one transient message at a time.
type NoticeBar struct {
	current notice.Notice
	seq     int
	visible bool
}

// Show replaces the current message and schedules its hide tick.
func (b *NoticeBar) Show(n notice.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	b.seq++
	b.current = n
	b.visible = true
	if n.TTL <= 0 {
		return nil
	}
	seq := b.seq
	return tea.Tick(n.TTL, func(time.Time) tea.Msg { return NoticeHideMsg{Seq: seq} })
}

func (b NoticeBar) Update(msg tea.Msg) NoticeBar {
	if hide, ok := msg.(NoticeHideMsg); ok && hide.Seq == b.seq {
		b.visible = false
	}
	return b
}

func (b NoticeBar) Visible() bool { return b.visible }

func (b NoticeBar) Current() notice.Notice { return b.current }

func (b NoticeBar) View() string {
	if !b.visible {
		return ""
	}
	switch b.current.Kind {
	case notice.KindError:
		return theme.Danger.Render("✗ " + b.current.Text)
	case notice.KindSuccess:
		return theme.Success.Render("✓ " + b.current.Text)
	default:
		return theme.Info.Render("• " + b.current.Text)
	}
}
