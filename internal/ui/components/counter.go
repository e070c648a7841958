package components

import (
	"math"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval paces counter animation at roughly display refresh rate.
const FrameInterval = 16 * time.Millisecond

// ValueAt is the counter value elapsed into an animation from -> to. It
// reaches exactly floor(to) once elapsed >= duration and never overshoots.
func ValueAt(from, to float64, elapsed, duration time.Duration) int {
	progress := 1.0
	if duration > 0 {
		progress = math.Min(float64(elapsed)/float64(duration), 1)
	}
	if progress < 0 {
		progress = 0
	}
	return int(math.Floor(progress*(to-from) + from))
}

// CounterFrameMsg advances the counter with the matching ID and sequence.
type CounterFrameMsg struct {
	ID  string
	Seq int
	At  time.Time
}

// Counter animates an integer display toward a target.
type Counter struct {
	ID       string
	Duration time.Duration

	from, to float64
	start    time.Time
	seq      int
	value    int
	running  bool
}

func NewCounter(id string, duration time.Duration) Counter {
	return Counter{ID: id, Duration: duration}
}

// Start restarts the animation at now; frames of earlier runs are ignored.
func (c *Counter) Start(from, to float64, now time.Time) tea.Cmd {
	c.seq++
	c.from, c.to = from, to
	c.start = now
	c.value = ValueAt(from, to, 0, c.Duration)
	c.running = true
	return c.frame()
}

func (c Counter) frame() tea.Cmd {
	id, seq := c.ID, c.seq
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return CounterFrameMsg{ID: id, Seq: seq, At: t}
	})
}

func (c Counter) Update(msg tea.Msg) (Counter, tea.Cmd) {
	frame, ok := msg.(CounterFrameMsg)
	if !ok || frame.ID != c.ID || frame.Seq != c.seq || !c.running {
		return c, nil
	}
	elapsed := frame.At.Sub(c.start)
	c.value = ValueAt(c.from, c.to, elapsed, c.Duration)
	if elapsed >= c.Duration {
		c.running = false
		return c, nil
	}
	return c, c.frame()
}

func (c Counter) Value() int { return c.value }

func (c Counter) Running() bool { return c.running }

func (c Counter) View() string { return strconv.Itoa(c.value) }
