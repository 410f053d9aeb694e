package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	TaskbarHeight = 1
	startLabel    = " ▶ START "
)

type TaskbarEntryData struct {
	Icon   string
	Title  string
	Active bool
}

type TaskbarData struct {
	Width      int
	StartOpen  bool
	Entries    []TaskbarEntryData
	Clock      string
	SoundOn    bool
	NowPlaying string
}

// Span is a half-open column range [X0, X1).
type Span struct {
	X0, X1 int
}

func (s Span) Contains(x int) bool { return x >= s.X0 && x < s.X1 }
func (s Span) Empty() bool         { return s.X1 <= s.X0 }

// TaskbarLayout returns the columns of the start button and of each
// entry. Entries that do not fit get an empty span.
func TaskbarLayout(t TaskbarData) (Span, []Span) {
	start := Span{X0: 0, X1: min(t.Width, ansi.StringWidth(startLabel))}
	limit := t.Width - ansi.StringWidth(taskbarTray(t))
	spans := make([]Span, len(t.Entries))
	x := start.X1 + 1
	for i, e := range t.Entries {
		w := ansi.StringWidth(entryLabel(e))
		if x+w > limit {
			spans[i] = Span{X0: x, X1: x}
			continue
		}
		spans[i] = Span{X0: x, X1: x + w}
		x += w + 1
	}
	return start, spans
}

func RenderTaskbar(t TaskbarData) string {
	if t.Width <= 0 {
		return ""
	}
	c := NewCanvas(t.Width, TaskbarHeight, func(int) string {
		return taskbarStyle.Render(strings.Repeat(" ", t.Width))
	})

	start, spans := TaskbarLayout(t)
	button := startButtonStyle
	if t.StartOpen {
		button = startPressedStyle
	}
	c.Draw(start.X0, 0, button.Render(startLabel))

	for i, e := range t.Entries {
		if spans[i].Empty() {
			continue
		}
		style := entryStyle
		if e.Active {
			style = entryActiveStyle
		}
		c.Draw(spans[i].X0, 0, style.Render(entryLabel(e)))
	}

	tray := taskbarTray(t)
	c.Draw(t.Width-ansi.StringWidth(tray), 0, taskbarStyle.Render(tray))
	return c.String()
}

func entryLabel(e TaskbarEntryData) string {
	title := ansi.Truncate(e.Title, 14, "…")
	if e.Icon == "" {
		return "[" + title + "]"
	}
	return "[" + e.Icon + " " + title + "]"
}

func taskbarTray(t TaskbarData) string {
	sound := "🔇"
	if t.SoundOn {
		sound = "🔊"
	}
	parts := []string{}
	if t.NowPlaying != "" {
		parts = append(parts, "♪ "+ansi.Truncate(t.NowPlaying, 18, "…"))
	}
	parts = append(parts, sound, t.Clock)
	return " " + strings.Join(parts, " ") + " "
}
