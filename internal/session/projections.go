package session

import (
	"github.com/sahilm/fuzzy"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
)

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type TaskbarEntry struct {
	ID     registry.AppID
	Title  string
	Icon   string
	Active bool
}

// WindowFrame is one open window ready to draw. Z equals the stacking index,
// so frames drawn in slice order honor focus without a separate counter.
type WindowFrame struct {
	ID          registry.AppID
	Title       string
	Icon        string
	Kind        registry.ContentKind
	Rect        Rect
	Z           int
	Focused     bool
	Maximized   bool
	Maximizable bool
}

type StartMenuEntry struct {
	ID             registry.AppID
	Label          string
	Icon           string
	Description    string
	MatchedIndexes []int
}

type DesktopIcon struct {
	ID       registry.AppID
	Label    string
	Icon     string
	Position registry.Point
	Selected bool
}

// DesktopArea is the part of the viewport above the taskbar.
func (s *State) DesktopArea() Rect {
	h := s.viewport.Height - s.bounds.TaskbarMargin
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: 0, W: s.viewport.Width, H: h}
}

func (s *State) TaskbarEntries() []TaskbarEntry {
	out := make([]TaskbarEntry, 0, len(s.open))
	for i, id := range s.open {
		d, _ := s.reg.Lookup(id)
		out = append(out, TaskbarEntry{
			ID:     id,
			Title:  d.Title,
			Icon:   d.Icon,
			Active: i == len(s.open)-1,
		})
	}
	return out
}

func (s *State) WindowStack() []WindowFrame {
	out := make([]WindowFrame, 0, len(s.open))
	for i, id := range s.open {
		d, _ := s.reg.Lookup(id)
		out = append(out, WindowFrame{
			ID:          id,
			Title:       d.Title,
			Icon:        d.Icon,
			Kind:        d.Kind,
			Rect:        s.frameRect(d),
			Z:           i,
			Focused:     i == len(s.open)-1,
			Maximized:   s.maximized[id],
			Maximizable: d.Maximizable,
		})
	}
	return out
}

// WindowAt returns the topmost frame covering the cell (x, y).
func (s *State) WindowAt(x, y int) (WindowFrame, bool) {
	stack := s.WindowStack()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Rect.Contains(x, y) {
			return stack[i], true
		}
	}
	return WindowFrame{}, false
}

// StartMenuEntries lists every registered application. A non-empty query
// fuzzy-filters the labels and orders them by match score.
func (s *State) StartMenuEntries(query string) []StartMenuEntry {
	descriptors := s.reg.Descriptors()
	if query == "" {
		out := make([]StartMenuEntry, 0, len(descriptors))
		for _, d := range descriptors {
			out = append(out, startMenuEntry(d, nil))
		}
		return out
	}
	labels := make([]string, len(descriptors))
	for i, d := range descriptors {
		labels[i] = d.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]StartMenuEntry, 0, len(matches))
	for _, m := range matches {
		out = append(out, startMenuEntry(descriptors[m.Index], m.MatchedIndexes))
	}
	return out
}

func (s *State) DesktopIcons() []DesktopIcon {
	descriptors := s.reg.Descriptors()
	out := make([]DesktopIcon, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, DesktopIcon{
			ID:       d.ID,
			Label:    d.Label,
			Icon:     d.Icon,
			Position: d.IconPosition,
			Selected: s.selected == d.ID,
		})
	}
	return out
}

func (s *State) frameRect(d registry.Descriptor) Rect {
	if s.maximized[d.ID] {
		return s.DesktopArea()
	}
	p, ok := s.positions[d.ID]
	if !ok {
		p = d.DefaultPosition
	}
	p = Clamp(p, d.Size, s.viewport, s.bounds.TaskbarMargin)
	return Rect{X: p.X, Y: p.Y, W: d.Size.W, H: d.Size.H}
}

func startMenuEntry(d registry.Descriptor, matched []int) StartMenuEntry {
	return StartMenuEntry{
		ID:             d.ID,
		Label:          d.Label,
		Icon:           d.Icon,
		Description:    d.Description,
		MatchedIndexes: matched,
	}
}
