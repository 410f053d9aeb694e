// Package session owns the desktop session: which applications are open,
// their stacking order, where each window sits and which desktop icon is
// selected. All mutations go through the operations in this package and
// every one of them is total: unknown or closed ids are ignored.
package session

import (
	"slices"

	"github.com/sandeepkv93/pixeldesk/internal/registry"
)

type Viewport struct {
	Width  int
	Height int
}

// Bounds holds the layout constants the clamp and seed rules depend on.
type Bounds struct {
	TaskbarMargin int
	NarrowWidth   int
}

func DefaultBounds() Bounds {
	return Bounds{
		TaskbarMargin: 1,
		NarrowWidth:   80,
	}
}

type Config struct {
	Bounds      Bounds
	Viewport    Viewport
	InitialOpen []registry.AppID
}

type CloseOrigin int

const (
	// CloseFromWindow is a close triggered by the window's own close button.
	CloseFromWindow CloseOrigin = iota
	// CloseFromElsewhere covers taskbar, keyboard and programmatic closes.
	CloseFromElsewhere
)

type State struct {
	reg       *registry.Registry
	bounds    Bounds
	viewport  Viewport
	open      []registry.AppID
	positions map[registry.AppID]registry.Point
	maximized map[registry.AppID]bool
	selected  registry.AppID
	startOpen bool

	listeners    []listenerEntry
	nextListener int
}

func New(reg *registry.Registry, cfg Config) *State {
	if reg == nil {
		reg = registry.Default()
	}
	s := &State{
		reg:       reg,
		bounds:    cfg.Bounds,
		viewport:  cfg.Viewport,
		open:      make([]registry.AppID, 0, len(reg.IDs())),
		positions: make(map[registry.AppID]registry.Point),
		maximized: make(map[registry.AppID]bool),
	}
	for _, id := range cfg.InitialOpen {
		s.openWindow(id)
	}
	return s
}

func (s *State) Registry() *registry.Registry { return s.reg }
func (s *State) Bounds() Bounds               { return s.bounds }
func (s *State) Viewport() Viewport           { return s.viewport }
func (s *State) StartMenuOpen() bool          { return s.startOpen }

// OpenWindows returns the stacking order, bottommost first.
func (s *State) OpenWindows() []registry.AppID {
	return slices.Clone(s.open)
}

func (s *State) IsOpen(id registry.AppID) bool {
	return slices.Contains(s.open, id)
}

func (s *State) Focused() (registry.AppID, bool) {
	if len(s.open) == 0 {
		return "", false
	}
	return s.open[len(s.open)-1], true
}

func (s *State) Position(id registry.AppID) (registry.Point, bool) {
	p, ok := s.positions[id]
	return p, ok
}

func (s *State) Selected() (registry.AppID, bool) {
	return s.selected, s.selected != ""
}

func (s *State) IsMaximized(id registry.AppID) bool {
	return s.maximized[id]
}

// raise moves id to the top of the stack, appending it when absent.
func (s *State) raise(id registry.AppID) {
	if i := slices.Index(s.open, id); i >= 0 {
		s.open = slices.Delete(s.open, i, i+1)
	}
	s.open = append(s.open, id)
}
