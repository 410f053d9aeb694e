package session

import (
	"slices"

	"github.com/sandeepkv93/pixeldesk/internal/registry"
)

// Open brings id to the top of the stack, appending it if it was closed.
// The first open seeds the remembered position. Opening always closes the
// start menu.
func (s *State) Open(id registry.AppID) {
	if !s.openWindow(id) {
		return
	}
	s.emit(Change{Op: OpOpen, ID: id})
}

func (s *State) openWindow(id registry.AppID) bool {
	d, ok := s.reg.Lookup(id)
	if !ok {
		return false
	}
	s.startOpen = false
	s.raise(id)
	if _, seeded := s.positions[id]; !seeded {
		s.positions[id] = s.seedPosition(d)
	}
	return true
}

// Focus raises an already open window. Closed ids and the current top are
// left alone.
func (s *State) Focus(id registry.AppID) {
	if len(s.open) == 0 || s.open[len(s.open)-1] == id || !s.IsOpen(id) {
		return
	}
	s.raise(id)
	s.emit(Change{Op: OpFocus, ID: id})
}

// Close removes id from the stack. The remembered position survives so a
// later Open restores it. The icon selection is only cleared when the
// window's own close button did the closing.
func (s *State) Close(id registry.AppID, origin CloseOrigin) {
	i := slices.Index(s.open, id)
	if i < 0 {
		return
	}
	s.open = slices.Delete(s.open, i, i+1)
	delete(s.maximized, id)
	if origin == CloseFromWindow && s.selected == id {
		s.selected = ""
	}
	s.emit(Change{Op: OpClose, ID: id})
}

// Move stores the clamped drag-end position of an open window and raises it.
// Moving a maximized window restores it.
func (s *State) Move(id registry.AppID, to registry.Point) {
	if !s.IsOpen(id) {
		return
	}
	d, ok := s.reg.Lookup(id)
	if !ok {
		return
	}
	s.positions[id] = Clamp(to, d.Size, s.viewport, s.bounds.TaskbarMargin)
	delete(s.maximized, id)
	s.raise(id)
	s.emit(Change{Op: OpMove, ID: id})
}

// ToggleMaximize flips the maximized flag of an open window whose descriptor
// allows it, and raises the window.
func (s *State) ToggleMaximize(id registry.AppID) {
	if !s.IsOpen(id) {
		return
	}
	d, ok := s.reg.Lookup(id)
	if !ok || !d.Maximizable {
		return
	}
	if s.maximized[id] {
		delete(s.maximized, id)
	} else {
		s.maximized[id] = true
	}
	s.raise(id)
	s.emit(Change{Op: OpMaximize, ID: id})
}

func (s *State) SelectIcon(id registry.AppID) {
	if !s.reg.Has(id) {
		return
	}
	s.selected = id
	s.startOpen = false
	s.emit(Change{Op: OpSelect, ID: id})
}

// ClearSelection is the desktop background click: it drops the icon
// selection and closes the start menu.
func (s *State) ClearSelection() {
	if s.selected == "" && !s.startOpen {
		return
	}
	s.selected = ""
	s.startOpen = false
	s.emit(Change{Op: OpClearSelection})
}

func (s *State) ToggleStartMenu() {
	s.startOpen = !s.startOpen
	s.emit(Change{Op: OpStartMenu})
}

func (s *State) CloseStartMenu() {
	if !s.startOpen {
		return
	}
	s.startOpen = false
	s.emit(Change{Op: OpStartMenu})
}

// Resize records the new viewport. Stored positions are not rewritten; the
// window stack re-clamps them for display.
func (s *State) Resize(vp Viewport) {
	if vp == s.viewport {
		return
	}
	s.viewport = vp
	s.emit(Change{Op: OpResize})
}

func (s *State) seedPosition(d registry.Descriptor) registry.Point {
	vp := s.viewport
	if vp.Width > 0 && vp.Width < s.bounds.NarrowWidth {
		centered := registry.Point{
			X: (vp.Width - d.Size.W) / 2,
			Y: (vp.Height - s.bounds.TaskbarMargin - d.Size.H) / 2,
		}
		return Clamp(centered, d.Size, vp, s.bounds.TaskbarMargin)
	}
	return d.DefaultPosition
}
