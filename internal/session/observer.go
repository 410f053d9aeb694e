package session

import (
	"slices"

	"github.com/sandeepkv93/pixeldesk/internal/registry"
)

type Op string

const (
	OpOpen           Op = "open"
	OpClose          Op = "close"
	OpFocus          Op = "focus"
	OpMove           Op = "move"
	OpMaximize       Op = "maximize"
	OpSelect         Op = "select"
	OpClearSelection Op = "clear_selection"
	OpStartMenu      Op = "start_menu"
	OpResize         Op = "resize"
)

// Change describes one applied operation. ID is empty for operations that
// are not about a single application.
type Change struct {
	Op Op
	ID registry.AppID
}

type Listener func(Change)

type listenerEntry struct {
	id int
	fn Listener
}

// Subscribe registers a listener called synchronously after every state
// change, in subscription order. The returned func removes it.
func (s *State) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *State) emit(c Change) {
	for _, l := range slices.Clone(s.listeners) {
		l.fn(c)
	}
}
