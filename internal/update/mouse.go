package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"github.com/sandeepkv93/pixeldesk/internal/views"
)

func (m Model) handleBootMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.bootInput(true)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.Drag != nil {
			d := *m.Drag
			d.Preview = registry.Point{X: msg.X - d.OffsetX, Y: msg.Y - d.OffsetY}
			m.Drag = &d
		}
		return m, nil
	case tea.MouseActionRelease:
		if m.Drag != nil {
			m.Session.Move(m.Drag.ID, m.Drag.Preview)
			m.Drag = nil
		}
		return m, nil
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handleClick(msg.X, msg.Y)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			m.scrollTerminal(msg)
		}
	}
	return m, nil
}

func (m Model) handleClick(x, y int) (Model, tea.Cmd) {
	vp := m.Session.Viewport()
	if y >= vp.Height-views.TaskbarHeight {
		m.clickTaskbar(x)
		return m, nil
	}

	if m.Session.StartMenuOpen() {
		items := m.Session.StartMenuEntries(m.Menu.Query)
		mx, my := views.StartMenuOrigin(vp.Height, len(items))
		menu := session.Rect{X: mx, Y: my, W: views.StartMenuWidth, H: views.StartMenuHeight(len(items))}
		if menu.Contains(x, y) {
			if i, ok := views.StartMenuItemAt(len(items), y-my); ok {
				return m, m.launch(items[i].ID)
			}
			return m, nil
		}
		m.Menu = StartMenuState{}
		m.Session.CloseStartMenu()
	}

	if frame, ok := m.Session.WindowAt(x, y); ok {
		return m.clickWindow(frame, x, y)
	}

	if id, ok := m.iconAt(x, y); ok {
		now := m.clock()
		if m.lastClick.ID == id && now.Sub(m.lastClick.At) <= doubleClickGap {
			m.lastClick = clickRecord{}
			return m, m.launch(id)
		}
		m.lastClick = clickRecord{ID: id, At: now}
		m.Session.SelectIcon(id)
		return m, nil
	}

	m.lastClick = clickRecord{}
	m.Session.ClearSelection()
	return m, nil
}

func (m Model) clickWindow(frame session.WindowFrame, x, y int) (Model, tea.Cmd) {
	dx, dy := x-frame.Rect.X, y-frame.Rect.Y
	switch views.HitWindow(frame.Rect.W, frame.Rect.H, frame.Maximizable, dx, dy) {
	case views.PartClose:
		m.Session.Close(frame.ID, session.CloseFromWindow)
		return m, nil
	case views.PartMaximize:
		m.Session.ToggleMaximize(frame.ID)
		return m, nil
	case views.PartTitle:
		m.Session.Focus(frame.ID)
		if !frame.Maximized {
			m.Drag = &DragState{
				ID:      frame.ID,
				OffsetX: dx,
				OffsetY: dy,
				Preview: registry.Point{X: frame.Rect.X, Y: frame.Rect.Y},
			}
		}
		return m, nil
	}
	m.Session.Focus(frame.ID)
	if frame.Kind == registry.ContentTerminal {
		return m, m.enterCapture()
	}
	return m, nil
}

func (m *Model) clickTaskbar(x int) {
	entries := m.Session.TaskbarEntries()
	start, spans := views.TaskbarLayout(m.taskbarData())
	if start.Contains(x) {
		m.Menu = StartMenuState{}
		m.Session.ToggleStartMenu()
		return
	}
	for i, span := range spans {
		if i < len(entries) && span.Contains(x) {
			m.Session.Focus(entries[i].ID)
			return
		}
	}
}

func (m *Model) scrollTerminal(msg tea.MouseMsg) {
	frame, ok := m.Session.WindowAt(msg.X, msg.Y)
	if !ok || frame.Kind != registry.ContentTerminal {
		return
	}
	if msg.Button == tea.MouseButtonWheelUp {
		m.termView.ScrollUp(scrollLines)
		return
	}
	m.termView.ScrollDown(scrollLines)
}

func (m Model) iconAt(x, y int) (registry.AppID, bool) {
	for _, icon := range m.Session.DesktopIcons() {
		r := session.Rect{X: icon.Position.X, Y: icon.Position.Y, W: views.IconWidth, H: views.IconHeight}
		if r.Contains(x, y) {
			return icon.ID, true
		}
	}
	return "", false
}
