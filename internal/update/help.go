package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.contextBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Context:  m.helpContext(),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) helpContext() string {
	if m.Session.StartMenuOpen() {
		return "start menu"
	}
	if id, ok := m.Session.Focused(); ok {
		return string(id)
	}
	return "desktop"
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "1-9", Action: "select icon, press again to open"},
		{Key: m.Keys.StartMenu, Action: "toggle start menu"},
		{Key: m.Keys.Cycle, Action: "cycle windows"},
		{Key: m.Keys.Mute, Action: "mute / unmute"},
		{Key: m.Keys.Ambient, Action: "background music"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) contextBindings() []KeyBinding {
	if m.Session.StartMenuOpen() {
		return []KeyBinding{
			{Key: "type", Action: "filter applications"},
			{Key: "up/down", Action: "move highlight"},
			{Key: "enter", Action: "open highlighted"},
			{Key: "esc", Action: "close menu"},
		}
	}
	focused, ok := m.Session.Focused()
	if !ok {
		return []KeyBinding{{Key: "enter", Action: "open selected icon"}}
	}
	out := []KeyBinding{
		{Key: "arrows", Action: "move window"},
		{Key: m.Keys.Close, Action: "close window"},
		{Key: m.Keys.Maximize, Action: "maximize / restore"},
	}
	switch focused {
	case registry.AppTerminal:
		out = append(out,
			KeyBinding{Key: "enter/i", Action: "type commands"},
			KeyBinding{Key: "esc", Action: "stop typing"},
			KeyBinding{Key: "up/down", Action: "command history"},
		)
	case registry.AppMusic:
		out = append(out,
			KeyBinding{Key: "space", Action: "play / pause"},
			KeyBinding{Key: "n/p", Action: "next / previous track"},
			KeyBinding{Key: "+/-", Action: "volume"},
			KeyBinding{Key: "</>", Action: "seek"},
		)
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	global := m.globalBindings()
	out := make([]key.Binding, 0, len(global))
	for _, kb := range global {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
