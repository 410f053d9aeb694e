package update

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pixeldesk/internal/audio"
	"github.com/sandeepkv93/pixeldesk/internal/boot"
	"github.com/sandeepkv93/pixeldesk/internal/music"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"github.com/sandeepkv93/pixeldesk/internal/terminal"
)

const (
	moveStepX   = 2
	moveStepY   = 1
	seekStep    = 10 * time.Second
	volumeStep  = 0.1
	scrollLines = 3
)

func (m Model) handleBootKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case "enter", " ":
		m.bootInput(true)
	default:
		m.bootInput(false)
	}
	return m, nil
}

func (m *Model) bootInput(confirm bool) {
	machine := m.Boot.Machine()
	if !m.Boot.Input(confirm) {
		return
	}
	m.bootStageAt = m.clock()
	if machine.Exiting() {
		m.Sound.Play(audio.EffectClick)
		if m.Scheduler == nil {
			// No timer engine: finish the exit right away.
			machine.Elapse(boot.StagePrompt)
			m.finishBoot()
		}
	}
}

func (m Model) handleDesktopKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Capture {
		return m.handleTerminalKey(msg)
	}
	if m.Session.StartMenuOpen() {
		return m.handleStartMenuKey(msg)
	}

	keyStr := msg.String()
	switch keyStr {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "esc":
		if m.HelpVisible {
			m.HelpVisible = false
			return m, nil
		}
		m.Session.ClearSelection()
		return m, nil
	case m.Keys.StartMenu:
		m.Menu = StartMenuState{}
		m.Session.ToggleStartMenu()
		return m, nil
	case m.Keys.Cycle:
		m.cycleFocus()
		return m, nil
	case m.Keys.Mute:
		m.toggleMute()
		return m, nil
	case m.Keys.Ambient:
		m.toggleAmbient()
		return m, nil
	}

	if id, ok := iconShortcut(m.Session.Registry(), keyStr); ok {
		if sel, has := m.Session.Selected(); has && sel == id {
			return m, m.launch(id)
		}
		m.Session.SelectIcon(id)
		return m, nil
	}

	focused, hasFocus := m.Session.Focused()
	switch keyStr {
	case "enter":
		if sel, ok := m.Session.Selected(); ok {
			return m, m.launch(sel)
		}
		if hasFocus && focused == registry.AppTerminal {
			return m, m.enterCapture()
		}
		return m, nil
	case "i":
		if hasFocus && focused == registry.AppTerminal {
			return m, m.enterCapture()
		}
		return m, nil
	}
	if !hasFocus {
		return m, nil
	}

	switch keyStr {
	case m.Keys.Close:
		m.Session.Close(focused, session.CloseFromWindow)
		return m, nil
	case m.Keys.Maximize:
		if d, ok := m.Session.Registry().Lookup(focused); ok && !d.Maximizable {
			m.notify("window", fmt.Sprintf("%s cannot be maximized", d.Title), "info")
			return m, nil
		}
		m.Session.ToggleMaximize(focused)
		return m, nil
	case "left", "right", "up", "down":
		m.nudge(focused, keyStr)
		return m, nil
	}
	if focused == registry.AppMusic {
		m.handleMusicKey(keyStr)
	}
	return m, nil
}

func (m Model) handleStartMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	items := m.Session.StartMenuEntries(m.Menu.Query)
	switch msg.Type {
	case tea.KeyEsc:
		m.Menu = StartMenuState{}
		m.Session.CloseStartMenu()
	case tea.KeyUp:
		if m.Menu.Cursor > 0 {
			m.Menu.Cursor--
		}
	case tea.KeyDown:
		if m.Menu.Cursor < len(items)-1 {
			m.Menu.Cursor++
		}
	case tea.KeyEnter:
		if len(items) == 0 {
			return m, nil
		}
		return m, m.launch(items[min(m.Menu.Cursor, len(items)-1)].ID)
	case tea.KeyBackspace:
		if r := []rune(m.Menu.Query); len(r) > 0 {
			m.Menu.Query = string(r[:len(r)-1])
			m.Menu.Cursor = 0
		}
	case tea.KeySpace:
		m.Menu.Query += " "
		m.Menu.Cursor = 0
	case tea.KeyRunes:
		m.Menu.Query += string(msg.Runes)
		m.Menu.Cursor = 0
	}
	return m, nil
}

func (m Model) handleTerminalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveCapture()
		return m, nil
	case tea.KeyTab:
		m.leaveCapture()
		m.cycleFocus()
		return m, nil
	case tea.KeyEnter:
		input := m.termInput.Value()
		res := m.Terminal.Submit(input)
		m.termInput.SetValue("")
		if res.Kind == terminal.KindError {
			m.Sound.Play(audio.EffectError)
		}
		m.termView.GotoBottom()
		return m, nil
	case tea.KeyUp:
		if v, ok := m.Terminal.Prev(); ok {
			m.termInput.SetValue(v)
			m.termInput.CursorEnd()
		}
		return m, nil
	case tea.KeyDown:
		if v, ok := m.Terminal.Next(); ok {
			m.termInput.SetValue(v)
			m.termInput.CursorEnd()
		}
		return m, nil
	case tea.KeyPgUp:
		m.termView.ScrollUp(m.termView.Height)
		return m, nil
	case tea.KeyPgDown:
		m.termView.ScrollDown(m.termView.Height)
		return m, nil
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.Sound.Play(audio.EffectType)
	}
	var cmd tea.Cmd
	m.termInput, cmd = m.termInput.Update(msg)
	return m, cmd
}

func (m *Model) handleMusicKey(keyStr string) {
	var err error
	switch keyStr {
	case " ":
		if _, ok := m.Music.Current(); ok {
			err = m.Music.TogglePlayPause()
		} else {
			err = m.Music.PlayTrack(0)
		}
	case "n":
		err = m.Music.Next()
	case "p":
		err = m.Music.Previous()
	case "+", "=":
		err = m.Music.SetVolume(m.Music.Volume() + volumeStep)
	case "-":
		err = m.Music.SetVolume(m.Music.Volume() - volumeStep)
	case ">", ".":
		err = m.Music.SeekTo(m.Music.Position() + seekStep)
	case "<", ",":
		err = m.Music.SeekTo(m.Music.Position() - seekStep)
	default:
		return
	}
	if err != nil {
		m.notify("music", err.Error(), "error")
	}
}

// launch opens id, the shared path for icons, menu items and messages.
func (m *Model) launch(id registry.AppID) tea.Cmd {
	m.Menu = StartMenuState{}
	m.Session.Open(id)
	if id == registry.AppTerminal {
		return m.enterCapture()
	}
	return nil
}

func (m *Model) enterCapture() tea.Cmd {
	m.Capture = true
	return m.termInput.Focus()
}

func (m *Model) leaveCapture() {
	m.Capture = false
	m.termInput.Blur()
}

// cycleFocus raises the bottom window, walking the whole stack over
// repeated presses.
func (m *Model) cycleFocus() {
	open := m.Session.OpenWindows()
	if len(open) < 2 {
		return
	}
	m.Session.Focus(open[0])
}

func (m *Model) nudge(id registry.AppID, dir string) {
	var from registry.Point
	found := false
	for _, f := range m.Session.WindowStack() {
		if f.ID == id {
			from = registry.Point{X: f.Rect.X, Y: f.Rect.Y}
			found = true
		}
	}
	if !found {
		return
	}
	switch dir {
	case "left":
		from.X -= moveStepX
	case "right":
		from.X += moveStepX
	case "up":
		from.Y -= moveStepY
	case "down":
		from.Y += moveStepY
	}
	m.Session.Move(id, from)
}

func (m *Model) toggleMute() {
	if m.Sound.ToggleMute() {
		m.Music.Pause()
		m.notify("sound", "sound off", "info")
		return
	}
	m.notify("sound", "sound on", "info")
}

func (m *Model) toggleAmbient() {
	if m.Sound.CurrentMusic() == audio.EffectDesktopMusic {
		m.Sound.StopMusic()
		m.notify("sound", "background music off", "info")
		return
	}
	m.Sound.PlayMusic(audio.EffectDesktopMusic)
	m.notify("sound", "background music on", "info")
}

// iconShortcut maps the digit keys to desktop icons in registry order.
func iconShortcut(reg *registry.Registry, keyStr string) (registry.AppID, bool) {
	n, err := strconv.Atoi(keyStr)
	if err != nil || n < 1 {
		return "", false
	}
	ids := reg.IDs()
	if n > len(ids) {
		return "", false
	}
	return ids[n-1], true
}

// musicCommandHandler forwards the terminal's music sub-commands to the
// playlist player.
func musicCommandHandler(player *music.Player) func(terminal.MusicArgs) (terminal.Result, error) {
	return func(args terminal.MusicArgs) (terminal.Result, error) {
		switch args.Action {
		case terminal.MusicStop:
			player.Pause()
			return terminal.Result{Kind: terminal.KindMusic, Lines: []string{"🎵 Music paused"}}, nil
		case terminal.MusicPlay:
			if err := player.Play(); err != nil {
				return terminal.Result{}, err
			}
			return terminal.Result{Kind: terminal.KindMusic, Lines: []string{"🎵 Music playing"}}, nil
		case terminal.MusicVolume:
			if err := player.SetVolume(float64(args.Level) / 10); err != nil {
				return terminal.Result{}, err
			}
			return terminal.Result{Kind: terminal.KindMusic, Lines: []string{fmt.Sprintf("🔊 Volume set to %d/10", args.Level)}}, nil
		}
		return terminal.Result{}, fmt.Errorf("unsupported music action %q", args.Action)
	}
}
