package update

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/pixeldesk/internal/boot"
	"github.com/sandeepkv93/pixeldesk/internal/music"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"github.com/sandeepkv93/pixeldesk/internal/views"
)

const musicBarWidth = 24

func (m *Model) initBubbleComponents() {
	m.termInput = textinput.New()
	m.termInput.Prompt = m.Terminal.Prompt()
	m.termInput.CharLimit = 256
	m.termInput.Width = 40

	m.termView = viewport.New(60, 12)

	m.musicProgress = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(musicBarWidth))
	m.volumeBar = progress.New(progress.WithSolidFill("177"), progress.WithoutPercentage(), progress.WithWidth(musicBarWidth/2))
	m.bootProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))

	m.bootSpinner = spinner.New()
	m.bootSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

// syncBubbleData sizes the terminal widgets to the terminal window and
// refreshes their content. It also drops prompt capture once the terminal
// is no longer the focused window.
func (m *Model) syncBubbleData() {
	if focused, ok := m.Session.Focused(); m.Capture && (!ok || focused != registry.AppTerminal) {
		m.leaveCapture()
	}
	for _, f := range m.Session.WindowStack() {
		if f.ID != registry.AppTerminal {
			continue
		}
		w, h := views.BodySize(f.Rect.W, f.Rect.H)
		m.termView.Width = max(w, 1)
		m.termView.Height = max(h-1, 1)
		m.termInput.Width = max(w-len([]rune(m.Terminal.Prompt()))-1, 1)
	}

	lines := m.Terminal.Lines()
	data := make([]views.TerminalLineData, 0, len(lines))
	for _, l := range lines {
		data = append(data, views.TerminalLineData{Kind: string(l.Kind), Text: l.Text})
	}
	m.termView.SetContent(views.RenderTerminalLines(data))
	if len(lines) != m.termLines {
		m.termView.GotoBottom()
		m.termLines = len(lines)
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	vp := m.Session.Viewport()
	machine := m.Boot.Machine()
	if !machine.Done() {
		return views.RenderBoot(views.BootData{
			Width:    vp.Width,
			Height:   vp.Height,
			Stage:    string(machine.Stage()),
			Exiting:  machine.Exiting(),
			Spinner:  m.bootSpinner.View(),
			Progress: m.bootProgress.ViewAs(m.bootFraction()),
		})
	}
	return views.RenderDesktop(m.desktopData())
}

// bootFraction is how far the title stage has run, for its loading bar.
func (m Model) bootFraction() float64 {
	machine := m.Boot.Machine()
	if machine.Stage() != boot.StageTitle {
		return 1
	}
	total := machine.Timings().Title
	if total <= 0 {
		return 1
	}
	return math.Min(1, float64(m.clock().Sub(m.bootStageAt))/float64(total))
}

func (m Model) desktopData() views.DesktopData {
	vp := m.Session.Viewport()
	data := views.DesktopData{
		Width:   vp.Width,
		Height:  vp.Height,
		Taskbar: m.taskbarData(),
	}
	for _, icon := range m.Session.DesktopIcons() {
		data.Icons = append(data.Icons, views.PlacedIcon{
			IconData: views.IconData{Glyph: icon.Icon, Label: icon.Label, Selected: icon.Selected},
			X:        icon.Position.X,
			Y:        icon.Position.Y,
		})
	}
	for _, f := range m.Session.WindowStack() {
		x, y := f.Rect.X, f.Rect.Y
		if m.Drag != nil && m.Drag.ID == f.ID {
			p := session.Clamp(m.Drag.Preview, registry.Size{W: f.Rect.W, H: f.Rect.H}, vp, m.Session.Bounds().TaskbarMargin)
			x, y = p.X, p.Y
		}
		data.Windows = append(data.Windows, views.PlacedWindow{
			WindowData: views.WindowData{
				Title:       f.Title,
				Icon:        f.Icon,
				Width:       f.Rect.W,
				Height:      f.Rect.H,
				Focused:     f.Focused,
				Maximized:   f.Maximized,
				Maximizable: f.Maximizable,
				Body:        m.windowBody(f),
			},
			X: x,
			Y: y,
		})
	}
	if m.Session.StartMenuOpen() {
		menu := m.startMenuData()
		data.StartMenu = &menu
	}
	if m.Status.Text != "" {
		level := levelFromError(m.Status.IsError)
		data.Toast = views.RenderNotification(level, m.Status.Text)
	}
	if m.HelpVisible {
		data.Overlay = m.renderHelpView()
	}
	return data
}

func (m Model) windowBody(f session.WindowFrame) string {
	w, _ := views.BodySize(f.Rect.W, f.Rect.H)
	switch f.Kind {
	case registry.ContentTerminal:
		var input string
		if m.Capture {
			input = m.termInput.View()
		} else {
			input = m.Terminal.Prompt() + "(enter to type)"
		}
		return views.RenderTerminalPanel(views.TerminalPanelData{
			ScrollView: m.termView.View(),
			InputView:  input,
		})
	case registry.ContentMusic:
		return views.RenderMusicPanel(m.musicPanelData())
	default:
		d, ok := m.Session.Registry().Lookup(f.ID)
		if !ok {
			return ""
		}
		return m.markdown.Render(d.Markdown, w)
	}
}

func (m Model) musicPanelData() views.MusicPanelData {
	p := m.Music
	data := views.MusicPanelData{
		Playing:    p.Playing(),
		Volume:     int(math.Round(p.Volume() * 100)),
		VolumeView: m.volumeBar.ViewAs(p.Volume()),
		Current:    p.CurrentIndex(),
	}
	for _, t := range p.Tracks() {
		data.Playlist = append(data.Playlist, t.Name+" - "+t.Artist)
	}
	if t, ok := p.Current(); ok {
		data.Track = t.Name
		data.Artist = t.Artist
		data.Elapsed = music.FormatTime(p.Position())
		data.Total = music.FormatTime(t.Duration)
		data.ProgressView = m.musicProgress.ViewAs(float64(p.Position()) / float64(t.Duration))
	} else if p.AutoStartActive() {
		data.AutoStartIn = music.FormatTime(p.AutoStartLeft().Round(time.Second))
	}
	if err := p.LastErr(); err != nil {
		data.Error = err.Error()
	}
	return data
}

func (m Model) startMenuData() views.StartMenuData {
	entries := m.Session.StartMenuEntries(m.Menu.Query)
	data := views.StartMenuData{Query: m.Menu.Query}
	for i, e := range entries {
		data.Items = append(data.Items, views.StartMenuItemData{
			Icon:        e.Icon,
			Label:       e.Label,
			Description: e.Description,
			Matched:     e.MatchedIndexes,
			Highlighted: i == m.Menu.Cursor,
		})
	}
	return data
}

func (m Model) taskbarData() views.TaskbarData {
	vp := m.Session.Viewport()
	data := views.TaskbarData{
		Width:     vp.Width,
		StartOpen: m.Session.StartMenuOpen(),
		Clock:     m.now.Format("15:04"),
		SoundOn:   !m.Sound.Muted(),
	}
	for _, e := range m.Session.TaskbarEntries() {
		data.Entries = append(data.Entries, views.TaskbarEntryData{Icon: e.Icon, Title: e.Title, Active: e.Active})
	}
	if t, ok := m.Music.Current(); ok && m.Music.Playing() {
		data.NowPlaying = t.Name
	}
	return data
}
