package update

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/pixeldesk/internal/audio"
	"github.com/sandeepkv93/pixeldesk/internal/boot"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/scheduler"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"github.com/sandeepkv93/pixeldesk/internal/terminal"
	"github.com/sandeepkv93/pixeldesk/internal/views"
)

var testNow = time.Date(2026, 2, 9, 9, 30, 0, 0, time.UTC)

type recordingSounds struct {
	played []audio.Effect
	music  audio.Effect
	muted  bool
}

func (r *recordingSounds) Play(e audio.Effect)        { r.played = append(r.played, e) }
func (r *recordingSounds) PlayMusic(e audio.Effect)   { r.music = e }
func (r *recordingSounds) StopMusic()                 { r.music = "" }
func (r *recordingSounds) CurrentMusic() audio.Effect { return r.music }
func (r *recordingSounds) Muted() bool                { return r.muted }
func (r *recordingSounds) has(e audio.Effect) bool    { return slices.Contains(r.played, e) }

func (r *recordingSounds) ToggleMute() bool {
	r.muted = !r.muted
	return r.muted
}

func (r *recordingSounds) count(e audio.Effect) int {
	n := 0
	for _, p := range r.played {
		if p == e {
			n++
		}
	}
	return n
}

func newTestModel(t *testing.T, mutate func(*Options)) (Model, *recordingSounds) {
	t.Helper()
	sounds := &recordingSounds{}
	next := 0
	opts := DefaultOptions()
	opts.SkipBoot = true
	opts.Sound = sounds
	opts.MarkdownStyle = "notty"
	opts.Clock = func() time.Time { return testNow }
	opts.Music.NoAutoStart = true
	opts.Terminal.NewID = func() string {
		next++
		return fmt.Sprintf("line-%d", next)
	}
	if mutate != nil {
		mutate(&opts)
	}
	return NewModel(opts), sounds
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func typeKeys(m Model, s string) Model {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func waitTimer(t *testing.T, engine *scheduler.Engine) scheduler.Event {
	t.Helper()
	select {
	case ev := <-engine.C():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for timer event")
	}
	return scheduler.Event{}
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.SkipBoot = false })
	if m.Keys.Quit != "q" || m.Keys.StartMenu != "s" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
	if m.Boot.Machine().Done() {
		t.Fatal("expected boot sequence pending")
	}
	if len(m.Session.OpenWindows()) != 0 {
		t.Fatalf("expected empty desktop, got %v", m.Session.OpenWindows())
	}
	if m.SessionID == "" {
		t.Fatal("expected a session id")
	}
}

func TestIconShortcutSelectsThenOpens(t *testing.T) {
	m, sounds := newTestModel(t, nil)
	next := typeKeys(m, "1")
	if sel, ok := next.Session.Selected(); !ok || sel != registry.AppAbout {
		t.Fatalf("expected about selected, got %q %v", sel, ok)
	}
	if len(next.Session.OpenWindows()) != 0 {
		t.Fatal("single press must not open")
	}

	next = typeKeys(next, "1")
	if diff := cmp.Diff([]registry.AppID{registry.AppAbout}, next.Session.OpenWindows()); diff != "" {
		t.Fatalf("open windows mismatch (-want +got):\n%s", diff)
	}
	if !sounds.has(audio.EffectClick) || !sounds.has(audio.EffectOpen) {
		t.Fatalf("expected click and open sounds, got %v", sounds.played)
	}
}

func TestStartMenuFilterAndLaunch(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := typeKeys(m, "s")
	if !next.Session.StartMenuOpen() {
		t.Fatal("expected start menu open")
	}
	next = typeKeys(next, "Term")
	if next.Menu.Query != "Term" {
		t.Fatalf("expected query Term, got %q", next.Menu.Query)
	}
	menu := next.startMenuData()
	if len(menu.Items) != 1 || menu.Items[0].Label != "Terminal" || !menu.Items[0].Highlighted {
		t.Fatalf("unexpected filtered menu: %+v", menu.Items)
	}

	next = send(next, tea.KeyMsg{Type: tea.KeyEnter})
	if next.Session.StartMenuOpen() {
		t.Fatal("expected start menu closed after launch")
	}
	if focused, _ := next.Session.Focused(); focused != registry.AppTerminal {
		t.Fatalf("expected terminal focused, got %q", focused)
	}
	if !next.Capture {
		t.Fatal("expected terminal to capture keys after launch")
	}
	if next.Menu != (StartMenuState{}) {
		t.Fatalf("expected menu state reset, got %+v", next.Menu)
	}
}

func TestStartMenuEscapeAndCursor(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := typeKeys(m, "s")
	next = send(next, tea.KeyMsg{Type: tea.KeyDown})
	next = send(next, tea.KeyMsg{Type: tea.KeyDown})
	next = send(next, tea.KeyMsg{Type: tea.KeyUp})
	if next.Menu.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", next.Menu.Cursor)
	}
	next = send(next, tea.KeyMsg{Type: tea.KeyEnter})
	if focused, _ := next.Session.Focused(); focused != registry.AppProjects {
		t.Fatalf("expected second entry (projects) opened, got %q", focused)
	}

	next = typeKeys(next, "s")
	next = send(next, tea.KeyMsg{Type: tea.KeyEsc})
	if next.Session.StartMenuOpen() {
		t.Fatal("expected escape to close the start menu")
	}
}

func TestTerminalCaptureSubmit(t *testing.T) {
	m, sounds := newTestModel(t, nil)
	next := send(m, OpenAppMsg{ID: registry.AppTerminal})
	if !next.Capture {
		t.Fatal("expected capture after opening terminal")
	}

	next = typeKeys(next, "help")
	next = send(next, tea.KeyMsg{Type: tea.KeyEnter})
	lines := next.Terminal.Lines()
	if !slices.ContainsFunc(lines, func(l terminal.Line) bool { return l.Text == next.Terminal.Prompt()+"help" }) {
		t.Fatalf("expected echoed help command in %v", lines)
	}
	if next.termInput.Value() != "" {
		t.Fatalf("expected cleared input, got %q", next.termInput.Value())
	}

	next = typeKeys(next, "zzz")
	next = send(next, tea.KeyMsg{Type: tea.KeyEnter})
	lines = next.Terminal.Lines()
	if last := lines[len(lines)-1]; last.Text != "command not found: zzz" {
		t.Fatalf("expected unknown command line, got %q", last.Text)
	}
	if !sounds.has(audio.EffectError) || !sounds.has(audio.EffectType) {
		t.Fatalf("expected typing and error sounds, got %v", sounds.played)
	}

	next = send(next, tea.KeyMsg{Type: tea.KeyUp})
	if next.termInput.Value() != "zzz" {
		t.Fatalf("expected history recall, got %q", next.termInput.Value())
	}

	next = send(next, tea.KeyMsg{Type: tea.KeyEsc})
	if next.Capture {
		t.Fatal("expected escape to release the terminal")
	}
	next = typeKeys(next, "i")
	if !next.Capture {
		t.Fatal("expected i to resume typing in the focused terminal")
	}
}

func TestTerminalMusicCommandsDrivePlayer(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := send(m, OpenAppMsg{ID: registry.AppTerminal})
	for _, tc := range []struct {
		input   string
		playing bool
		volume  float64
	}{
		{input: "music play", playing: true, volume: 0.6},
		{input: "music volume 3", playing: true, volume: 0.3},
		{input: "music stop", playing: false, volume: 0.3},
	} {
		next = typeKeys(next, tc.input)
		next = send(next, tea.KeyMsg{Type: tea.KeyEnter})
		if next.Music.Playing() != tc.playing {
			t.Fatalf("%q: expected playing=%v", tc.input, tc.playing)
		}
		if got := next.Music.Volume(); got < tc.volume-1e-9 || got > tc.volume+1e-9 {
			t.Fatalf("%q: expected volume %.1f, got %.2f", tc.input, tc.volume, got)
		}
	}
	if idx := next.Music.CurrentIndex(); idx != 0 {
		t.Fatalf("expected first track selected, got %d", idx)
	}
}

func TestKeyboardWindowManagement(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := send(m, OpenAppMsg{ID: registry.AppAbout})
	next = send(next, OpenAppMsg{ID: registry.AppProjects})

	next = send(next, tea.KeyMsg{Type: tea.KeyTab})
	if diff := cmp.Diff([]registry.AppID{registry.AppProjects, registry.AppAbout}, next.Session.OpenWindows()); diff != "" {
		t.Fatalf("tab should raise the bottom window (-want +got):\n%s", diff)
	}

	next = typeKeys(next, "m")
	if next.Session.IsMaximized(registry.AppAbout) {
		t.Fatal("about is not maximizable")
	}
	if !strings.Contains(next.Status.Text, "cannot be maximized") {
		t.Fatalf("expected maximize refusal status, got %q", next.Status.Text)
	}

	before, _ := next.Session.Position(registry.AppAbout)
	next = send(next, tea.KeyMsg{Type: tea.KeyRight})
	next = send(next, tea.KeyMsg{Type: tea.KeyDown})
	after, _ := next.Session.Position(registry.AppAbout)
	if after.X != before.X+moveStepX || after.Y != before.Y+moveStepY {
		t.Fatalf("expected nudge from %+v, got %+v", before, after)
	}

	next = typeKeys(next, "x")
	if diff := cmp.Diff([]registry.AppID{registry.AppProjects}, next.Session.OpenWindows()); diff != "" {
		t.Fatalf("close mismatch (-want +got):\n%s", diff)
	}
	next = typeKeys(next, "m")
	if !next.Session.IsMaximized(registry.AppProjects) {
		t.Fatal("expected projects maximized")
	}
}

func TestMouseDragCommitsOnRelease(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := send(m, OpenAppMsg{ID: registry.AppAbout})
	start, _ := next.Session.Position(registry.AppAbout)

	next = send(next, click(start.X+3, start.Y))
	if next.Drag == nil || next.Drag.ID != registry.AppAbout {
		t.Fatalf("expected drag on title bar, got %+v", next.Drag)
	}
	next = send(next, tea.MouseMsg{X: start.X + 13, Y: start.Y + 4, Action: tea.MouseActionMotion})
	if p, _ := next.Session.Position(registry.AppAbout); p != start {
		t.Fatalf("position must not change before release, got %+v", p)
	}
	next = send(next, tea.MouseMsg{X: start.X + 13, Y: start.Y + 4, Action: tea.MouseActionRelease})
	want := registry.Point{X: start.X + 10, Y: start.Y + 4}
	if p, _ := next.Session.Position(registry.AppAbout); p != want {
		t.Fatalf("expected %+v after drop, got %+v", want, p)
	}
	if next.Drag != nil {
		t.Fatal("expected drag cleared")
	}
}

func TestMouseCloseButtonClearsSelection(t *testing.T) {
	m, sounds := newTestModel(t, nil)
	next := typeKeys(m, "1")
	next = typeKeys(next, "1")
	frame := next.Session.WindowStack()[0]

	next = send(next, click(frame.Rect.X+frame.Rect.W-3, frame.Rect.Y))
	if len(next.Session.OpenWindows()) != 0 {
		t.Fatalf("expected about closed, got %v", next.Session.OpenWindows())
	}
	if _, ok := next.Session.Selected(); ok {
		t.Fatal("closing from the window must clear its icon selection")
	}
	if sounds.count(audio.EffectClose) != 1 {
		t.Fatalf("expected one close sound, got %v", sounds.played)
	}
}

func TestMouseIconDoubleClickAndBackground(t *testing.T) {
	m, _ := newTestModel(t, nil)
	var about session.DesktopIcon
	for _, icon := range m.Session.DesktopIcons() {
		if icon.ID == registry.AppAbout {
			about = icon
		}
	}

	next := send(m, click(about.Position.X, about.Position.Y))
	if sel, _ := next.Session.Selected(); sel != registry.AppAbout {
		t.Fatalf("expected about selected, got %q", sel)
	}
	next = send(next, click(about.Position.X+1, about.Position.Y+1))
	if !next.Session.IsOpen(registry.AppAbout) {
		t.Fatal("expected double click to open about")
	}

	next = send(next, click(110, 30))
	if _, ok := next.Session.Selected(); ok {
		t.Fatal("expected background click to clear the selection")
	}
}

func TestTaskbarAndStartMenuClicks(t *testing.T) {
	m, _ := newTestModel(t, nil)
	vp := m.Session.Viewport()

	next := send(m, click(1, vp.Height-1))
	if !next.Session.StartMenuOpen() {
		t.Fatal("expected start button to open the menu")
	}
	items := next.Session.StartMenuEntries("")
	_, top := views.StartMenuOrigin(vp.Height, len(items))
	next = send(next, click(2, top+4))
	if next.Session.StartMenuOpen() || !next.Session.IsOpen(items[0].ID) {
		t.Fatalf("expected %q launched from the menu", items[0].ID)
	}

	next = send(next, OpenAppMsg{ID: registry.AppProjects})
	_, spans := views.TaskbarLayout(next.taskbarData())
	next = send(next, click(spans[0].X0, vp.Height-1))
	if focused, _ := next.Session.Focused(); focused != items[0].ID {
		t.Fatalf("expected taskbar entry to focus %q, got %q", items[0].ID, focused)
	}
}

func TestBootSequenceWithEngine(t *testing.T) {
	engine := scheduler.NewEngine(8)
	engine.Start()
	defer engine.Stop()

	m, sounds := newTestModel(t, func(o *Options) {
		o.SkipBoot = false
		o.Scheduler = engine
		o.BootTimings = boot.Timings{Intro: 5 * time.Millisecond, Title: 5 * time.Millisecond, Exit: 5 * time.Millisecond}
	})
	_ = m.Init()
	if !strings.Contains(m.View(), "PIXEL STUDIOS") {
		t.Fatal("expected intro screen")
	}

	next := send(m, TimerFiredMsg{Event: waitTimer(t, engine)})
	if next.Boot.Machine().Stage() != boot.StageTitle {
		t.Fatalf("expected title stage, got %q", next.Boot.Machine().Stage())
	}
	next = send(next, TimerFiredMsg{Event: waitTimer(t, engine)})
	if next.Boot.Machine().Stage() != boot.StagePrompt {
		t.Fatalf("expected prompt stage, got %q", next.Boot.Machine().Stage())
	}

	next = send(next, tea.KeyMsg{Type: tea.KeyEnter})
	if !next.Boot.Machine().Exiting() {
		t.Fatal("expected enter to start the exit")
	}
	next = send(next, TimerFiredMsg{Event: waitTimer(t, engine)})
	if !next.Boot.Machine().Done() {
		t.Fatalf("expected boot done, got %q", next.Boot.Machine().Stage())
	}
	for _, e := range []audio.Effect{audio.EffectBoot, audio.EffectClick, audio.EffectSuccess} {
		if !sounds.has(e) {
			t.Fatalf("expected %s sound, got %v", e, sounds.played)
		}
	}
	if !strings.Contains(next.View(), "START") {
		t.Fatal("expected desktop after boot")
	}
}

func TestBootWithoutEngineIsInputDriven(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.SkipBoot = false })
	next := typeKeys(m, "a")
	next = typeKeys(next, "a")
	if next.Boot.Machine().Stage() != boot.StagePrompt {
		t.Fatalf("expected any key to skip to the prompt, got %q", next.Boot.Machine().Stage())
	}
	next = typeKeys(next, "a")
	if next.Boot.Machine().Done() {
		t.Fatal("non-confirm key must not leave the prompt")
	}
	next = send(next, click(3, 3))
	if !next.Boot.Machine().Done() {
		t.Fatal("expected click to finish boot")
	}
}

func TestToastExpires(t *testing.T) {
	engine := scheduler.NewEngine(8)
	engine.Start()
	defer engine.Stop()

	m, _ := newTestModel(t, func(o *Options) {
		o.Scheduler = engine
		o.ToastLifetime = 5 * time.Millisecond
	})
	next := send(m, SetStatusMsg{Text: "saved"})
	if next.Status.Text != "saved" || len(next.Notifications) != 1 {
		t.Fatalf("expected status and notification, got %+v", next.Status)
	}
	ev := waitTimer(t, engine)
	if ev.Kind != scheduler.KindToastExpire {
		t.Fatalf("expected toast expiry, got %+v", ev)
	}
	next = send(next, TimerFiredMsg{Event: ev})
	if next.Status.Text != "" {
		t.Fatalf("expected toast cleared, got %q", next.Status.Text)
	}
}

func TestMuteAndAmbientMusic(t *testing.T) {
	m, sounds := newTestModel(t, nil)
	if err := m.Music.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	next := typeKeys(m, "M")
	if !sounds.muted || next.Music.Playing() {
		t.Fatal("expected mute to silence the playlist")
	}
	if next.Status.Text != "sound off" {
		t.Fatalf("unexpected status %q", next.Status.Text)
	}
	if next.taskbarData().SoundOn {
		t.Fatal("expected tray to show sound off")
	}

	next = typeKeys(next, "b")
	if sounds.music != audio.EffectDesktopMusic {
		t.Fatalf("expected background loop, got %q", sounds.music)
	}
	next = typeKeys(next, "b")
	if sounds.music != "" {
		t.Fatalf("expected background loop stopped, got %q", sounds.music)
	}
}

func TestMusicWindowKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := send(m, OpenAppMsg{ID: registry.AppMusic})
	next = typeKeys(next, " ")
	if !next.Music.Playing() || next.Music.CurrentIndex() != 0 {
		t.Fatal("expected space to start the first track")
	}
	next = typeKeys(next, "p")
	if next.Music.CurrentIndex() != len(next.Music.Tracks())-1 {
		t.Fatalf("expected previous to wrap, got %d", next.Music.CurrentIndex())
	}
	next = typeKeys(next, ">")
	if next.Music.Position() != seekStep {
		t.Fatalf("expected seek to %v, got %v", seekStep, next.Music.Position())
	}
	next = typeKeys(next, "-")
	if got := next.Music.Volume(); got > 0.5+1e-9 || got < 0.5-1e-9 {
		t.Fatalf("expected volume 0.5, got %.2f", got)
	}
	if !strings.Contains(views.RenderMusicPanel(next.musicPanelData()), "▶ playing") {
		t.Fatal("expected playing state in the music panel")
	}
}

func TestClockTickRunsMusicAutoStart(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) {
		o.Music.NoAutoStart = false
		o.Music.AutoStart = 2 * time.Second
	})
	next := send(m, ClockTickMsg{At: testNow.Add(time.Second)})
	if _, ok := next.Music.Current(); ok {
		t.Fatal("auto-start fired too early")
	}
	next = send(next, ClockTickMsg{At: testNow.Add(2 * time.Second)})
	if !next.Music.Playing() || next.Music.CurrentIndex() != 0 {
		t.Fatal("expected auto-start to play the first track")
	}
	if next.taskbarData().Clock != "09:30" {
		t.Fatalf("unexpected clock %q", next.taskbarData().Clock)
	}
}

func TestResizeAndView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if vp := next.Session.Viewport(); vp.Width != 100 || vp.Height != 30 {
		t.Fatalf("unexpected viewport %+v", vp)
	}
	next = send(next, OpenAppMsg{ID: registry.AppTerminal})
	next = typeKeys(next, "?")
	view := next.View()
	if got := strings.Count(view, "\n") + 1; got != 30 {
		t.Fatalf("expected 30 rows, got %d", got)
	}
	if next.HelpVisible {
		t.Fatal("? typed into the terminal must not toggle help")
	}
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := typeKeys(m, "?")
	if !next.HelpVisible || !strings.Contains(next.renderHelpView(), "toggle start menu") {
		t.Fatal("expected help panel")
	}
	updated, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected quit")
	}
}

func TestShutdownCancelsPendingTimers(t *testing.T) {
	engine := scheduler.NewEngine(8)
	engine.Start()
	defer engine.Stop()

	m, _ := newTestModel(t, func(o *Options) {
		o.SkipBoot = false
		o.Scheduler = engine
	})
	_ = m.Init()
	next := send(m, SetStatusMsg{Text: "hello"})
	if engine.Pending() != 2 {
		t.Fatalf("expected boot and toast timers pending, got %d", engine.Pending())
	}
	next.Shutdown()
	if engine.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", engine.Pending())
	}
}
