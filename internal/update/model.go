package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"
	"github.com/sandeepkv93/pixeldesk/internal/audio"
	"github.com/sandeepkv93/pixeldesk/internal/boot"
	"github.com/sandeepkv93/pixeldesk/internal/music"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/scheduler"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"github.com/sandeepkv93/pixeldesk/internal/terminal"
	"github.com/sandeepkv93/pixeldesk/internal/views"
	"go.uber.org/zap"
)

const (
	maxNotifications     = 40
	doubleClickGap       = 500 * time.Millisecond
	defaultToastLifetime = 4 * time.Second
	toastTimerID         = "toast"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	StartMenu string
	Cycle     string
	Close     string
	Maximize  string
	Mute      string
	Ambient   string
	Help      string
	Quit      string
}

// Sounds is the part of the sound system the desktop drives.
type Sounds interface {
	Play(audio.Effect)
	PlayMusic(audio.Effect)
	StopMusic()
	CurrentMusic() audio.Effect
	ToggleMute() bool
	Muted() bool
}

type noSounds struct{}

func (noSounds) Play(audio.Effect)          {}
func (noSounds) PlayMusic(audio.Effect)     {}
func (noSounds) StopMusic()                 {}
func (noSounds) CurrentMusic() audio.Effect { return "" }
func (noSounds) ToggleMute() bool           { return false }
func (noSounds) Muted() bool                { return false }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type StartMenuState struct {
	Query  string
	Cursor int
}

// DragState tracks a title-bar drag. The window is drawn at Preview while
// the button is held and committed with one move on release.
type DragState struct {
	ID      registry.AppID
	OffsetX int
	OffsetY int
	Preview registry.Point
}

type clickRecord struct {
	ID registry.AppID
	At time.Time
}

type Model struct {
	Session       *session.State
	Boot          *boot.Driver
	Terminal      *terminal.Session
	Music         *music.Player
	Sound         Sounds
	Scheduler     *scheduler.Engine
	Logger        *zap.Logger
	SessionID     string
	Keys          GlobalKeyMap
	Menu          StartMenuState
	Capture       bool
	Drag          *DragState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Quitting      bool
	LastError     error

	clock       func() time.Time
	toastFor    time.Duration
	now         time.Time
	bootStageAt time.Time
	lastClick   clickRecord
	toast       scheduler.Event
	termLines   int
	markdown    *views.MarkdownRenderer
	unsubscribe func()
	// Bubble components used for the window bodies and boot screen
	termInput     textinput.Model
	termView      viewport.Model
	musicProgress progress.Model
	volumeBar     progress.Model
	bootProgress  progress.Model
	bootSpinner   spinner.Model
	helpModel     help.Model
}

// Options wires a Model. Zero values fall back to defaults.
type Options struct {
	Registry      *registry.Registry
	Bounds        session.Bounds
	Viewport      session.Viewport
	InitialOpen   []registry.AppID
	BootTimings   boot.Timings
	SkipBoot      bool
	Scheduler     *scheduler.Engine
	Sound         Sounds
	MusicOutput   music.Output
	Music         music.Options
	Terminal      terminal.Options
	MarkdownStyle string
	ToastLifetime time.Duration
	Logger        *zap.Logger
	Clock         func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Registry:      registry.Default(),
		Bounds:        session.DefaultBounds(),
		Viewport:      session.Viewport{Width: 120, Height: 40},
		BootTimings:   boot.DefaultTimings(),
		ToastLifetime: defaultToastLifetime,
	}
}

type OpenAppMsg struct {
	ID registry.AppID
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TimerFiredMsg struct {
	Event scheduler.Event
}

type ClockTickMsg struct {
	At time.Time
}

func NewModel(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	if opts.Bounds == (session.Bounds{}) {
		opts.Bounds = session.DefaultBounds()
	}
	if opts.BootTimings == (boot.Timings{}) {
		opts.BootTimings = boot.DefaultTimings()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sound == nil {
		opts.Sound = noSounds{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ToastLifetime <= 0 {
		opts.ToastLifetime = defaultToastLifetime
	}

	machine := boot.NewMachine(opts.BootTimings)
	if opts.SkipBoot {
		machine = boot.NewFinished()
	}

	m := Model{
		Session: session.New(opts.Registry, session.Config{
			Bounds:      opts.Bounds,
			Viewport:    opts.Viewport,
			InitialOpen: opts.InitialOpen,
		}),
		Boot:      boot.NewDriver(machine, opts.Scheduler, opts.Logger),
		Music:     music.NewPlayer(opts.MusicOutput, opts.Music, opts.Logger),
		Sound:     opts.Sound,
		Scheduler: opts.Scheduler,
		Logger:    opts.Logger,
		SessionID: uuid.NewString(),
		Keys: GlobalKeyMap{
			StartMenu: "s",
			Cycle:     "tab",
			Close:     "x",
			Maximize:  "m",
			Mute:      "M",
			Ambient:   "b",
			Help:      "?",
			Quit:      "q",
		},
		clock:    opts.Clock,
		toastFor: opts.ToastLifetime,
		markdown: views.NewMarkdownRenderer(opts.MarkdownStyle),
	}
	m.now = m.clock()
	m.bootStageAt = m.now

	termOpts := opts.Terminal
	termOpts.Handlers.Music = musicCommandHandler(m.Music)
	m.Terminal = terminal.NewSession(termOpts)

	m.unsubscribe = m.Session.Subscribe(sessionListener(m.Logger, m.Sound, m.SessionID))
	m.initBubbleComponents()
	m.syncBubbleData()
	m.Logger.Info("desktop session started",
		zap.String("session", m.SessionID),
		zap.Bool("skip_boot", opts.SkipBoot),
		zap.Int("initial_windows", len(m.Session.OpenWindows())),
	)
	return m
}

// Shutdown cancels every pending timer and stops audio owned by the model.
func (m Model) Shutdown() {
	m.Boot.Stop()
	if m.Scheduler != nil {
		m.Scheduler.Cancel(toastTimerID)
	}
	m.Music.Close()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.Logger.Info("desktop session ended", zap.String("session", m.SessionID))
}

func sessionListener(logger *zap.Logger, sound Sounds, sessionID string) session.Listener {
	return func(c session.Change) {
		logger.Debug("session change",
			zap.String("session", sessionID),
			zap.String("op", string(c.Op)),
			zap.String("app", string(c.ID)),
		)
		switch c.Op {
		case session.OpOpen:
			sound.Play(audio.EffectOpen)
		case session.OpClose:
			sound.Play(audio.EffectClose)
		case session.OpSelect, session.OpStartMenu:
			sound.Play(audio.EffectClick)
		}
	}
}
