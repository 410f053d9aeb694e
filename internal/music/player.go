// Package music is the lo-fi playlist player: a fixed track list with
// play, pause, skip, seek and volume, plus a countdown that starts the
// first track if the user has not picked one.
package music

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultVolume    = 0.6
	DefaultAutoStart = 10 * time.Second
)

type Track struct {
	ID       string
	Name     string
	Artist   string
	File     string
	Duration time.Duration
}

var playlist = []Track{
	{ID: "bittersweet-brew", Name: "Bittersweet Brew", Artist: "Café Lounge", File: "sounds/music/bittersweet-brew-chill-lo-fi-cafe-beat-340597.mp3", Duration: 5*time.Minute + 40*time.Second},
	{ID: "coverless-book", Name: "Coverless Book", Artist: "Study Sessions", File: "sounds/music/coverless-book-lofi-186307.mp3", Duration: 3*time.Minute + 7*time.Second},
	{ID: "lofi-piano-chill", Name: "Piano Chill", Artist: "Evening Vibes", File: "sounds/music/lofi-piano-chill-386799.mp3", Duration: 6*time.Minute + 26*time.Second},
	{ID: "lofi-postcard", Name: "Lo-Fi Postcard", Artist: "Chill Beats", File: "sounds/music/lofi-chill-beat-lo-fi-postcard-366049.mp3", Duration: 6*time.Minute + 6*time.Second},
}

func Playlist() []Track {
	out := make([]Track, len(playlist))
	copy(out, playlist)
	return out
}

// Output is where audio actually goes.
type Output interface {
	StartTrack(path string, volume float64, offset time.Duration) error
	StopTrack()
}

type Options struct {
	// Nil means DefaultVolume; zero is silent.
	Volume    *float64
	AutoStart time.Duration
	// Disable the countdown entirely.
	NoAutoStart bool
}

type Player struct {
	tracks   []Track
	out      Output
	logger   *zap.Logger
	current  int
	playing  bool
	volume   float64
	position time.Duration

	autoStartLeft   time.Duration
	autoStartActive bool
	lastErr         error
}

func NewPlayer(out Output, opts Options, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Player{
		tracks:          Playlist(),
		out:             out,
		logger:          logger,
		current:         -1,
		volume:          DefaultVolume,
		autoStartLeft:   opts.AutoStart,
		autoStartActive: !opts.NoAutoStart,
	}
	if opts.Volume != nil {
		p.volume = clampVolume(*opts.Volume)
	}
	if p.autoStartLeft <= 0 {
		p.autoStartLeft = DefaultAutoStart
	}
	return p
}

func (p *Player) Tracks() []Track              { return p.tracks }
func (p *Player) Playing() bool                { return p.playing }
func (p *Player) Volume() float64              { return p.volume }
func (p *Player) Position() time.Duration      { return p.position }
func (p *Player) AutoStartActive() bool        { return p.autoStartActive }
func (p *Player) AutoStartLeft() time.Duration { return p.autoStartLeft }

// LastErr is the most recent output failure, cleared by the next
// successful start.
func (p *Player) LastErr() error { return p.lastErr }

// Current returns the selected track, if any.
func (p *Player) Current() (Track, bool) {
	if p.current < 0 {
		return Track{}, false
	}
	return p.tracks[p.current], true
}

func (p *Player) CurrentIndex() int { return p.current }

// Duration of the current track, zero when none is selected.
func (p *Player) Duration() time.Duration {
	if t, ok := p.Current(); ok {
		return t.Duration
	}
	return 0
}

// PlayTrack selects track i from the start. Selecting any track cancels
// the auto-start countdown.
func (p *Player) PlayTrack(i int) error {
	if i < 0 || i >= len(p.tracks) {
		return fmt.Errorf("track index %d out of range", i)
	}
	p.current = i
	p.position = 0
	p.autoStartActive = false
	return p.start()
}

// TogglePlayPause only cancels the auto-start countdown until a track
// is selected.
func (p *Player) TogglePlayPause() error {
	if p.current < 0 {
		p.autoStartActive = false
		return nil
	}
	if p.playing {
		p.pause()
		return nil
	}
	return p.start()
}

func (p *Player) Play() error {
	if p.current < 0 {
		return p.PlayTrack(0)
	}
	if p.playing {
		return nil
	}
	return p.start()
}

// Pause also cancels a pending auto-start.
func (p *Player) Pause() {
	p.autoStartActive = false
	if p.playing {
		p.pause()
	}
}

func (p *Player) Next() error {
	if p.current < 0 {
		return nil
	}
	return p.PlayTrack((p.current + 1) % len(p.tracks))
}

func (p *Player) Previous() error {
	if p.current < 0 {
		return nil
	}
	prev := p.current - 1
	if prev < 0 {
		prev = len(p.tracks) - 1
	}
	return p.PlayTrack(prev)
}

// SetVolume clamps v to [0,1]. A playing track restarts at its position
// so the new level takes effect.
func (p *Player) SetVolume(v float64) error {
	p.volume = clampVolume(v)
	if p.playing {
		return p.start()
	}
	return nil
}

// SeekTo clamps t to [0,duration]. Without a track it is a no-op.
func (p *Player) SeekTo(t time.Duration) error {
	d := p.Duration()
	if d <= 0 {
		return nil
	}
	p.position = min(d, max(0, t))
	if p.playing {
		return p.start()
	}
	return nil
}

// Tick advances playback and the auto-start countdown by d. A track that
// reaches its end moves on to the next one.
func (p *Player) Tick(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if p.current < 0 {
		if !p.autoStartActive {
			return nil
		}
		p.autoStartLeft -= d
		if p.autoStartLeft > 0 {
			return nil
		}
		p.autoStartLeft = 0
		p.logger.Debug("music auto-start")
		return p.PlayTrack(0)
	}
	if !p.playing {
		return nil
	}
	p.position += d
	if p.position >= p.Duration() {
		return p.Next()
	}
	return nil
}

// Close stops output without forgetting the selection.
func (p *Player) Close() {
	p.pause()
	p.autoStartActive = false
}

func (p *Player) start() error {
	if p.out == nil {
		p.playing = true
		return nil
	}
	t := p.tracks[p.current]
	if err := p.out.StartTrack(t.File, p.volume, p.position); err != nil {
		p.playing = false
		p.lastErr = err
		p.logger.Warn("could not play track", zap.String("track", t.ID), zap.Error(err))
		return fmt.Errorf("play %s: %w", t.Name, err)
	}
	p.playing = true
	p.lastErr = nil
	return nil
}

func (p *Player) pause() {
	p.playing = false
	if p.out != nil {
		p.out.StopTrack()
	}
}

// FormatTime renders d as m:ss.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func clampVolume(v float64) float64 {
	return min(1, max(0, v))
}
