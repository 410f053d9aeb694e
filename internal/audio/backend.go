package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

var ErrNoPlayer = errors.New("no audio player found")

// Request is one playback. Offset and Loop are honoured only by players
// that support them.
type Request struct {
	Path   string
	Volume float64
	Offset time.Duration
	Loop   bool
}

// Voice is a running playback.
type Voice interface {
	Stop()
	Done() <-chan struct{}
}

type Backend interface {
	Start(ctx context.Context, req Request) (Voice, error)
}

type NoopBackend struct{}

func (NoopBackend) Start(context.Context, Request) (Voice, error) { return noopVoice{}, nil }

type noopVoice struct{}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func (noopVoice) Stop()                 {}
func (noopVoice) Done() <-chan struct{} { return closedDone }

// ExecBackend shells out to a command line player. Player may name
// ffplay, paplay or afplay explicitly; empty picks the first one found.
// Only ffplay can loop or start at an offset, so those requests go to
// Seeker (ffplay, when installed) whatever Player is. Without ffplay a
// loop plays once and a resumed track starts from the beginning. paplay
// needs a libsndfile build with mp3 support.
type ExecBackend struct {
	Player string
	Seeker string
}

func NewExecBackend(player string) (*ExecBackend, error) {
	if player != "" {
		if _, err := exec.LookPath(player); err != nil {
			return nil, fmt.Errorf("audio player %q: %w", player, err)
		}
		b := &ExecBackend{Player: player}
		if seeks(player) {
			b.Seeker = player
		} else if path, err := exec.LookPath("ffplay"); err == nil {
			b.Seeker = path
		}
		return b, nil
	}
	candidates := []string{"ffplay", "paplay"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"afplay", "ffplay"}
	}
	var found []string
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return nil, ErrNoPlayer
	}
	b := &ExecBackend{Player: found[0]}
	for _, c := range found {
		if seeks(c) {
			b.Seeker = c
		}
	}
	return b, nil
}

// playerFor picks Seeker for loops and offsets when Player cannot do them.
func (b *ExecBackend) playerFor(req Request) string {
	if (req.Loop || req.Offset > 0) && !seeks(b.Player) && b.Seeker != "" {
		return b.Seeker
	}
	return b.Player
}

func (b *ExecBackend) Start(ctx context.Context, req Request) (Voice, error) {
	player := b.playerFor(req)
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, player, playerArgs(player, req)...)
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", player, err)
	}
	v := &execVoice{cancel: cancel, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(v.done)
	}()
	return v, nil
}

func playerName(player string) string {
	return strings.TrimSuffix(filepath.Base(player), ".exe")
}

func seeks(player string) bool { return playerName(player) == "ffplay" }

func playerArgs(player string, req Request) []string {
	vol := clamp01(req.Volume)
	switch playerName(player) {
	case "ffplay":
		args := []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", strconv.Itoa(int(vol * 100))}
		if req.Offset > 0 {
			args = append(args, "-ss", strconv.FormatFloat(req.Offset.Seconds(), 'f', 1, 64))
		}
		if req.Loop {
			args = append(args, "-loop", "0")
		}
		return append(args, req.Path)
	case "paplay":
		return []string{"--volume=" + strconv.Itoa(int(vol*65536)), req.Path}
	case "afplay":
		return []string{"-v", strconv.FormatFloat(vol, 'f', 2, 64), req.Path}
	default:
		return []string{req.Path}
	}
}

type execVoice struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (v *execVoice) Stop() {
	v.cancel()
	<-v.done
}

func (v *execVoice) Done() <-chan struct{} { return v.done }

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}
