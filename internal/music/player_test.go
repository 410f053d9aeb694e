package music

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type call struct {
	Path   string
	Volume float64
	Offset time.Duration
}

type fakeOutput struct {
	starts []call
	stops  int
	err    error
}

func (f *fakeOutput) StartTrack(path string, volume float64, offset time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.starts = append(f.starts, call{path, volume, offset})
	return nil
}

func (f *fakeOutput) StopTrack() { f.stops++ }

func TestPlaylistMatchesCatalogue(t *testing.T) {
	got := Playlist()
	want := []struct {
		name string
		dur  string
	}{
		{"Bittersweet Brew", "5:40"},
		{"Coverless Book", "3:07"},
		{"Piano Chill", "6:26"},
		{"Lo-Fi Postcard", "6:06"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tracks, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Name != w.name || FormatTime(got[i].Duration) != w.dur {
			t.Fatalf("track %d = %s %s, want %s %s", i, got[i].Name, FormatTime(got[i].Duration), w.name, w.dur)
		}
	}
}

func TestNextPreviousWrap(t *testing.T) {
	p := NewPlayer(&fakeOutput{}, Options{}, nil)
	if err := p.Next(); err != nil || p.CurrentIndex() != -1 {
		t.Fatal("next without a track should do nothing")
	}
	if err := p.PlayTrack(3); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := p.Next(); err != nil || p.CurrentIndex() != 0 {
		t.Fatalf("next from last should wrap to 0, got %d", p.CurrentIndex())
	}
	if err := p.Previous(); err != nil || p.CurrentIndex() != 3 {
		t.Fatalf("previous from first should wrap to last, got %d", p.CurrentIndex())
	}
	if err := p.PlayTrack(9); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestTogglePlayPause(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out, Options{}, nil)
	if err := p.TogglePlayPause(); err != nil || p.Playing() || len(out.starts) != 0 {
		t.Fatal("toggle without a track must be a no-op")
	}
	if err := p.PlayTrack(1); err != nil {
		t.Fatalf("play: %v", err)
	}
	_ = p.Tick(30 * time.Second)
	if err := p.TogglePlayPause(); err != nil || p.Playing() || out.stops != 1 {
		t.Fatal("toggle should pause")
	}
	_ = p.Tick(time.Minute)
	if p.Position() != 30*time.Second {
		t.Fatalf("paused track must not advance, position %v", p.Position())
	}
	if err := p.TogglePlayPause(); err != nil || !p.Playing() {
		t.Fatal("toggle should resume")
	}
	if last := out.starts[len(out.starts)-1]; last.Offset != 30*time.Second {
		t.Fatalf("resume should start at the paused position, got %v", last.Offset)
	}
}

func TestVolumeAndSeekClamp(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out, Options{}, nil)
	if p.Volume() != DefaultVolume {
		t.Fatalf("initial volume = %v", p.Volume())
	}
	_ = p.SetVolume(1.7)
	if p.Volume() != 1 {
		t.Fatalf("volume should clamp to 1, got %v", p.Volume())
	}
	_ = p.SetVolume(-0.2)
	if p.Volume() != 0 {
		t.Fatalf("volume should clamp to 0, got %v", p.Volume())
	}

	if err := p.SeekTo(time.Minute); err != nil || p.Position() != 0 {
		t.Fatal("seek without a track must be a no-op")
	}
	_ = p.PlayTrack(1)
	_ = p.SeekTo(time.Hour)
	if p.Position() != 3*time.Minute+7*time.Second {
		t.Fatalf("seek should clamp to duration, got %v", p.Position())
	}
	_ = p.SeekTo(-time.Second)
	if p.Position() != 0 {
		t.Fatalf("seek should clamp to zero, got %v", p.Position())
	}
}

func TestTickAdvancesAtTrackEnd(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out, Options{}, nil)
	_ = p.PlayTrack(1)
	_ = p.Tick(3*time.Minute + 7*time.Second)
	if p.CurrentIndex() != 2 || p.Position() != 0 || !p.Playing() {
		t.Fatalf("expected track 2 from the start, got idx=%d pos=%v", p.CurrentIndex(), p.Position())
	}
}

func TestAutoStartCountdown(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out, Options{}, nil)
	for i := 0; i < 9; i++ {
		_ = p.Tick(time.Second)
	}
	if _, ok := p.Current(); ok {
		t.Fatal("auto-start fired early")
	}
	if p.AutoStartLeft() != time.Second {
		t.Fatalf("expected one second left, got %v", p.AutoStartLeft())
	}
	_ = p.Tick(time.Second)
	if p.CurrentIndex() != 0 || !p.Playing() || p.AutoStartActive() {
		t.Fatal("auto-start should play the first track once")
	}
	want := []call{{Path: playlist[0].File, Volume: DefaultVolume}}
	if diff := cmp.Diff(want, out.starts); diff != "" {
		t.Fatalf("start calls mismatch (-want +got):\n%s", diff)
	}
}

func TestManualPickCancelsAutoStart(t *testing.T) {
	p := NewPlayer(&fakeOutput{}, Options{AutoStart: 2 * time.Second}, nil)
	_ = p.PlayTrack(2)
	p.Pause()
	_ = p.Tick(5 * time.Second)
	if p.CurrentIndex() != 2 || p.Playing() {
		t.Fatal("auto-start must not override a manual selection")
	}

	q := NewPlayer(&fakeOutput{}, Options{NoAutoStart: true}, nil)
	_ = q.Tick(time.Minute)
	if _, ok := q.Current(); ok {
		t.Fatal("disabled auto-start should never play")
	}
}

func TestStopBeforeAutoStartKeepsSilence(t *testing.T) {
	for name, stop := range map[string]func(*Player){
		"pause":  func(p *Player) { p.Pause() },
		"toggle": func(p *Player) { _ = p.TogglePlayPause() },
	} {
		t.Run(name, func(t *testing.T) {
			out := &fakeOutput{}
			p := NewPlayer(out, Options{AutoStart: 10 * time.Second}, nil)
			for i := 0; i < 5; i++ {
				_ = p.Tick(time.Second)
			}
			stop(p)
			for i := 0; i < 5; i++ {
				_ = p.Tick(time.Second)
			}
			if p.Playing() || p.AutoStartActive() || len(out.starts) != 0 {
				t.Fatalf("stop must cancel auto-start: playing=%v active=%v starts=%d", p.Playing(), p.AutoStartActive(), len(out.starts))
			}
		})
	}
}

func TestZeroVolumeIsHonoured(t *testing.T) {
	zero := 0.0
	out := &fakeOutput{}
	p := NewPlayer(out, Options{Volume: &zero, NoAutoStart: true}, nil)
	if p.Volume() != 0 {
		t.Fatalf("configured zero volume replaced with %v", p.Volume())
	}
	_ = p.PlayTrack(0)
	if out.starts[0].Volume != 0 {
		t.Fatalf("track started at volume %v", out.starts[0].Volume)
	}
}

func TestOutputErrorLeavesPlayerStopped(t *testing.T) {
	boom := errors.New("no device")
	p := NewPlayer(&fakeOutput{err: boom}, Options{}, nil)
	err := p.PlayTrack(0)
	if !errors.Is(err, boom) || p.Playing() || !errors.Is(p.LastErr(), boom) {
		t.Fatalf("expected wrapped output error and stopped player, got %v", err)
	}
}

func TestFormatTime(t *testing.T) {
	cases := map[time.Duration]string{
		0:                              "0:00",
		9 * time.Second:                "0:09",
		65*time.Second + 900e6:         "1:05",
		6*time.Minute + 26*time.Second: "6:26",
		-time.Second:                   "0:00",
	}
	for in, want := range cases {
		if got := FormatTime(in); got != want {
			t.Fatalf("FormatTime(%v) = %q, want %q", in, got, want)
		}
	}
}
