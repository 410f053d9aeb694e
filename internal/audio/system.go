package audio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultMasterVolume = 0.8

type Options struct {
	AssetDir     string
	// Nil means DefaultMasterVolume; zero is silent.
	MasterVolume *float64
	Muted        bool
}

// System is the sound facade used by the desktop. Every method is safe to
// call before Load, after Close or with a no-op backend.
type System struct {
	backend  Backend
	logger   *zap.Logger
	assetDir string

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	loaded    map[Effect]Spec
	isLoaded  bool
	voices    map[Effect]Voice
	music     Voice
	musicName Effect
	track     Voice
	master    float64
	muted     bool
	closed    bool
}

func NewSystem(backend Backend, opts Options, logger *zap.Logger) *System {
	if backend == nil {
		backend = NoopBackend{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	master := DefaultMasterVolume
	if opts.MasterVolume != nil {
		master = *opts.MasterVolume
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &System{
		backend:  backend,
		logger:   logger,
		assetDir: opts.AssetDir,
		ctx:      ctx,
		cancel:   cancel,
		loaded:   make(map[Effect]Spec),
		voices:   make(map[Effect]Voice),
		master:   clamp01(master),
		muted:    opts.Muted,
	}
}

// Load probes every asset concurrently. Missing files are skipped with a
// warning; only context cancellation aborts the batch.
func (s *System) Load(ctx context.Context) (int, error) {
	specs := Effects()
	found := make([]bool, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info, err := os.Stat(s.resolve(spec.Path))
			switch {
			case errors.Is(err, fs.ErrNotExist):
				s.logger.Warn("sound asset missing", zap.String("effect", string(spec.Name)), zap.String("path", spec.Path))
				return nil
			case err != nil:
				s.logger.Warn("sound asset unreadable", zap.String("effect", string(spec.Name)), zap.Error(err))
				return nil
			case info.IsDir():
				s.logger.Warn("sound asset is a directory", zap.String("effect", string(spec.Name)))
				return nil
			}
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("load sounds: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, spec := range specs {
		if found[i] {
			s.loaded[spec.Name] = spec
		}
	}
	s.isLoaded = true
	s.logger.Info("sound system loaded", zap.Int("loaded", len(s.loaded)), zap.Int("total", len(specs)))
	return len(s.loaded), nil
}

func (s *System) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoaded
}

func (s *System) Available(name Effect) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loaded[name]
	return ok
}

// Play starts an effect, stopping any instance of it still running.
func (s *System) Play(name Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isLoaded || s.muted || s.closed {
		return
	}
	spec, ok := s.loaded[name]
	if !ok {
		s.logger.Debug("sound not available", zap.String("effect", string(name)))
		return
	}
	if prev, ok := s.voices[name]; ok {
		prev.Stop()
		delete(s.voices, name)
	}
	if v := s.start(spec.Name, Request{Path: s.resolve(spec.Path), Volume: spec.Volume * s.master, Loop: spec.Loop}); v != nil {
		s.voices[name] = v
	}
}

func (s *System) Stop(name Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.voices[name]; ok {
		v.Stop()
		delete(s.voices, name)
	}
}

// PlayMusic switches the looping background track.
func (s *System) PlayMusic(name Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isLoaded || s.closed {
		return
	}
	spec, ok := s.loaded[name]
	if !ok || !spec.Loop {
		return
	}
	s.stopMusicLocked()
	s.musicName = name
	if s.muted {
		return
	}
	s.music = s.start(name, Request{Path: s.resolve(spec.Path), Volume: spec.Volume * s.master, Loop: true})
}

func (s *System) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopMusicLocked()
	s.musicName = ""
}

func (s *System) CurrentMusic() Effect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.musicName
}

// StartTrack plays a playlist file at the given offset, replacing the
// previous track.
func (s *System) StartTrack(path string, volume float64, offset time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.track != nil {
		s.track.Stop()
		s.track = nil
	}
	if s.closed || s.muted {
		return nil
	}
	full := s.resolve(path)
	if _, err := os.Stat(full); err != nil {
		return fmt.Errorf("track %s: %w", path, err)
	}
	v, err := s.backend.Start(s.ctx, Request{Path: full, Volume: clamp01(volume) * s.master, Offset: offset})
	if err != nil {
		return fmt.Errorf("track %s: %w", path, err)
	}
	s.track = v
	return nil
}

func (s *System) StopTrack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.track != nil {
		s.track.Stop()
		s.track = nil
	}
}

func (s *System) SetMasterVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.master = clamp01(v)
}

func (s *System) MasterVolume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master
}

// ToggleMute silences every running voice. Unmuting resumes the
// background loop but not one-shot effects.
func (s *System) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	if s.muted {
		for name, v := range s.voices {
			v.Stop()
			delete(s.voices, name)
		}
		if s.music != nil {
			s.music.Stop()
			s.music = nil
		}
		if s.track != nil {
			s.track.Stop()
			s.track = nil
		}
		return true
	}
	if spec, ok := s.loaded[s.musicName]; ok && !s.closed {
		s.music = s.start(spec.Name, Request{Path: s.resolve(spec.Path), Volume: spec.Volume * s.master, Loop: true})
	}
	return false
}

func (s *System) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close stops everything. Further calls are no-ops.
func (s *System) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for name, v := range s.voices {
		v.Stop()
		delete(s.voices, name)
	}
	s.stopMusicLocked()
	if s.track != nil {
		s.track.Stop()
		s.track = nil
	}
	s.cancel()
}

func (s *System) start(name Effect, req Request) Voice {
	v, err := s.backend.Start(s.ctx, req)
	if err != nil {
		s.logger.Warn("sound playback failed", zap.String("effect", string(name)), zap.Error(err))
		return nil
	}
	return v
}

func (s *System) stopMusicLocked() {
	if s.music != nil {
		s.music.Stop()
		s.music = nil
	}
}

func (s *System) resolve(path string) string {
	if s.assetDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.assetDir, path)
}
