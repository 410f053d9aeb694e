package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override, e.g. PIXELDESK_BOOT_SKIP.
const EnvPrefix = "PIXELDESK"

// Config holds all pixeldesk settings.
type Config struct {
	Desktop   DesktopConfig   `yaml:"desktop"`
	Boot      BootConfig      `yaml:"boot"`
	Audio     AudioConfig     `yaml:"audio"`
	Music     MusicConfig     `yaml:"music"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type DesktopConfig struct {
	TaskbarMargin int      `yaml:"taskbar_margin" split_words:"true"`
	NarrowWidth   int      `yaml:"narrow_width" split_words:"true"`
	Maximizable   []string `yaml:"maximizable" split_words:"true"`
	InitialOpen   []string `yaml:"initial_open" split_words:"true"`
	MarkdownStyle string   `yaml:"markdown_style" split_words:"true"`
}

type BootConfig struct {
	Skip        bool `yaml:"skip" split_words:"true"`
	IntroMillis int  `yaml:"intro_ms" split_words:"true"`
	TitleMillis int  `yaml:"title_ms" split_words:"true"`
	ExitMillis  int  `yaml:"exit_ms" split_words:"true"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" split_words:"true"`
	AssetDir     string  `yaml:"asset_dir" split_words:"true"`
	MasterVolume float64 `yaml:"master_volume" split_words:"true"`
	// Player is ffplay, paplay or afplay. Empty picks whichever is installed.
	Player string `yaml:"player" split_words:"true"`
}

type MusicConfig struct {
	AutoStart        bool    `yaml:"auto_start" split_words:"true"`
	AutoStartSeconds int     `yaml:"auto_start_seconds" split_words:"true"`
	Volume           float64 `yaml:"volume" split_words:"true"`
}

type TerminalConfig struct {
	Prompt          string `yaml:"prompt" split_words:"true"`
	HistoryLimit    int    `yaml:"history_limit" split_words:"true"`
	ScrollbackLimit int    `yaml:"scrollback_limit" split_words:"true"`
}

type SchedulerConfig struct {
	Buffer int `yaml:"buffer" split_words:"true"`
}

type LoggingConfig struct {
	// File receives JSON logs. Empty disables logging, since stdout
	// belongs to the TUI.
	File  string `yaml:"file" split_words:"true"`
	Level string `yaml:"level" split_words:"true"`
}

func DefaultConfig() *Config {
	return &Config{
		Desktop: DesktopConfig{
			TaskbarMargin: 1,
			NarrowWidth:   80,
			Maximizable:   []string{string(registry.AppProjects), string(registry.AppTerminal)},
			MarkdownStyle: "dark",
		},
		Boot: BootConfig{
			IntroMillis: 2600,
			TitleMillis: 4200,
			ExitMillis:  450,
		},
		Audio: AudioConfig{
			Enabled:      true,
			AssetDir:     "public",
			MasterVolume: 0.8,
		},
		Music: MusicConfig{
			AutoStart:        true,
			AutoStartSeconds: 10,
			Volume:           0.6,
		},
		Terminal: TerminalConfig{
			Prompt:          "eren@portfolio:~$ ",
			HistoryLimit:    100,
			ScrollbackLimit: 500,
		},
		Scheduler: SchedulerConfig{Buffer: 64},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays PIXELDESK_* variables. Unset variables leave the
// current value alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}
	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Desktop.TaskbarMargin < 0 {
		return fmt.Errorf("desktop.taskbar_margin must be >= 0, got %d", c.Desktop.TaskbarMargin)
	}
	if c.Desktop.NarrowWidth < 0 {
		return fmt.Errorf("desktop.narrow_width must be >= 0, got %d", c.Desktop.NarrowWidth)
	}
	if _, err := c.MaximizableIDs(); err != nil {
		return fmt.Errorf("desktop.maximizable: %w", err)
	}
	if _, err := c.InitialOpenIDs(); err != nil {
		return fmt.Errorf("desktop.initial_open: %w", err)
	}
	if c.Boot.IntroMillis < 0 || c.Boot.TitleMillis < 0 || c.Boot.ExitMillis < 0 {
		return errors.New("boot stage durations must be >= 0")
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume must be within [0,1], got %v", c.Audio.MasterVolume)
	}
	if c.Music.Volume < 0 || c.Music.Volume > 1 {
		return fmt.Errorf("music.volume must be within [0,1], got %v", c.Music.Volume)
	}
	if c.Scheduler.Buffer <= 0 {
		return fmt.Errorf("scheduler.buffer must be > 0, got %d", c.Scheduler.Buffer)
	}
	return nil
}

func (c *Config) MaximizableIDs() ([]registry.AppID, error) { return parseIDs(c.Desktop.Maximizable) }
func (c *Config) InitialOpenIDs() ([]registry.AppID, error) { return parseIDs(c.Desktop.InitialOpen) }

func (b BootConfig) Intro() time.Duration { return time.Duration(b.IntroMillis) * time.Millisecond }
func (b BootConfig) Title() time.Duration { return time.Duration(b.TitleMillis) * time.Millisecond }
func (b BootConfig) Exit() time.Duration  { return time.Duration(b.ExitMillis) * time.Millisecond }

func (m MusicConfig) AutoStartDelay() time.Duration {
	return time.Duration(m.AutoStartSeconds) * time.Second
}

func parseIDs(raw []string) ([]registry.AppID, error) {
	ids := make([]registry.AppID, 0, len(raw))
	for _, r := range raw {
		id, err := registry.ParseAppID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
