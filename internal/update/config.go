package update

import (
	"fmt"

	"github.com/sandeepkv93/pixeldesk/internal/boot"
	"github.com/sandeepkv93/pixeldesk/internal/config"
	"github.com/sandeepkv93/pixeldesk/internal/music"
	"github.com/sandeepkv93/pixeldesk/internal/registry"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"github.com/sandeepkv93/pixeldesk/internal/terminal"
	"github.com/sandeepkv93/pixeldesk/internal/views"
)

// OptionsFromConfig maps the file and environment settings onto model
// options. Runtime collaborators (scheduler, sound, logger) are left for
// the caller to fill in.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()
	if cfg == nil {
		return opts, nil
	}

	maximizable, err := cfg.MaximizableIDs()
	if err != nil {
		return Options{}, fmt.Errorf("desktop.maximizable: %w", err)
	}
	reg, err := registry.Default().WithMaximizable(maximizable)
	if err != nil {
		return Options{}, fmt.Errorf("desktop.maximizable: %w", err)
	}
	initial, err := cfg.InitialOpenIDs()
	if err != nil {
		return Options{}, fmt.Errorf("desktop.initial_open: %w", err)
	}

	if cfg.Desktop.TaskbarMargin < views.TaskbarHeight {
		return Options{}, fmt.Errorf("desktop.taskbar_margin must be at least the taskbar height %d, got %d", views.TaskbarHeight, cfg.Desktop.TaskbarMargin)
	}
	if style := cfg.Desktop.MarkdownStyle; style != "" && !views.KnownMarkdownStyle(style) {
		return Options{}, fmt.Errorf("desktop.markdown_style: unknown glamour style %q", style)
	}

	opts.Registry = reg
	opts.MarkdownStyle = cfg.Desktop.MarkdownStyle
	opts.InitialOpen = initial
	opts.Bounds = session.Bounds{
		TaskbarMargin: cfg.Desktop.TaskbarMargin,
		NarrowWidth:   cfg.Desktop.NarrowWidth,
	}
	opts.SkipBoot = cfg.Boot.Skip
	opts.BootTimings = boot.Timings{
		Intro: cfg.Boot.Intro(),
		Title: cfg.Boot.Title(),
		Exit:  cfg.Boot.Exit(),
	}
	opts.Music = music.Options{
		Volume:      &cfg.Music.Volume,
		AutoStart:   cfg.Music.AutoStartDelay(),
		NoAutoStart: !cfg.Music.AutoStart,
	}
	opts.Terminal = terminal.Options{
		Prompt:          cfg.Terminal.Prompt,
		HistoryLimit:    cfg.Terminal.HistoryLimit,
		ScrollbackLimit: cfg.Terminal.ScrollbackLimit,
	}
	return opts, nil
}
