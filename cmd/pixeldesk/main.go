package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pixeldesk/internal/audio"
	"github.com/sandeepkv93/pixeldesk/internal/config"
	"github.com/sandeepkv93/pixeldesk/internal/logging"
	"github.com/sandeepkv93/pixeldesk/internal/scheduler"
	"github.com/sandeepkv93/pixeldesk/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	skipBoot   bool
	noSound    bool
	logFile    string
	verbose    bool
	openApps   []string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pixeldesk",
	Short: "pixeldesk - a retro desktop portfolio in your terminal",
	Long: `pixeldesk boots a faux retro operating system in the terminal: desktop
icons, draggable windows, a taskbar and start menu, a canned command
terminal and a lo-fi music player.

Run without arguments to start the desktop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)

		logger, err = logging.New(logging.Options{
			File:    cfg.Logging.File,
			Level:   cfg.Logging.Level,
			Verbose: verbose,
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDesktop(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "pixeldesk.yaml", "Config file (missing file means defaults)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&skipBoot, "skip-boot", false, "Start directly on the desktop")
	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "Disable sound effects and music output")
	rootCmd.Flags().StringSliceVar(&openApps, "open", nil, "Windows to open at start (e.g. about,terminal)")

	rootCmd.AddCommand(termCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("skip-boot") {
		c.Boot.Skip = skipBoot
	}
	if flags.Changed("no-sound") {
		c.Audio.Enabled = !noSound
	}
	if flags.Changed("log-file") {
		c.Logging.File = logFile
	}
	if flags.Changed("open") {
		c.Desktop.InitialOpen = openApps
	}
}

func runDesktop(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	opts, err := update.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	engine := scheduler.NewEngine(cfg.Scheduler.Buffer)
	engine.Start()
	defer engine.Stop()

	sound := newSoundSystem(ctx, cfg.Audio, logger)
	defer sound.Close()

	opts.Scheduler = engine
	opts.Sound = sound
	opts.Logger = logger
	if cfg.Audio.Enabled {
		opts.MusicOutput = sound
	}

	model := update.NewModel(opts)
	defer model.Shutdown()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("pixeldesk failed: %w", err)
	}
	return nil
}

// newSoundSystem picks the exec backend when audio is on and a player is
// installed, and the no-op backend otherwise. Sound problems never stop
// the desktop from starting.
func newSoundSystem(ctx context.Context, ac config.AudioConfig, logger *zap.Logger) *audio.System {
	opts := audio.Options{AssetDir: ac.AssetDir, MasterVolume: &ac.MasterVolume}
	if !ac.Enabled {
		logger.Info("sound disabled")
		return audio.NewSystem(audio.NoopBackend{}, opts, logger)
	}

	var backend audio.Backend = audio.NoopBackend{}
	if exec, err := audio.NewExecBackend(ac.Player); err != nil {
		logger.Warn("no audio player available, sound is silent", zap.Error(err))
	} else {
		backend = exec
	}

	sys := audio.NewSystem(backend, opts, logger)
	if _, err := sys.Load(ctx); err != nil {
		logger.Warn("sound assets not loaded", zap.Error(err))
	}
	return sys
}
