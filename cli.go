package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"ebiten-screenfit/config"
)

// options holds command-line overrides for the settings file
type options struct {
	configPath string
	verbose    bool
	fullscreen bool
	width      int
	height     int
	safeTop    float64
	safeBottom float64
}

// newLogger creates a logger with timestamp formatting
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() if none is set
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "screenfit",
		Short:        "Responsive screen alignment demo for Ebitengine",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				logger.Error("invalid settings", "err", err)
				return err
			}
			if !opts.verbose {
				if level, err := log.ParseLevel(settings.Log.Level); err == nil {
					logger.SetLevel(level)
				} else {
					logger.Warn("unknown log level, keeping info", "level", settings.Log.Level)
				}
			}

			return run(settings, logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	bindFlags(cmd, opts)

	return cmd
}

// bindFlags registers the settings overrides on cmd
func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML settings file")
	flags.BoolVar(&opts.fullscreen, "fullscreen", false, "start in fullscreen mode")
	flags.IntVar(&opts.width, "width", config.WindowWidth, "window width in logical pixels")
	flags.IntVar(&opts.height, "height", config.WindowHeight, "window height in logical pixels")
	flags.Float64Var(&opts.safeTop, "safe-top", 0, "top safe-area inset in device-independent pixels")
	flags.Float64Var(&opts.safeBottom, "safe-bottom", 0, "bottom safe-area inset in device-independent pixels")
}

// resolveSettings loads the settings file and applies flags the user set
func resolveSettings(cmd *cobra.Command, opts *options) (config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fullscreen") {
		settings.Window.Fullscreen = opts.fullscreen
	}
	if flags.Changed("width") {
		settings.Window.Width = opts.width
	}
	if flags.Changed("height") {
		settings.Window.Height = opts.height
	}
	if flags.Changed("safe-top") {
		settings.SafeArea.Top = opts.safeTop
	}
	if flags.Changed("safe-bottom") {
		settings.SafeArea.Bottom = opts.safeBottom
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("flags: %w", err)
	}
	return settings, nil
}

// run opens the window and blocks until the game exits
func run(settings config.Settings, logger *log.Logger) error {
	game := NewGame(settings, logger)
	defer game.Close()

	ebiten.SetWindowSize(settings.GetWindowSize())
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}
