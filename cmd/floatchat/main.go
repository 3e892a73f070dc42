// Command floatchat runs the floating chat widget demo in the terminal.
//
// Usage:
//
//	floatchat [flags]
//
// Settings are read from the TOML file named by --config, then from
// FLOATCHAT_* environment variables, then from flags. Press ctrl+o to open
// the chat and ctrl+c to quit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fwojciec/floatchat"
	bt "github.com/fwojciec/floatchat/bubbletea"
	"github.com/fwojciec/floatchat/config"
	"github.com/fwojciec/floatchat/echo"
	"github.com/fwojciec/floatchat/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "floatchat: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	title       string
	placeholder string
	icon        string
	themeColor  int
	markdown    bool
	delay       time.Duration
	controlled  bool
	failEvery   int
	logFile     string
	logLevel    string
}

// newRootCmd builds the root command. run receives the resolved settings.
func newRootCmd(run func(context.Context, config.Config) error) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "floatchat",
		Short:         "Floating chat widget demo",
		Long:          "floatchat shows a page with a floating chat widget whose bot echoes your messages.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to a TOML config file (default: floatchat/config.toml in the user config directory)")
	fl.StringVar(&f.title, "title", "", "chat header title")
	fl.StringVar(&f.placeholder, "placeholder", "", "input placeholder text")
	fl.StringVar(&f.icon, "icon", "", "chat icon")
	fl.BoolVar(&f.markdown, "markdown", false, "render bot messages as markdown")
	fl.IntVar(&f.themeColor, "theme-color", 0, "ANSI color index for the widget's primary color")
	fl.DurationVar(&f.delay, "delay", echo.DefaultDelay, "mock reply delay; 0 replies immediately")
	fl.BoolVar(&f.controlled, "controlled", false, "let the page own the widget's open state")
	fl.IntVar(&f.failEvery, "fail-every", 0, "make every Nth reply fail (0 disables)")
	fl.StringVar(&f.logFile, "log-file", "", "write JSON logs to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

// resolveConfig loads the file and environment settings and applies the
// flags the user set explicitly. A --config file must exist; the default
// file may be absent.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	changed := cmd.Flags().Changed

	load := config.LoadDefault
	if changed("config") {
		load = func() (config.Config, error) { return config.Load(f.configPath) }
	}
	cfg, err := load()
	if err != nil {
		return config.Config{}, err
	}

	if changed("title") {
		cfg.Title = f.title
	}
	if changed("placeholder") {
		cfg.Placeholder = f.placeholder
	}
	if changed("icon") {
		cfg.Icon = f.icon
	}
	if changed("markdown") {
		cfg.Markdown = f.markdown
	}
	if changed("theme-color") {
		color := f.themeColor
		cfg.ThemeColor = &color
	}
	if changed("delay") {
		cfg.Delay = f.delay
	}
	if changed("controlled") {
		cfg.Controlled = f.controlled
	}
	if changed("fail-every") {
		cfg.FailEvery = f.failEvery
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	logger, closer, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	page, err := newPage(ctx, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Bool("controlled", cfg.Controlled).
		Dur("delay", cfg.Delay).
		Int("fail_every", cfg.FailEvery).
		Msg("starting")
	if err := bt.Run(ctx, page); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	logger.Info().Msg("exited")
	return nil
}

func newPage(ctx context.Context, cfg config.Config, logger zerolog.Logger) (bt.Page, error) {
	responder := echo.New(cfg.Delay)
	responder.FailEvery = cfg.FailEvery

	return bt.NewPage(bt.PageConfig{
		Responder:      responder,
		NewID:          uuid.NewID,
		Options:        cfg.Options(),
		Theme:          floatchat.DefaultTheme(),
		HostVisibility: cfg.Controlled,
		Context:        ctx,
		Logger:         &logger,
	})
}

// newLogger returns a JSON file logger, or a disabled logger when path is
// empty. The TUI owns stdout, so logs never go to the terminal.
func newLogger(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("log level: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f, nil
}
