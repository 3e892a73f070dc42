package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/floatchat"
	bt "github.com/fwojciec/floatchat/bubbletea"
	"github.com/fwojciec/floatchat/config"
	"github.com/fwojciec/floatchat/echo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns the settings it
// would run with.
func execute(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var got config.Config
	cmd := newRootCmd(func(_ context.Context, cfg config.Config) error {
		got = cfg
		return nil
	})
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, err
}

func TestRootCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := execute(t)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("flags override file and environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "floatchat.toml")
		require.NoError(t, os.WriteFile(path, []byte("title = \"File\"\nplaceholder = \"From file\"\n"), 0o600))
		t.Setenv("FLOATCHAT_TITLE", "Env")

		cfg, err := execute(t,
			"--config", path,
			"--title", "Flag",
			"--delay", "50ms",
			"--controlled",
			"--fail-every", "2",
			"--theme-color", "3",
		)
		require.NoError(t, err)

		assert.Equal(t, "Flag", cfg.Title)
		assert.Equal(t, "From file", cfg.Placeholder)
		assert.Equal(t, 50*time.Millisecond, cfg.Delay)
		assert.True(t, cfg.Controlled)
		assert.Equal(t, 2, cfg.FailEvery)
		require.NotNil(t, cfg.ThemeColor)
		assert.Equal(t, 3, *cfg.ThemeColor)
	})

	t.Run("unset flags keep environment values", func(t *testing.T) {
		t.Setenv("FLOATCHAT_DELAY", "2s")
		cfg, err := execute(t, "--title", "Flag")
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.Delay)
	})

	t.Run("zero delay is accepted", func(t *testing.T) {
		cfg, err := execute(t, "--delay", "0")
		require.NoError(t, err)
		assert.Zero(t, cfg.Delay)
	})

	t.Run("markdown and icon flags", func(t *testing.T) {
		cfg, err := execute(t, "--markdown", "--icon", "*")
		require.NoError(t, err)
		assert.True(t, cfg.Markdown)
		assert.Equal(t, "*", cfg.Icon)
		assert.True(t, cfg.Options().Markdown)
	})

	t.Run("missing --config file is an error", func(t *testing.T) {
		_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid flag values are rejected", func(t *testing.T) {
		_, err := execute(t, "--fail-every", "-1")
		assert.ErrorIs(t, err, floatchat.ErrValidation)
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		_, err := execute(t, "extra")
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("disabled without a path", func(t *testing.T) {
		t.Parallel()
		logger, closer, err := newLogger("", "")
		require.NoError(t, err)
		assert.NoError(t, closer.Close())
		assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	})

	t.Run("writes JSON to the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "floatchat.log")
		logger, closer, err := newLogger(path, "debug")
		require.NoError(t, err)

		logger.Debug().Str("turn", "1").Msg("submit")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"submit"`)
		assert.Contains(t, string(data), `"level":"debug"`)
	})

	t.Run("level filters events", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "floatchat.log")
		logger, closer, err := newLogger(path, "warn")
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()
		_, _, err := newLogger(filepath.Join(t.TempDir(), "x.log"), "loud")
		assert.Error(t, err)
	})
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	t.Run("uses settings", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.Controlled = true
		cfg.Delay = 0

		page, err := newPage(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)

		assert.Equal(t, bt.HostOwned, page.Widget.Mode())
		msgs := page.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, floatchat.GreetingText, msgs[0].Content)
		assert.NotEmpty(t, msgs[0].ID)
	})

	t.Run("replies with the echo template", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.Delay = time.Millisecond

		page, err := newPage(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)

		model, cmd := page.Update(bt.SubmitMsg{Text: "Hi"})
		page = model.(bt.Page)
		require.NotNil(t, cmd)

		batch, ok := cmd().(tea.BatchMsg)
		require.True(t, ok, "typing tick and reply are batched")
		var reply tea.Msg
		for _, c := range batch {
			if msg, ok := c().(bt.ReplyMsg); ok {
				reply = msg
			}
		}
		require.NotNil(t, reply)
		model, _ = page.Update(reply)
		page = model.(bt.Page)
		assert.Equal(t, echo.Format("Hi"), page.Messages()[2].Content)
	})
}
