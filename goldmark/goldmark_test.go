package goldmark_test

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/floatchat"
	"github.com/fwojciec/floatchat/goldmark"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Force ANSI output so styled spans produce escape codes.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := floatchat.DefaultTheme()

	t.Run("blank input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goldmark.Render("", 40, theme))
		assert.Equal(t, "", goldmark.Render("   ", 40, theme))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("Hello! How can I assist you today?", 40, theme))
		assert.Equal(t, "Hello! How can I assist you today?", strings.TrimRight(out, " "))
	})

	t.Run("quoted echo keeps its quotes", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render(`You said: "Hi". This is a mock response.`, 80, theme))
		assert.Contains(t, out, `You said: "Hi". This is a mock response.`)
	})

	t.Run("bold is styled and markers removed", func(t *testing.T) {
		t.Parallel()
		out := goldmark.Render("a **strong** word", 40, theme)
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, ansi.Strip(out), "a strong word")
		assert.NotContains(t, out, "**")
	})

	t.Run("code span drops backticks", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("run `make`", 40, theme))
		assert.Contains(t, out, "run make")
	})

	t.Run("link shows destination", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("[docs](https://example.com)", 60, theme))
		assert.Contains(t, out, "docs (https://example.com)")
	})

	t.Run("wraps to width", func(t *testing.T) {
		t.Parallel()
		out := goldmark.Render("short words that keep going and going beyond the width easily", 20, theme)
		lines := strings.Split(out, "\n")
		assert.Greater(t, len(lines), 1)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), 20, "line too wide: %q", line)
		}
		assert.Contains(t, ansi.Strip(out), "easily")
	})

	t.Run("paragraphs separated by blank line", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("first\n\nsecond", 40, theme))
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, "", strings.TrimSpace(lines[1]))
	})

	t.Run("unordered list markers", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("- one\n- two", 40, theme))
		assert.Contains(t, out, "- one")
		assert.Contains(t, out, "- two")
	})

	t.Run("ordered list numbering honours start", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("3. three\n4. four", 40, theme))
		assert.Contains(t, out, "3. three")
		assert.Contains(t, out, "4. four")
	})

	t.Run("fenced code keeps lines with gutter", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("```\nline one\nline two\n```", 40, theme))
		assert.Contains(t, out, "│ line one")
		assert.Contains(t, out, "│ line two")
	})

	t.Run("html block is shown verbatim", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("<div>hello</div>", 40, theme))
		assert.Contains(t, out, "<div>hello</div>")
	})

	t.Run("html block with closure keeps every line", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("<!--\nnote\n-->", 40, theme))
		assert.Contains(t, out, "<!--")
		assert.Contains(t, out, "note")
		assert.Contains(t, out, "-->")
	})

	t.Run("non-positive width uses fallback", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(goldmark.Render("hello", 0, theme))
		assert.Contains(t, out, "hello")
	})
}
