package bubbletea

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/floatchat"
	"github.com/mattn/go-runewidth"
)

// AnimationDuration is how long both presentations stay mounted after a
// toggle.
const AnimationDuration = 300 * time.Millisecond

// Panel geometry. Terminals narrower than CompactWidth get a full-screen
// panel.
const (
	PanelWidth   = 60
	PanelHeight  = 20
	CompactWidth = 70
)

// VisibilityMode says who owns the widget's open/closed value.
type VisibilityMode int

const (
	// SelfOwned: the widget flips its own value on toggle.
	SelfOwned VisibilityMode = iota
	// HostOwned: the widget asks the host to flip the value and waits for
	// the host to supply it through SetOpen.
	HostOwned
)

func (m VisibilityMode) String() string {
	switch m {
	case SelfOwned:
		return "self-owned"
	case HostOwned:
		return "host-owned"
	default:
		return fmt.Sprintf("VisibilityMode(%d)", int(m))
	}
}

var lastWidgetID atomic.Int64

func nextWidgetID() int {
	return int(lastWidgetID.Add(1))
}

// WidgetConfig configures a Widget. Messages and OnSubmit are required.
type WidgetConfig struct {
	Messages []floatchat.Message
	Typing   bool

	// OnSubmit receives the raw input text when the user submits a
	// non-blank message. The returned command is handed to Bubble Tea.
	OnSubmit func(text string) tea.Cmd

	// Open and OnToggle together put the widget in HostOwned mode. If only
	// one of them is set the widget is SelfOwned, unless Strict is set, in
	// which case construction fails with floatchat.ErrPartialControl.
	Open     *bool
	OnToggle func() tea.Cmd
	Strict   bool

	Options floatchat.Options
	// Theme defaults to floatchat.DefaultTheme when zero.
	Theme floatchat.Theme
	// PanelStyle replaces the panel frame style when set.
	PanelStyle *lipgloss.Style
	Keys       *KeyMap
}

// Widget is the floating chat widget: a toggle affordance that expands into a
// panel with a header, a scrolling message list, and an input row.
//
// The widget never mutates the conversation. Submitted text goes to the host
// through OnSubmit, and the host supplies the resulting messages back through
// Sync.
type Widget struct {
	// Input is the input buffer. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable message list. Exported for test access.
	Viewport viewport.Model
	// Spinner animates the typing bubble.
	Spinner spinner.Model

	id       int
	mode     VisibilityMode
	onSubmit func(string) tea.Cmd
	onToggle func() tea.Cmd

	open      bool
	animating bool
	animGen   int

	messages []floatchat.Message
	typing   bool

	opts       floatchat.Options
	theme      floatchat.Theme
	styles     Styles
	panelStyle lipgloss.Style
	keys       KeyMap

	panelWidth  int
	panelHeight int
	fullScreen  bool
}

// NewWidget creates a Widget. The visibility mode is fixed here, from whether
// both halves of the controlled pair were supplied.
func NewWidget(cfg WidgetConfig) (Widget, error) {
	if cfg.OnSubmit == nil {
		return Widget{}, fmt.Errorf("widget: OnSubmit is required: %w", floatchat.ErrValidation)
	}

	mode := SelfOwned
	switch {
	case cfg.Open != nil && cfg.OnToggle != nil:
		mode = HostOwned
	case cfg.Open != nil || cfg.OnToggle != nil:
		if cfg.Strict {
			return Widget{}, fmt.Errorf("widget: %w", floatchat.ErrPartialControl)
		}
	}

	theme := cfg.Theme
	if theme == (floatchat.Theme{}) {
		theme = floatchat.DefaultTheme()
	}
	opts := cfg.Options.WithDefaults()
	theme = opts.ApplyTheme(theme)
	styles := NewStyles(theme)

	panelStyle := styles.Panel
	if cfg.PanelStyle != nil {
		panelStyle = *cfg.PanelStyle
	}
	keys := DefaultKeyMap()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = ""
	ti.CharLimit = 0

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	w := Widget{
		Input:      ti,
		Viewport:   viewport.New(PanelWidth, PanelHeight),
		Spinner:    sp,
		id:         nextWidgetID(),
		mode:       mode,
		onSubmit:   cfg.OnSubmit,
		messages:   cloneMessages(cfg.Messages),
		typing:     cfg.Typing,
		opts:       opts,
		theme:      theme,
		styles:     styles,
		panelStyle: panelStyle,
		keys:       keys,
	}
	if mode == HostOwned {
		w.onToggle = cfg.OnToggle
		w.open = *cfg.Open
	}
	if w.open {
		w.Input.Focus()
	}
	// Until the first WindowSizeMsg, lay out as a floating panel.
	w = w.resize(CompactWidth, PanelHeight)
	w.Viewport.GotoBottom()
	return w, nil
}

// Mode returns the visibility mode chosen at construction.
func (w Widget) Mode() VisibilityMode { return w.mode }

// IsOpen returns the current visibility value.
func (w Widget) IsOpen() bool { return w.open }

// Animating reports whether the animation window is active.
func (w Widget) Animating() bool { return w.animating }

// AffordanceVisible reports whether the toggle affordance is mounted.
func (w Widget) AffordanceVisible() bool { return !w.open || w.animating }

// PanelVisible reports whether the expanded panel is mounted.
func (w Widget) PanelVisible() bool { return w.open || w.animating }

// FullScreen reports whether the panel fills the terminal.
func (w Widget) FullScreen() bool { return w.fullScreen }

// Messages returns the messages the widget currently displays.
func (w Widget) Messages() []floatchat.Message { return cloneMessages(w.messages) }

// Typing returns the typing flag the widget currently displays.
func (w Widget) Typing() bool { return w.typing }

// Init starts the cursor blink when the widget starts open and the spinner
// when it starts typing.
func (w Widget) Init() tea.Cmd {
	var cmds []tea.Cmd
	if w.open {
		cmds = append(cmds, textinput.Blink)
	}
	if w.typing {
		cmds = append(cmds, w.Spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles input, timer, and layout messages.
func (w Widget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return w.resize(msg.Width, msg.Height), nil

	case animationDoneMsg:
		if msg.widget == w.id && msg.gen == w.animGen {
			w.animating = false
		}
		return w, nil

	case spinner.TickMsg:
		if !w.typing {
			return w, nil
		}
		var cmd tea.Cmd
		w.Spinner, cmd = w.Spinner.Update(msg)
		w.Viewport.SetContent(w.renderContent())
		return w, cmd

	case tea.KeyMsg:
		return w.handleKey(msg)

	case tea.MouseMsg:
		if !w.open {
			return w, nil
		}
		var cmd tea.Cmd
		w.Viewport, cmd = w.Viewport.Update(msg)
		return w, cmd
	}

	if !w.open {
		return w, nil
	}
	var cmd tea.Cmd
	w.Input, cmd = w.Input.Update(msg)
	return w, cmd
}

func (w Widget) handleKey(msg tea.KeyMsg) (Widget, tea.Cmd) {
	if key.Matches(msg, w.keys.Toggle) {
		return w.Toggle()
	}

	if !w.open {
		if key.Matches(msg, w.keys.Open) {
			return w.Toggle()
		}
		return w, nil
	}

	switch {
	case key.Matches(msg, w.keys.Close):
		return w.Toggle()
	case key.Matches(msg, w.keys.Submit):
		return w.Submit()
	case key.Matches(msg, w.keys.Scroll):
		var cmd tea.Cmd
		w.Viewport, cmd = w.Viewport.Update(msg)
		return w, cmd
	}

	var cmd tea.Cmd
	w.Input, cmd = w.Input.Update(msg)
	return w, cmd
}

// Toggle flips visibility. A SelfOwned widget flips its own value; a
// HostOwned widget calls OnToggle and keeps its value until SetOpen. Either
// way a new animation window starts and supersedes any pending one.
func (w Widget) Toggle() (Widget, tea.Cmd) {
	var cmd tea.Cmd
	switch w.mode {
	case HostOwned:
		cmd = w.onToggle()
	default:
		w, cmd = w.setOpen(!w.open)
	}

	w.animGen++
	w.animating = true
	return w, tea.Batch(cmd, w.expireAnimation())
}

// SetOpen supplies the host-owned visibility value. It is ignored by
// SelfOwned widgets.
func (w Widget) SetOpen(open bool) (Widget, tea.Cmd) {
	if w.mode != HostOwned {
		return w, nil
	}
	return w.setOpen(open)
}

func (w Widget) setOpen(open bool) (Widget, tea.Cmd) {
	if w.open == open {
		return w, nil
	}
	w.open = open
	if open {
		return w, w.Input.Focus()
	}
	w.Input.Blur()
	return w, nil
}

func (w Widget) expireAnimation() tea.Cmd {
	id, gen := w.id, w.animGen
	return tea.Tick(AnimationDuration, func(time.Time) tea.Msg {
		return animationDoneMsg{widget: id, gen: gen}
	})
}

// Submit forwards the input buffer to OnSubmit and clears it. Blank input is
// a no-op that leaves the buffer untouched.
func (w Widget) Submit() (Widget, tea.Cmd) {
	raw := w.Input.Value()
	if strings.TrimSpace(raw) == "" {
		return w, nil
	}
	cmd := w.onSubmit(raw)
	w.Input.Reset()
	return w, cmd
}

// Sync supplies the host's current messages and typing flag. The list
// scrolls to the newest message only when the message sequence changed.
func (w Widget) Sync(messages []floatchat.Message, typing bool) (Widget, tea.Cmd) {
	changed := !floatchat.SameMessages(w.messages, messages)
	if changed {
		w.messages = cloneMessages(messages)
	}

	var cmd tea.Cmd
	if typing && !w.typing {
		cmd = w.Spinner.Tick
	}
	w.typing = typing

	w.Viewport.SetContent(w.renderContent())
	if changed {
		w.Viewport.GotoBottom()
	}
	return w, cmd
}

func (w Widget) resize(width, height int) Widget {
	w.fullScreen = width < CompactWidth
	if w.fullScreen {
		w.panelWidth, w.panelHeight = width, height
	} else {
		w.panelWidth, w.panelHeight = min(PanelWidth, width), min(PanelHeight, height)
	}

	innerWidth := max(w.panelWidth-w.panelStyle.GetHorizontalFrameSize(), 1)
	w.Viewport.Width = innerWidth
	// Header and input row take one line each.
	w.Viewport.Height = max(w.panelHeight-w.panelStyle.GetVerticalFrameSize()-2, 1)
	w.Input.Width = max(innerWidth-lipgloss.Width(w.sendHint())-2, 1)

	atBottom := w.Viewport.AtBottom()
	w.Viewport.SetContent(w.renderContent())
	if atBottom {
		w.Viewport.GotoBottom()
	}
	return w
}

func (w Widget) renderContent() string {
	width := w.Viewport.Width
	rows := make([]string, 0, len(w.messages)+1)
	for _, msg := range w.messages {
		rows = append(rows, RenderBubble(msg, width, w.theme, w.styles, w.opts.Markdown))
	}
	if w.typing {
		rows = append(rows, RenderTypingBubble(w.Spinner.View(), width, w.styles))
	}
	return strings.Join(rows, "\n\n")
}

// View renders the mounted presentations. While animating, the one being
// left is drawn faint.
func (w Widget) View() string {
	var parts []string
	if w.PanelVisible() {
		panel := w.panelView()
		if !w.open {
			panel = w.styles.Leaving.Render(panel)
		}
		parts = append(parts, panel)
	}
	if w.AffordanceVisible() {
		affordance := w.affordanceView()
		if w.open {
			affordance = w.styles.Leaving.Render(affordance)
		}
		parts = append(parts, affordance)
	}
	return lipgloss.JoinVertical(lipgloss.Right, parts...)
}

func (w Widget) affordanceView() string {
	return w.styles.Affordance.Render(w.opts.Icon + " " + w.opts.OpenLabel)
}

func (w Widget) panelView() string {
	inner := lipgloss.JoinVertical(lipgloss.Left,
		w.headerView(),
		w.Viewport.View(),
		w.inputView(),
	)
	return w.panelStyle.Render(inner)
}

func (w Widget) headerView() string {
	width := w.Viewport.Width
	closeHint := "esc " + w.opts.CloseLabel
	room := width - w.styles.Header.GetHorizontalFrameSize() - lipgloss.Width(closeHint) - 1
	left := w.opts.Icon + " " + w.opts.Title
	if lipgloss.Width(left) > room {
		left = runewidth.Truncate(left, max(room, 1), "…")
	}
	gap := max(width-w.styles.Header.GetHorizontalFrameSize()-lipgloss.Width(left)-lipgloss.Width(closeHint), 1)
	return w.styles.Header.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + closeHint)
}

func (w Widget) sendHint() string {
	return "⏎ " + w.opts.SendLabel
}

func (w Widget) inputView() string {
	field := lipgloss.NewStyle().Width(w.Input.Width + 1).Render(w.Input.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, field, " ", w.styles.SendHint.Render(w.sendHint()))
}

func cloneMessages(msgs []floatchat.Message) []floatchat.Message {
	out := make([]floatchat.Message, len(msgs))
	copy(out, msgs)
	return out
}
