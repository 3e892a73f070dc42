package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/floatchat"
	"github.com/rs/zerolog"
)

// Default page copy.
const (
	DefaultHeadline = "Welcome to my project"
	DefaultSubline  = "Where I am showcasing a chat bot package"
)

// Demo widget settings used by the page for options left empty.
const (
	DefaultPageTitle       = "Customer Support"
	DefaultPagePlaceholder = "Ask a question..."
	DefaultPageIcon        = "🎧"
	// DefaultPageThemeColor is orange in the 256-color palette.
	DefaultPageThemeColor = 208
)

// PageConfig configures a Page. Responder and NewID are required.
type PageConfig struct {
	Responder floatchat.Responder
	NewID     func() string

	Options floatchat.Options
	Theme   floatchat.Theme

	// HostVisibility makes the page own the widget's open/closed value
	// instead of the widget.
	HostVisibility bool

	Headline string
	Subline  string

	// Context is passed to the responder. Defaults to context.Background.
	// Replies in flight are not cancelled when the widget closes.
	Context context.Context
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
}

var _ tea.Model = Page{}

// Page is the demo host: a full-screen page with a welcome banner and the
// floating chat widget in the bottom-right corner. The page owns the
// conversation and computes bot replies.
type Page struct {
	// Widget is the embedded chat widget. Exported for test access.
	Widget Widget

	conv      *floatchat.Conversation
	responder floatchat.Responder
	ctx       context.Context
	log       zerolog.Logger

	hostVisibility bool
	open           bool

	headline string
	subline  string
	styles   Styles

	width  int
	height int
}

// NewPage creates a Page whose conversation starts with the greeting.
func NewPage(cfg PageConfig) (Page, error) {
	if cfg.Responder == nil {
		return Page{}, fmt.Errorf("page: Responder is required: %w", floatchat.ErrValidation)
	}
	if cfg.NewID == nil {
		return Page{}, fmt.Errorf("page: NewID is required: %w", floatchat.ErrValidation)
	}

	p := Page{
		conv:           floatchat.NewConversation(cfg.NewID, floatchat.NewBotMessage(cfg.NewID(), floatchat.GreetingText)),
		responder:      cfg.Responder,
		ctx:            cfg.Context,
		log:            zerolog.Nop(),
		hostVisibility: cfg.HostVisibility,
		headline:       cfg.Headline,
		subline:        cfg.Subline,
	}
	if cfg.Logger != nil {
		p.log = *cfg.Logger
	}
	if p.ctx == nil {
		p.ctx = context.Background()
	}
	if p.headline == "" {
		p.headline = DefaultHeadline
	}
	if p.subline == "" {
		p.subline = DefaultSubline
	}

	wcfg := WidgetConfig{
		Messages: p.conv.Messages(),
		Typing:   p.conv.Typing(),
		OnSubmit: func(text string) tea.Cmd {
			return func() tea.Msg { return SubmitMsg{Text: text} }
		},
		Options: pageOptions(cfg.Options),
		Theme:   cfg.Theme,
	}
	if p.hostVisibility {
		closed := false
		wcfg.Open = &closed
		wcfg.OnToggle = func() tea.Cmd {
			return func() tea.Msg { return ToggleRequestMsg{} }
		}
	}
	w, err := NewWidget(wcfg)
	if err != nil {
		return Page{}, fmt.Errorf("page: %w", err)
	}
	p.Widget = w
	p.styles = w.styles
	return p, nil
}

// pageOptions fills empty options with the demo page's settings.
func pageOptions(o floatchat.Options) floatchat.Options {
	if o.Title == "" {
		o.Title = DefaultPageTitle
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPagePlaceholder
	}
	if o.Icon == "" {
		o.Icon = DefaultPageIcon
	}
	if o.ThemeColor == nil {
		color := DefaultPageThemeColor
		o.ThemeColor = &color
	}
	return o
}

// Messages returns the conversation's messages.
func (p Page) Messages() []floatchat.Message { return p.conv.Messages() }

// Typing reports whether a reply is pending.
func (p Page) Typing() bool { return p.conv.Typing() }

// Init implements tea.Model.
func (p Page) Init() tea.Cmd {
	return p.Widget.Init()
}

// Update implements tea.Model.
func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}

	case SubmitMsg:
		return p.submit(msg.Text)

	case ReplyMsg:
		return p.resolve(msg)

	case ToggleRequestMsg:
		if !p.hostVisibility {
			return p, nil
		}
		p.open = !p.open
		p.log.Debug().Bool("open", p.open).Msg("toggle")
		var cmd tea.Cmd
		p.Widget, cmd = p.Widget.SetOpen(p.open)
		return p, cmd
	}

	var cmd tea.Cmd
	p.Widget, cmd = p.Widget.Update(msg)
	return p, cmd
}

// submit appends the user message and schedules the reply. The user message
// and typing flag reach the widget before the reply computation starts.
func (p Page) submit(text string) (tea.Model, tea.Cmd) {
	turn, msg := p.conv.Submit(text)
	p.log.Debug().Int("turn", turn.ID).Str("id", msg.ID).Msg("submit")

	var syncCmd tea.Cmd
	p.Widget, syncCmd = p.Widget.Sync(p.conv.Messages(), p.conv.Typing())
	return p, tea.Batch(syncCmd, requestReply(p.ctx, p.responder, turn))
}

func (p Page) resolve(msg ReplyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		p.log.Error().Err(msg.Err).Int("turn", msg.Turn.ID).Msg("reply failed")
	}
	reply, err := p.conv.Resolve(msg.Turn, msg.Reply, msg.Err)
	if err != nil {
		p.log.Warn().Err(err).Msg("discarding reply")
		return p, nil
	}
	p.log.Debug().Int("turn", msg.Turn.ID).Str("id", reply.ID).Msg("reply")

	var cmd tea.Cmd
	p.Widget, cmd = p.Widget.Sync(p.conv.Messages(), p.conv.Typing())
	return p, cmd
}

// requestReply computes the reply off the event loop. A panicking responder
// counts as a failed reply.
func requestReply(ctx context.Context, r floatchat.Responder, turn floatchat.Turn) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if v := recover(); v != nil {
				msg = ReplyMsg{Turn: turn, Err: fmt.Errorf("responder panic: %v", v)}
			}
		}()
		reply, err := r.Reply(ctx, turn.Text)
		return ReplyMsg{Turn: turn, Reply: reply, Err: err}
	}
}

// View implements tea.Model.
func (p Page) View() string {
	widget := p.Widget.View()
	if p.width == 0 || p.height == 0 {
		return widget
	}
	if !p.Widget.FullScreen() {
		widget = lipgloss.NewStyle().MarginRight(2).Render(widget)
	}

	bannerHeight := p.height - lipgloss.Height(widget)
	placed := lipgloss.PlaceHorizontal(p.width, lipgloss.Right, widget)
	if bannerHeight <= 0 {
		return placed
	}
	banner := lipgloss.JoinVertical(lipgloss.Center,
		p.styles.Headline.Render(p.headline),
		p.subline,
	)
	top := lipgloss.Place(p.width, bannerHeight, lipgloss.Center, lipgloss.Center, banner)
	return lipgloss.JoinVertical(lipgloss.Left, top, placed)
}
