package goldmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/floatchat"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type renderer struct {
	width int

	bold      lipgloss.Style
	italic    lipgloss.Style
	heading   lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer(theme floatchat.Theme, width int) *renderer {
	return &renderer{
		width:     width,
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		heading:   lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *renderer) render(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if out := r.block(n, source); out != "" {
			blocks = append(blocks, out)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (r *renderer) wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (r *renderer) block(node ast.Node, source []byte) string {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return r.wrap(r.inline(n, source), r.width)

	case *ast.Heading:
		return r.wrap(r.heading.Render(r.inline(n, source)), r.width)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		// Code keeps its line structure; only the gutter is styled.
		gutter := r.muted.Render("│") + " "
		lines := n.Lines()
		out := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			out = append(out, gutter+strings.TrimRight(string(seg.Value(source)), "\n"))
		}
		return strings.Join(out, "\n")

	case *ast.HTMLBlock:
		// Raw HTML is shown as written.
		lines := n.Lines()
		out := make([]string, 0, lines.Len()+1)
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			out = append(out, strings.TrimRight(string(seg.Value(source)), "\n"))
		}
		if n.HasClosure() {
			out = append(out, strings.TrimRight(string(n.ClosureLine.Value(source)), "\n"))
		}
		return strings.Join(out, "\n")

	case *ast.List:
		return r.list(n, source)

	case *ast.ThematicBreak:
		return r.muted.Render(strings.Repeat("─", min(r.width, 20)))

	default:
		var parts []string
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if out := r.block(c, source); out != "" {
				parts = append(parts, out)
			}
		}
		return strings.Join(parts, "\n")
	}
}

// list renders items with "- " or "n. " markers; continuation lines are
// indented to the marker width. Nested lists are flattened one level deeper.
func (r *renderer) list(node *ast.List, source []byte) string {
	var out []string
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		var body []string
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if nested, ok := ic.(*ast.List); ok {
				body = append(body, indent(r.list(nested, source), "  "))
				continue
			}
			body = append(body, r.inline(ic, source))
		}
		itemWidth := max(r.width-len(marker), 10)
		lines := strings.Split(r.wrap(strings.Join(body, "\n"), itemWidth), "\n")
		for i, line := range lines {
			if i == 0 {
				out = append(out, marker+line)
				continue
			}
			out = append(out, strings.Repeat(" ", len(marker))+line)
		}
	}
	return strings.Join(out, "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) inline(node ast.Node, source []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.writeInline(&b, c, source)
	}
	return b.String()
}

func (r *renderer) writeInline(b *strings.Builder, node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			b.WriteByte('\n')
		case n.SoftLineBreak():
			b.WriteByte(' ')
		}

	case *ast.String:
		b.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inline(n, source)
		if n.Level == 1 {
			b.WriteString(r.italic.Render(inner))
		} else {
			b.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		b.WriteString(r.bold.Render(r.inline(n, source)))

	case *ast.Link:
		b.WriteString(r.underline.Render(r.inline(n, source)))
		b.WriteString(" ")
		b.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		b.WriteString(r.underline.Render(string(n.URL(source))))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(source))
		}

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.writeInline(b, c, source)
		}
	}
}
