package cvf

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
)

// PreviewRequest contains inputs for terminal preview rendering.
type PreviewRequest struct {
	Writer io.Writer
	Resume *Resume
	Theme  Theme
	Width  int
	// Color enables ANSI styling; plain text otherwise.
	Color bool
}

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

func ansiFg(c RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Preview renders the composed résumé as wrapped, optionally ANSI
// styled text. It shares the Section Composer with the file renderers,
// so the preview shows exactly the blocks a generated document would
// contain.
func Preview(req PreviewRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("preview: writer is nil")
	}
	width := req.Width
	if width <= 0 {
		width = 80
	}
	p := previewer{theme: req.Theme, width: width, color: req.Color}
	for _, block := range Compose(req.Resume) {
		p.block(block)
	}
	if _, err := io.WriteString(req.Writer, p.out.String()); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

type previewer struct {
	out   strings.Builder
	theme Theme
	width int
	color bool
}

func (p *previewer) block(b Block) {
	switch b.Kind {
	case BlockGap:
		p.out.WriteByte('\n')
	case BlockDivider:
		p.line(strings.Repeat("─", p.width), ansiFg(p.theme.Secondary))
	case BlockName:
		p.centered(b, ansiBold+ansiFg(p.theme.Primary))
	case BlockLabel, BlockContact:
		p.centered(b, ansiFg(p.theme.Secondary))
	case BlockHeading:
		p.out.WriteByte('\n')
		p.line(b.Text(), ansiBold+ansiFg(p.theme.Accent))
	case BlockTitle:
		p.line(b.Text(), ansiBold+ansiFg(p.theme.Primary))
	case BlockSubtitle:
		p.line(b.Text(), ansiFg(p.theme.Secondary))
	case BlockBullet:
		p.wrapped(b, "  ")
	default:
		p.wrapped(b, "")
	}
}

func (p *previewer) line(text, prefix string) {
	if p.color && prefix != "" {
		p.out.WriteString(prefix)
		p.out.WriteString(text)
		p.out.WriteString(ansiReset)
	} else {
		p.out.WriteString(text)
	}
	p.out.WriteByte('\n')
}

func (p *previewer) centered(b Block, prefix string) {
	text := b.Text()
	if pad := (p.width - utf8.RuneCountInString(text)) / 2; pad > 0 {
		p.out.WriteString(strings.Repeat(" ", pad))
	}
	p.line(p.spanText(b), prefix)
}

// wrapped renders a body-like block at the preview width, indenting
// every wrapped line by the given prefix.
func (p *previewer) wrapped(b Block, indent string) {
	text := wordwrap.String(p.spanText(b), p.width-utf8.RuneCountInString(indent))
	for _, line := range strings.Split(text, "\n") {
		p.out.WriteString(indent)
		p.line(line, ansiFg(p.theme.Primary))
	}
}

// spanText flattens the block's spans, applying inline ANSI styling
// when color is enabled.
func (p *previewer) spanText(b Block) string {
	if !p.color {
		return b.Text()
	}
	var sb strings.Builder
	for _, s := range b.Spans {
		styled := s.Bold || s.Italic || s.Link != ""
		if s.Bold {
			sb.WriteString(ansiBold)
		}
		if s.Italic {
			sb.WriteString(ansiItalic)
		}
		if s.Link != "" {
			sb.WriteString(ansiUnderline)
			sb.WriteString(ansiFg(p.theme.Accent))
		}
		sb.WriteString(s.Text)
		if styled {
			sb.WriteString(ansiReset)
		}
	}
	return sb.String()
}
