// Package pdf renders a composed résumé to a PDF document.
//
// The package is a thin adapter: all section and omission logic lives
// in the shared composer (pkt.systems/cvf); this package only maps
// each styled block to gofpdf paragraph output through a fixed
// per-kind style table.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/cvf"
)

// Page margins per the layout contract: 0.5in top/bottom, 0.75in
// left/right, in points.
const (
	marginX = 54
	marginY = 36
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Writer io.Writer
	Resume *cvf.Resume
	Theme  cvf.Theme
	Config Config
}

// creationDate is fixed so the output does not depend on the wall
// clock. Object numbering still follows the library's font dictionary
// order, so reruns are content-equal rather than byte-equal.
var creationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Render writes the résumé as a PDF to req.Writer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	if req.Resume == nil {
		return fmt.Errorf("pdf render: resume is nil")
	}
	size, err := pageSize(req.Config.PageSize)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}

	doc := gofpdf.New("P", "pt", size, "")
	doc.SetCreationDate(creationDate)
	doc.SetModificationDate(creationDate)
	if req.Resume.Basics != nil && req.Resume.Basics.Name != "" {
		doc.SetTitle(req.Resume.Basics.Name, true)
	}
	doc.SetMargins(marginX, marginY, marginX)
	doc.SetAutoPageBreak(true, marginY)

	family, unicode := registerFonts(doc, req.Theme.PDFFont, req.Config.CoreFontsOnly)
	translate := func(s string) string { return s }
	if !unicode {
		translate = doc.UnicodeTranslatorFromDescriptor("")
	}
	doc.AddPage()
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: font setup failed: %w", err)
	}

	r := renderer{doc: doc, theme: req.Theme, family: family, tr: translate}
	for _, block := range cvf.Compose(req.Resume) {
		r.block(block)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// Generate renders the résumé to a file, creating the parent
// directory if needed. The document is assembled fully in memory, so a
// failing render leaves no partial file at the target path.
func Generate(path string, resume *cvf.Resume, theme cvf.Theme, cfg Config) error {
	var buf bytes.Buffer
	if err := Render(RenderRequest{Writer: &buf, Resume: resume, Theme: theme, Config: cfg}); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pdf render: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return nil
}

func pageSize(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "letter":
		return "Letter", nil
	case "a4":
		return "A4", nil
	default:
		return "", fmt.Errorf("unknown page size %q", name)
	}
}

type blockStyle struct {
	size   float64
	lineH  float64
	bold   bool
	color  cvf.RGB
	before float64
	after  float64
	indent float64
}

type renderer struct {
	doc    *gofpdf.Fpdf
	theme  cvf.Theme
	family string
	tr     func(string) string
}

// styleFor is the fixed per-block-kind style table.
func (r *renderer) styleFor(kind cvf.BlockKind) blockStyle {
	switch kind {
	case cvf.BlockName:
		return blockStyle{size: 24, lineH: 28, bold: true, color: r.theme.Primary, after: 4}
	case cvf.BlockLabel:
		return blockStyle{size: 14, lineH: 16, color: r.theme.Secondary, after: 8}
	case cvf.BlockContact:
		return blockStyle{size: 10, lineH: 12, color: r.theme.Secondary, after: 12}
	case cvf.BlockHeading:
		return blockStyle{size: 12, lineH: 14, bold: true, color: r.theme.Accent, before: 12, after: 6}
	case cvf.BlockTitle:
		return blockStyle{size: 11, lineH: 13, bold: true, color: r.theme.Primary, after: 2}
	case cvf.BlockSubtitle:
		return blockStyle{size: 10, lineH: 12, color: r.theme.Secondary, after: 4}
	case cvf.BlockBullet:
		return blockStyle{size: 10, lineH: 12, color: r.theme.Primary, after: 2, indent: 12}
	default:
		return blockStyle{size: 10, lineH: 12, color: r.theme.Primary, after: 6}
	}
}

func (r *renderer) block(b cvf.Block) {
	switch b.Kind {
	case cvf.BlockGap:
		r.doc.Ln(6)
	case cvf.BlockDivider:
		r.divider()
	default:
		r.paragraph(b)
	}
}

// divider draws the horizontal rule that closes the header.
func (r *renderer) divider() {
	y := r.doc.GetY() + 8
	pageW, _ := r.doc.GetPageSize()
	r.doc.SetDrawColor(r.theme.Secondary.R, r.theme.Secondary.G, r.theme.Secondary.B)
	r.doc.SetLineWidth(1)
	r.doc.Line(marginX, y, pageW-marginX, y)
	r.doc.SetY(y + 8)
}

func (r *renderer) paragraph(b cvf.Block) {
	st := r.styleFor(b.Kind)
	if st.before > 0 {
		r.doc.Ln(st.before)
	}
	if spanStyled(b) {
		r.spanLine(b, st)
	} else {
		r.textCell(b, st)
	}
	if st.after > 0 {
		r.doc.Ln(st.after)
	}
}

// spanStyled reports whether the block needs per-span font handling.
func spanStyled(b cvf.Block) bool {
	if len(b.Spans) > 1 {
		return true
	}
	for _, s := range b.Spans {
		if s.Bold || s.Italic || s.Link != "" {
			return true
		}
	}
	return false
}

// textCell renders a plain block as a wrapped cell with the block's
// alignment.
func (r *renderer) textCell(b cvf.Block, st blockStyle) {
	align := "L"
	switch b.Align {
	case cvf.AlignCenter:
		align = "C"
	case cvf.AlignJustify:
		align = "J"
	}
	r.applyStyle(st, cvf.Span{})
	if st.indent > 0 {
		r.doc.SetLeftMargin(marginX + st.indent)
		defer r.doc.SetLeftMargin(marginX)
	}
	r.doc.MultiCell(0, st.lineH, r.tr(b.Text()), "", align, false)
}

// spanLine renders a block span by span, switching font style and
// color per span and attaching link regions in the accent color.
func (r *renderer) spanLine(b cvf.Block, st blockStyle) {
	if b.Align == cvf.AlignCenter {
		r.centerSpans(b, st)
	}
	for _, s := range b.Spans {
		r.writeSpan(s, st)
	}
	r.doc.Ln(st.lineH)
}

// centerSpans positions the cursor so a one-line span sequence comes
// out centered; oversized lines flow from the left margin instead.
func (r *renderer) centerSpans(b cvf.Block, st blockStyle) {
	var total float64
	for _, s := range b.Spans {
		r.applyStyle(st, s)
		total += r.doc.GetStringWidth(r.tr(s.Text))
	}
	pageW, _ := r.doc.GetPageSize()
	content := pageW - 2*marginX
	if total < content {
		r.doc.SetX(marginX + (content-total)/2)
	}
}

func (r *renderer) writeSpan(s cvf.Span, st blockStyle) {
	r.applyStyle(st, s)
	if s.Link != "" {
		r.doc.WriteLinkString(st.lineH, r.tr(s.Text), s.Link)
		return
	}
	r.doc.Write(st.lineH, r.tr(s.Text))
}

func (r *renderer) applyStyle(st blockStyle, s cvf.Span) {
	var style strings.Builder
	if st.bold || s.Bold {
		style.WriteByte('B')
	}
	if s.Italic {
		style.WriteByte('I')
	}
	color := st.color
	if s.Link != "" {
		style.WriteByte('U')
		color = r.theme.Accent
	}
	r.doc.SetFont(r.family, style.String(), st.size)
	r.doc.SetTextColor(color.R, color.G, color.B)
}
