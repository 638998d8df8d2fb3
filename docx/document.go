package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"pkt.systems/cvf"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// documentBuilder accumulates the body of word/document.xml and the
// hyperlink targets that word/_rels/document.xml.rels must declare.
type documentBuilder struct {
	theme   cvf.Theme
	page    pageDims
	body    strings.Builder
	links   []string
	linkIDs map[string]string
}

type paraStyle struct {
	size   int // half-points
	bold   bool
	color  cvf.RGB
	before int // twentieths of a point
	after  int
	indent int // twips
}

// styleFor is the fixed per-block-kind style table.
func (d *documentBuilder) styleFor(kind cvf.BlockKind) paraStyle {
	switch kind {
	case cvf.BlockName:
		return paraStyle{size: 48, bold: true, color: d.theme.Primary, after: 80}
	case cvf.BlockLabel:
		return paraStyle{size: 28, color: d.theme.Secondary, after: 160}
	case cvf.BlockContact:
		return paraStyle{size: 20, color: d.theme.Secondary, after: 240}
	case cvf.BlockHeading:
		return paraStyle{size: 24, bold: true, color: d.theme.Accent, before: 240, after: 120}
	case cvf.BlockTitle:
		return paraStyle{size: 22, bold: true, color: d.theme.Primary, after: 40}
	case cvf.BlockSubtitle:
		return paraStyle{size: 20, color: d.theme.Secondary, after: 80}
	case cvf.BlockBullet:
		return paraStyle{size: 20, color: d.theme.Primary, after: 40, indent: 240}
	default:
		return paraStyle{size: 20, color: d.theme.Primary, after: 120}
	}
}

func (d *documentBuilder) block(b cvf.Block) {
	switch b.Kind {
	case cvf.BlockGap:
		// Paragraph space-after already separates entries.
	case cvf.BlockDivider:
		d.divider()
	default:
		d.paragraph(b)
	}
}

// divider closes the header with a bottom-bordered empty paragraph.
func (d *documentBuilder) divider() {
	fmt.Fprintf(&d.body,
		`<w:p><w:pPr><w:pBdr><w:bottom w:val="single" w:sz="8" w:space="4" w:color="%s"/></w:pBdr><w:spacing w:after="160"/></w:pPr></w:p>`,
		d.theme.Secondary.Hex())
}

func (d *documentBuilder) paragraph(b cvf.Block) {
	st := d.styleFor(b.Kind)
	d.body.WriteString("<w:p><w:pPr>")
	switch b.Align {
	case cvf.AlignCenter:
		d.body.WriteString(`<w:jc w:val="center"/>`)
	case cvf.AlignJustify:
		d.body.WriteString(`<w:jc w:val="both"/>`)
	}
	fmt.Fprintf(&d.body, `<w:spacing w:before="%d" w:after="%d"/>`, st.before, st.after)
	if st.indent > 0 {
		fmt.Fprintf(&d.body, `<w:ind w:left="%d"/>`, st.indent)
	}
	d.body.WriteString("</w:pPr>")
	for _, s := range b.Spans {
		if s.Link != "" {
			fmt.Fprintf(&d.body, `<w:hyperlink r:id="%s">`, d.linkID(s.Link))
			d.run(s, st, true)
			d.body.WriteString("</w:hyperlink>")
			continue
		}
		d.run(s, st, false)
	}
	d.body.WriteString("</w:p>")
}

func (d *documentBuilder) run(s cvf.Span, st paraStyle, link bool) {
	color := st.color
	if link {
		color = d.theme.Accent
	}
	d.body.WriteString("<w:r><w:rPr>")
	fmt.Fprintf(&d.body, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, esc(d.theme.FontFamily), esc(d.theme.FontFamily))
	if st.bold || s.Bold {
		d.body.WriteString("<w:b/>")
	}
	if s.Italic {
		d.body.WriteString("<w:i/>")
	}
	if link {
		d.body.WriteString(`<w:u w:val="single"/>`)
	}
	fmt.Fprintf(&d.body, `<w:color w:val="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/>`, color.Hex(), st.size, st.size)
	d.body.WriteString("</w:rPr>")
	fmt.Fprintf(&d.body, `<w:t xml:space="preserve">%s</w:t>`, esc(s.Text))
	d.body.WriteString("</w:r>")
}

// linkID registers a hyperlink target and returns its relationship id,
// reusing the id of an already-registered target. rId1 is reserved for
// the styles part.
func (d *documentBuilder) linkID(target string) string {
	if id, ok := d.linkIDs[target]; ok {
		return id
	}
	if d.linkIDs == nil {
		d.linkIDs = make(map[string]string)
	}
	d.links = append(d.links, target)
	id := fmt.Sprintf("rId%d", len(d.links)+1)
	d.linkIDs[target] = id
	return id
}

func (d *documentBuilder) documentXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`)
	b.WriteString(d.body.String())
	fmt.Fprintf(&b,
		`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="720" w:right="1080" w:bottom="720" w:left="1080" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`,
		d.page.width, d.page.height)
	b.WriteString("</w:body></w:document>")
	return b.String()
}

func (d *documentBuilder) relsXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for i, target := range d.links {
		fmt.Fprintf(&b,
			`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="%s" TargetMode="External"/>`,
			i+2, esc(target))
	}
	b.WriteString("</Relationships>")
	return b.String()
}

func stylesXML(theme cvf.Theme) string {
	font := esc(theme.FontFamily)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="` + font + `" w:hAnsi="` + font + `"/><w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style></w:styles>`
}

// esc escapes text for inclusion in XML character data or attribute
// values.
func esc(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s)) // never fails on a bytes.Buffer
	return b.String()
}
