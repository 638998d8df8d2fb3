package cvf

// BlockKind classifies a styled block. Renderers map each kind to a
// paragraph construct through their own style tables.
type BlockKind uint8

const (
	// BlockName is the résumé holder's name.
	BlockName BlockKind = iota
	// BlockLabel is the job title under the name.
	BlockLabel
	// BlockContact is a centered contact or profile line.
	BlockContact
	// BlockHeading is an uppercase section heading.
	BlockHeading
	// BlockTitle is an entry title line.
	BlockTitle
	// BlockSubtitle is an entry subtitle line.
	BlockSubtitle
	// BlockBody is a text paragraph.
	BlockBody
	// BlockBullet is a single bulleted list item.
	BlockBullet
	// BlockDivider is a horizontal rule after the header.
	BlockDivider
	// BlockGap separates entries; renderers may ignore it.
	BlockGap
)

// Alignment positions a block's text.
type Alignment uint8

const (
	// AlignLeft is the default alignment.
	AlignLeft Alignment = iota
	// AlignCenter centers the block.
	AlignCenter
	// AlignJustify stretches lines to the full width.
	AlignJustify
)

// Span is an inline run of text within a block. A non-empty Link makes
// the run a hyperlink; renderers color it with the theme accent.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Link   string
}

// Block is one format-neutral unit of output: a line or paragraph with
// a semantic kind, an alignment, and styled inline spans.
type Block struct {
	Kind  BlockKind
	Align Alignment
	Spans []Span
}

// Text returns the block's concatenated span text.
func (b Block) Text() string {
	if len(b.Spans) == 1 {
		return b.Spans[0].Text
	}
	var size int
	for _, s := range b.Spans {
		size += len(s.Text)
	}
	buf := make([]byte, 0, size)
	for _, s := range b.Spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

func textBlock(kind BlockKind, align Alignment, text string) Block {
	return Block{Kind: kind, Align: align, Spans: []Span{{Text: text}}}
}
