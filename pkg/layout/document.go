// Package layout provides a small document model for assembling legal
// prose (headings, paragraphs, audit notes, signature blocks) and a
// renderer that produces PDF artifacts through pdfcpu.
package layout

// Kind discriminates the block variants of a Document.
type Kind int

const (
	KindTitle Kind = iota
	KindHeading
	KindMeta
	KindParagraph
	KindNote
	KindSpacer
	KindSignature
)

// Block is a single layout element. Only the fields relevant to its
// Kind are populated.
type Block struct {
	Kind  Kind
	Text  string
	Label string   // KindMeta: bold label preceding Text
	Note  string   // KindParagraph: audit note appended in note style
	Gap   float64  // KindSpacer: vertical gap in points
	Left  []string // KindSignature: left column lines
	Right []string // KindSignature: right column lines
}

// Risk reports whether the block carries an audit note.
func (b Block) Risk() bool {
	return b.Kind == KindParagraph && b.Note != ""
}

// Document is an ordered sequence of blocks, rendered top to bottom
// with automatic page breaks.
type Document struct {
	Blocks []Block
}

// Title appends a centered title line.
func (d *Document) Title(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindTitle, Text: text})
}

// Heading appends a section heading.
func (d *Document) Heading(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindHeading, Text: text})
}

// Meta appends a bold label/value line, e.g. "Contract Number: SLA-2026-412".
func (d *Document) Meta(label, value string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindMeta, Label: label, Text: value})
}

// Paragraph appends body prose.
func (d *Document) Paragraph(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindParagraph, Text: text})
}

// RiskParagraph appends body prose followed by an audit note rendered
// in the note style. Blocks added this way count toward a document's
// issues total.
func (d *Document) RiskParagraph(text, note string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindParagraph, Text: text, Note: note})
}

// Note appends a standalone audit note.
func (d *Document) Note(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindNote, Text: text})
}

// Spacer appends vertical space in points.
func (d *Document) Spacer(points float64) {
	d.Blocks = append(d.Blocks, Block{Kind: KindSpacer, Gap: points})
}

// Signature appends a two-column signature block.
func (d *Document) Signature(left, right []string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindSignature, Left: left, Right: right})
}

// RiskCount returns the number of blocks carrying an audit note.
func (d *Document) RiskCount() int {
	count := 0
	for _, b := range d.Blocks {
		if b.Risk() {
			count++
		}
	}
	return count
}
