package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Renderer lays out Documents and produces PDF bytes via the pdfcpu
// create pipeline. A Renderer is immutable after construction and safe
// to reuse across documents.
type Renderer struct {
	styles StyleSheet
	conf   *model.Configuration
}

// NewRenderer creates a Renderer with the given style sheet.
func NewRenderer(styles StyleSheet) *Renderer {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Renderer{
		styles: styles,
		conf:   conf,
	}
}

// Render lays out the document and returns the finished PDF bytes.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo lays out the document and writes the finished PDF to w.
func (r *Renderer) RenderTo(doc *Document, w io.Writer) error {
	spec, err := r.layout(doc)
	if err != nil {
		return err
	}

	if err := api.Create(nil, bytes.NewReader(spec), w, r.conf); err != nil {
		return fmt.Errorf("pdf create: %w", err)
	}
	return nil
}

// PageCount reports the number of pages in rendered PDF bytes.
func PageCount(data []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("pdf page count: %w", err)
	}
	return count, nil
}

// pdfcpu create-spec model. Only the subset of the create grammar the
// renderer emits: absolutely positioned text entries per page.
type createSpec struct {
	Paper string                `json:"paper"`
	Pages map[string]createPage `json:"pages"`
}

type createPage struct {
	Content createContent `json:"content"`
}

type createContent struct {
	Text []textEntry `json:"text"`
}

type textEntry struct {
	Value     string     `json:"value"`
	Position  [2]float64 `json:"position"`
	Font      fontSpec   `json:"font"`
	FillColor string     `json:"fillColor,omitempty"`
}

type fontSpec struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

type cursor struct {
	page  int
	y     float64
	pages map[string]createPage
}

func (r *Renderer) layout(doc *Document) ([]byte, error) {
	c := &cursor{
		page:  1,
		y:     r.styles.PageHeight - r.styles.Margin,
		pages: map[string]createPage{},
	}

	for _, block := range doc.Blocks {
		switch block.Kind {
		case KindTitle:
			r.placeCentered(c, block.Text, r.styles.Title)
			r.advance(c, r.styles.Title.Size*r.styles.Leading+8)
		case KindHeading:
			r.advance(c, 6)
			r.placeWrapped(c, block.Text, r.styles.Heading)
			r.advance(c, 4)
		case KindMeta:
			r.placeWrapped(c, block.Label+" "+block.Text, r.styles.Meta)
		case KindParagraph:
			r.placeWrapped(c, block.Text, r.styles.Body)
			if block.Note != "" {
				r.placeWrapped(c, block.Note, r.styles.Note)
			}
			r.advance(c, 6)
		case KindNote:
			r.placeWrapped(c, block.Text, r.styles.Note)
			r.advance(c, 6)
		case KindSpacer:
			r.advance(c, block.Gap)
		case KindSignature:
			r.placeSignature(c, block.Left, block.Right)
		}
	}

	spec := createSpec{
		Paper: "Letter",
		Pages: c.pages,
	}

	data, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal create spec: %w", err)
	}
	return data, nil
}

func (r *Renderer) advance(c *cursor, points float64) {
	c.y -= points
	if c.y < r.styles.Margin {
		c.page++
		c.y = r.styles.PageHeight - r.styles.Margin
	}
}

func (r *Renderer) place(c *cursor, x float64, text string, style TextStyle) {
	key := strconv.Itoa(c.page)
	page := c.pages[key]
	page.Content.Text = append(page.Content.Text, textEntry{
		Value:     text,
		Position:  [2]float64{x, c.y},
		Font:      fontSpec{Name: style.Font, Size: style.Size},
		FillColor: style.Color,
	})
	c.pages[key] = page
}

func (r *Renderer) placeCentered(c *cursor, text string, style TextStyle) {
	width := approxWidth(text, style)
	x := (r.styles.PageWidth - width) / 2
	if x < r.styles.Margin {
		x = r.styles.Margin
	}
	r.place(c, x, text, style)
}

func (r *Renderer) placeWrapped(c *cursor, text string, style TextStyle) {
	lineHeight := style.Size * r.styles.Leading
	for _, line := range wrap(text, style, r.styles.ContentWidth()) {
		r.advance(c, lineHeight)
		r.place(c, r.styles.Margin, line, style)
	}
}

// placeSignature renders two parallel columns of signature lines.
func (r *Renderer) placeSignature(c *cursor, left, right []string) {
	style := r.styles.Body
	lineHeight := style.Size * r.styles.Leading

	rows := max(len(left), len(right))

	// keep the whole block on one page
	needed := float64(rows) * lineHeight
	if c.y-needed < r.styles.Margin {
		c.page++
		c.y = r.styles.PageHeight - r.styles.Margin
	}

	rightX := r.styles.Margin + r.styles.ContentWidth()/2 + 12
	for i := range rows {
		r.advance(c, lineHeight)
		rowStyle := style
		if i == 0 {
			rowStyle = r.styles.Meta
		}
		if i < len(left) && left[i] != "" {
			r.place(c, r.styles.Margin, left[i], rowStyle)
		}
		if i < len(right) && right[i] != "" {
			r.place(c, rightX, right[i], rowStyle)
		}
	}
}

// approxWidth estimates rendered width from average Helvetica glyph
// proportions; exact metrics are not needed for margin-safe wrapping.
func approxWidth(text string, style TextStyle) float64 {
	factor := 0.50
	if strings.Contains(style.Font, "Bold") {
		factor = 0.53
	}
	return float64(len(text)) * style.Size * factor
}

func wrap(text string, style TextStyle, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if approxWidth(candidate, style) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
