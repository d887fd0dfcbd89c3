package layout

// TextStyle describes the font treatment for one block kind.
type TextStyle struct {
	Font  string
	Size  float64
	Color string
}

// StyleSheet carries every style a renderer needs. Construct one with
// DefaultStyles and pass it by value; renderers never mutate it.
type StyleSheet struct {
	Title   TextStyle
	Heading TextStyle
	Meta    TextStyle
	Body    TextStyle
	Note    TextStyle

	PageWidth  float64
	PageHeight float64
	Margin     float64
	Leading    float64 // line height multiplier
}

// DefaultStyles returns the standard contract style sheet:
// US Letter, one-inch margins, Helvetica text with red bold audit notes.
func DefaultStyles() StyleSheet {
	return StyleSheet{
		Title:   TextStyle{Font: "Helvetica-Bold", Size: 16, Color: "#1A1A1A"},
		Heading: TextStyle{Font: "Helvetica-Bold", Size: 12, Color: "#1A1A1A"},
		Meta:    TextStyle{Font: "Helvetica-Bold", Size: 10, Color: "#1A1A1A"},
		Body:    TextStyle{Font: "Helvetica", Size: 10, Color: "#1A1A1A"},
		Note:    TextStyle{Font: "Helvetica-Bold", Size: 9, Color: "#C00000"},

		PageWidth:  612,
		PageHeight: 792,
		Margin:     72,
		Leading:    1.35,
	}
}

// ContentWidth returns the usable line width between margins.
func (s StyleSheet) ContentWidth() float64 {
	return s.PageWidth - 2*s.Margin
}
