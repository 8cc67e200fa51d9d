package deck

import (
	"fmt"
	"strings"

	"presbuilder/internal"
)

// PrintRenderer is the print-paginated surface: fixed page header and
// footer per slide, pages separated by form feeds so the output streams
// straight to a line printer or pager.
type PrintRenderer struct{}

const printHeader = "Comte Bureau — Tilbudsforslag"

func (PrintRenderer) RenderDeck(slides []Slide, doc *internal.ContentDocument) string {
	pages := make([]string, 0, len(slides))
	for i, s := range slides {
		var b strings.Builder
		b.WriteString(printHeader + "\n\n")
		b.WriteString(PrintRenderer{}.RenderSlide(s, doc))
		fmt.Fprintf(&b, "\nSide %d av %d\n", i+1, len(slides))
		pages = append(pages, b.String())
	}
	return strings.Join(pages, "\f")
}

// RenderSlide reuses the text surface's per-kind content blocks; only the
// page chrome differs between the two.
func (PrintRenderer) RenderSlide(slide Slide, doc *internal.ContentDocument) string {
	return TextRenderer{}.RenderSlide(slide, doc)
}
