package deck

import (
	"fmt"
	"strings"

	"presbuilder/internal"
)

// TextRenderer is the interactive surface: one plain-text frame per slide
// with a position indicator, suitable for stepping through in a terminal.
type TextRenderer struct{}

func (TextRenderer) RenderDeck(slides []Slide, doc *internal.ContentDocument) string {
	var b strings.Builder
	for i, s := range slides {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(TextRenderer{}.RenderSlide(s, doc))
		fmt.Fprintf(&b, "%d / %d\n", i+1, len(slides))
	}
	return b.String()
}

func (TextRenderer) RenderSlide(slide Slide, doc *internal.ContentDocument) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")

	switch slide.Kind {
	case KindCover:
		b.WriteString(slide.Title + "\n")
		if slide.Subtitle != "" {
			b.WriteString(slide.Subtitle + "\n")
		}
	case KindOutro:
		title := slide.Title
		if title == "" {
			title = outroReport
		}
		b.WriteString(title + "\n")
	case KindCategory:
		b.WriteString(categoryTitle(doc, slide.CategoryID) + "\n")
		b.WriteString(categoryBlurb(doc, slide.CategoryID) + "\n")
	case KindExpertise:
		b.WriteString(expertiseHeading + "\n")
		if cat := doc.CategoryByID(slide.CategoryID); cat != nil {
			for _, e := range cat.Expertise {
				b.WriteString("  - " + e + "\n")
			}
		}
	case KindStats:
		b.WriteString(statsHeading + "\n")
		if cat := doc.CategoryByID(slide.CategoryID); cat != nil {
			if cat.StatsTitle != "" {
				b.WriteString(cat.StatsTitle + "\n")
			}
			for _, raw := range cat.Stats {
				stat := SplitCategoryStat(raw)
				if stat.Number != "" {
					fmt.Fprintf(&b, "  %s%s  %s\n", stat.Number, stat.Sign, stat.Text)
				} else {
					b.WriteString("  " + stat.Text + "\n")
				}
			}
		}
	case KindClients:
		b.WriteString(clientsHeading + "\n")
		for _, c := range doc.Clients {
			b.WriteString("  - " + c.Title + "\n")
		}
	case KindProject:
		proj := doc.ProjectByID(slide.ProjectID)
		if proj == nil {
			b.WriteString(placeholderProject + "\n")
			break
		}
		b.WriteString(proj.Title + "\n")
		if len(proj.BulletPoints) > 0 {
			for _, p := range proj.BulletPoints {
				b.WriteString("  * " + p + "\n")
			}
		} else if proj.Excerpt != "" {
			b.WriteString(proj.Excerpt + "\n")
		}
		for _, raw := range []string{proj.Stat1, proj.Stat2} {
			if raw == "" {
				continue
			}
			stat := SplitProjectStat(raw)
			if stat.Number != "" {
				fmt.Fprintf(&b, "  %s%s %s\n", stat.Number, stat.Sign, stat.Text)
			} else {
				b.WriteString("  " + stat.Text + "\n")
			}
		}
		writeMeta := func(label, value string) {
			if value != "" {
				fmt.Fprintf(&b, "  %s: %s\n", label, value)
			}
		}
		writeMeta("Klient", proj.Client)
		writeMeta("Lokasjon", proj.Location)
		writeMeta("År", proj.Year)
		writeMeta("Industri", proj.Industry)
	}
	b.WriteString(rule + "\n")
	return b.String()
}
