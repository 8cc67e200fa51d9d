package deck

import (
	"regexp"
	"strings"

	"presbuilder/internal"
)

// Renderer turns slide descriptors into one presentation surface. All
// implementations honor the same ordering and the same id-resolution
// semantics: an id that resolves to nothing renders with placeholder copy,
// never an error, and never drops the slide.
type Renderer interface {
	RenderSlide(slide Slide, doc *internal.ContentDocument) string
	RenderDeck(slides []Slide, doc *internal.ContentDocument) string
}

// Placeholder copy for unresolved ids.
const (
	placeholderCategory = "Kategori"
	placeholderProject  = "Prosjekt"
	placeholderBlurb    = "Beskrivelse av kategorien."
	expertiseHeading    = "Vi kan hjelpe deg med"
	clientsHeading      = "Utvalgte kunder"
	statsHeading        = "Stats"
)

var (
	reCategoryStat = regexp.MustCompile(`^(\d+)([+\-%]?)\s+(.+)$`)
	reProjectStat  = regexp.MustCompile(`^(\d+[+\-]?)\s*(.*)$`)
)

// Stat is the render-time split of a raw stat string. Builders store stats
// raw; the number/text separation is a presentation concern.
type Stat struct {
	Number string
	Sign   string
	Text   string
}

// SplitCategoryStat splits "69 projects done" into number, optional sign
// and description. A string with no leading number is all text.
func SplitCategoryStat(raw string) Stat {
	if m := reCategoryStat.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
		return Stat{Number: m[1], Sign: m[2], Text: m[3]}
	}
	return Stat{Text: strings.TrimSpace(raw)}
}

// SplitProjectStat is the looser project-stat shape: the sign rides on the
// number and the text may be empty.
func SplitProjectStat(raw string) Stat {
	raw = strings.TrimSpace(raw)
	if m := reProjectStat.FindStringSubmatch(raw); m != nil {
		num := m[1]
		stat := Stat{Number: strings.TrimRight(num, "+-"), Text: m[2]}
		if strings.HasSuffix(num, "+") {
			stat.Sign = "+"
		} else if strings.HasSuffix(num, "-") {
			stat.Sign = "-"
		}
		return stat
	}
	return Stat{Text: raw}
}

func categoryTitle(doc *internal.ContentDocument, id string) string {
	if cat := doc.CategoryByID(id); cat != nil && cat.Title != "" {
		return cat.Title
	}
	return placeholderCategory
}

func categoryBlurb(doc *internal.ContentDocument, id string) string {
	if cat := doc.CategoryByID(id); cat != nil && cat.Blurb != "" {
		return cat.Blurb
	}
	return placeholderBlurb
}
