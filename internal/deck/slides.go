package deck

import (
	"encoding/json"
	"fmt"
)

type OutputType string

const (
	OutputPresentation OutputType = "presentation"
	OutputReport       OutputType = "report"
)

type SlideKind string

const (
	KindCover     SlideKind = "cover"
	KindCategory  SlideKind = "category"
	KindExpertise SlideKind = "expertise"
	KindStats     SlideKind = "stats"
	KindClients   SlideKind = "clients"
	KindProject   SlideKind = "project"
	KindOutro     SlideKind = "outro"
)

// Slide is a typed descriptor of one unit of presented content. It holds
// identifiers only, never denormalized entity data: renderers resolve ids
// against the content document at render time.
type Slide struct {
	Kind       SlideKind `json:"kind"`
	Title      string    `json:"title,omitempty"`
	Subtitle   string    `json:"subtitle,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
	ProjectID  string    `json:"projectId,omitempty"`
}

// Static deck copy.
const (
	coverTitle    = "Comte Bureau"
	coverSubtitle = "Innovations that change how we live"
	outroReport   = "Takk"
	outroLive     = "Spørsmål?"
)

// Options covers the sequencing variants seen across pipeline revisions.
// IncludeClients adds the clients slide to the category block; whether that
// block is a stable feature is still open with the stakeholders, so it
// stays off by default.
type Options struct {
	IncludeClients bool
}

// BuildSlides derives the ordered slide list from the user's selections.
// Pure and total: cover first, the category block when a category is
// chosen, one project slide per selected id in selection order, outro last.
// Ids are not validated here; an id that resolves to nothing still gets a
// slide, rendered with placeholder content.
func BuildSlides(categoryID string, projectIDs []string, output OutputType, opts Options) []Slide {
	slides := []Slide{{Kind: KindCover, Title: coverTitle, Subtitle: coverSubtitle}}
	if categoryID != "" {
		slides = append(slides,
			Slide{Kind: KindCategory, CategoryID: categoryID},
			Slide{Kind: KindExpertise, CategoryID: categoryID},
			Slide{Kind: KindStats, CategoryID: categoryID},
		)
		if opts.IncludeClients {
			slides = append(slides, Slide{Kind: KindClients, CategoryID: categoryID})
		}
	}
	for _, pid := range projectIDs {
		slides = append(slides, Slide{Kind: KindProject, ProjectID: pid})
	}
	outro := outroLive
	if output == OutputReport {
		outro = outroReport
	}
	return append(slides, Slide{Kind: KindOutro, Title: outro})
}

// ExportSlides serializes a slide sequence to the standalone slides.json
// artifact. Re-importing yields a structurally identical sequence.
func ExportSlides(slides []Slide) ([]byte, error) {
	return json.MarshalIndent(slides, "", "  ")
}

// ImportSlides parses a slides.json artifact, rejecting unknown kinds so a
// hand-edited file fails here rather than rendering blank pages.
func ImportSlides(data []byte) ([]Slide, error) {
	var slides []Slide
	if err := json.Unmarshal(data, &slides); err != nil {
		return nil, err
	}
	for i, s := range slides {
		switch s.Kind {
		case KindCover, KindCategory, KindExpertise, KindStats, KindClients, KindProject, KindOutro:
		default:
			return nil, fmt.Errorf("slide %d: unknown kind %q", i, s.Kind)
		}
	}
	return slides, nil
}
