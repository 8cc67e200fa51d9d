package cms

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"presbuilder/internal"
)

// LoadDocument fetches a persisted content document from a local path or
// an http(s) URL. Any failure (missing file, non-2xx status, bad JSON)
// substitutes the static fallback document; the caller stays fully usable
// with placeholder content and no retry is attempted.
func LoadDocument(source string, timeout time.Duration) internal.ContentDocument {
	doc, err := loadDocument(source, timeout)
	if err != nil {
		return FallbackDocument()
	}
	return doc
}

func loadDocument(source string, timeout time.Duration) (internal.ContentDocument, error) {
	var (
		data []byte
		err  error
	)
	if reAbsURL.MatchString(source) {
		data, err = fetchURL(source, timeout)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return internal.ContentDocument{}, err
	}

	var doc internal.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return internal.ContentDocument{}, err
	}
	if doc.Empty() {
		return internal.ContentDocument{}, fmt.Errorf("document at %s has no content", source)
	}
	return doc, nil
}

func fetchURL(url string, timeout time.Duration) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// FallbackDocument is the built-in placeholder content used whenever the
// persisted document is unavailable.
func FallbackDocument() internal.ContentDocument {
	return internal.ContentDocument{
		Categories: []internal.Category{
			{ID: "strategy", Title: "Strategi", Blurb: "Retning og prioriteringer.", Expertise: []string{}, Stats: []string{}},
			{ID: "research", Title: "Innsikt", Blurb: "Intervjuer og undersøkelser.", Expertise: []string{}, Stats: []string{}},
			{ID: "service", Title: "Tjenestedesign", Blurb: "Flyt og kontaktpunkter.", Expertise: []string{}, Stats: []string{}},
			{ID: "brand", Title: "Merkevare", Blurb: "Identitet og posisjon.", Expertise: []string{}, Stats: []string{}},
			{ID: "content", Title: "Innhold", Blurb: "Historier og format.", Expertise: []string{}, Stats: []string{}},
			{ID: "product", Title: "Produkt", Blurb: "Digitale opplevelser.", Expertise: []string{}, Stats: []string{}},
		},
		Projects: []internal.Project{
			{
				ID:           "proj-1",
				Slug:         "prosjekt-alfa",
				Title:        "Prosjekt Alfa",
				Excerpt:      "Vi hentet innsikt gjennom 1:1 samtaler og leverte en tydelig retning.",
				BulletPoints: []string{},
				Categories:   []string{"research", "strategy"},
				Images:       []string{"/cms/alfa-1.jpg", "/cms/alfa-2.jpg"},
				Services:     []string{},
				Next:         []string{},
			},
			{
				ID:           "proj-2",
				Slug:         "prosjekt-beta",
				Title:        "Prosjekt Beta",
				Excerpt:      "Nye brukerreiser og tjenesteflyt på tvers av kanaler.",
				BulletPoints: []string{},
				Categories:   []string{"service"},
				Images:       []string{"/cms/beta-1.jpg"},
				Services:     []string{},
				Next:         []string{},
			},
			{
				ID:           "proj-3",
				Slug:         "prosjekt-gamma",
				Title:        "Prosjekt Gamma",
				Excerpt:      "Ny visuell identitet og merkevareplattform.",
				BulletPoints: []string{},
				Categories:   []string{"brand", "content"},
				Images:       []string{"/cms/gamma-1.jpg", "/cms/gamma-2.jpg"},
				Services:     []string{},
				Next:         []string{},
			},
		},
		Blog:    []internal.BlogPost{},
		Clients: []internal.Client{},
		Team:    []internal.TeamMember{},
	}
}
