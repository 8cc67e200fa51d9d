package cms

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxBullets = 3

var (
	reAbsURL   = regexp.MustCompile(`(?i)^https?://`)
	reSlugJunk = regexp.MustCompile(`[^a-z0-9]+`)
)

// SplitList splits a comma-delimited cell, trimming each piece and dropping
// empties. Order is preserved and nothing is deduplicated.
func SplitList(cell string) []string {
	out := []string{}
	for _, p := range strings.Split(cell, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExtractBullets mines list-item fragments out of an embedded markup cell:
// the first three list items, tags stripped and non-breaking spaces decoded,
// with items that clean down to nothing dropped. Later items never stand in
// for a blank one. The cap of three is a slide-layout constraint, not a
// parser one.
func ExtractBullets(markup string) []string {
	out := []string{}
	if strings.TrimSpace(markup) == "" {
		return out
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return out
	}
	doc.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		text := strings.TrimSpace(strings.ReplaceAll(li.Text(), " ", " "))
		if text != "" {
			out = append(out, text)
		}
		return i+1 < maxBullets
	})
	return out
}

// AsImageURL classifies a bare cell value: empty stays empty, absolute
// http(s) URLs pass through verbatim, anything else is treated as a
// filename under the asset base. No existence check.
func AsImageURL(s, base string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if reAbsURL.MatchString(s) {
		return s
	}
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + s
}

// Slugify derives a URL-safe identifier from free text: diacritics folded
// to their base form, lowercased, runs of non-alphanumerics collapsed to a
// single hyphen. An empty result falls back to the fallback text through
// the same transform, then to a random token. Total and idempotent, but not
// collection-unique; see slugSet.
func Slugify(s, fallback string) string {
	if out := slugifyOne(s); out != "" {
		return out
	}
	if out := slugifyOne(fallback); out != "" {
		return out
	}
	return randomToken()
}

func slugifyOne(s string) string {
	s = foldDiacritics(strings.TrimSpace(s))
	s = reSlugJunk.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func randomToken() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("x%d", time.Now().UnixNano()%100000)
	}
	return hex.EncodeToString(b[:])
}

// slugSet enforces collection-wide slug uniqueness by appending a numeric
// suffix on collision. Deterministic across re-runs for the same input.
type slugSet map[string]struct{}

func (set slugSet) claim(slug string) string {
	if _, taken := set[slug]; !taken {
		set[slug] = struct{}{}
		return slug
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if _, taken := set[candidate]; !taken {
			set[candidate] = struct{}{}
			return candidate
		}
	}
}
