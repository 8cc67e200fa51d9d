package cms

import "strings"

// Row is one record from a tabular source, keyed by header name. Header
// names are untrusted: language, casing and spacing vary across export
// revisions, so all access goes through Resolve.
type Row map[string]string

// normalizeKey canonicalizes a header name: lowercase, whitespace removed,
// everything outside [a-z0-9_] and the Norwegian vowels dropped.
func normalizeKey(k string) string {
	var b strings.Builder
	b.Grow(len(k))
	for _, r := range strings.ToLower(k) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_',
			r == 'æ', r == 'ø', r == 'å':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve returns the trimmed value of the first variant that matches a row
// key after normalization, or dflt when no variant matches. It never fails
// on an unknown header; at worst the field stays unpopulated. When two raw
// headers normalize to the same key the lexicographically smallest one wins,
// so the same row resolves the same way on every run.
func Resolve(row Row, variants []string, dflt string) string {
	norm := make(map[string]string, len(row))
	for k := range row {
		nk := normalizeKey(k)
		if prev, ok := norm[nk]; !ok || k < prev {
			norm[nk] = k
		}
	}
	for _, v := range variants {
		if k, ok := norm[normalizeKey(v)]; ok {
			if s := strings.TrimSpace(row[k]); s != "" {
				return s
			}
			return dflt
		}
	}
	return dflt
}

// fieldMap is the declarative per-entity compatibility surface: canonical
// field name to accepted header spellings, in priority order. Supporting a
// new export revision's header is a one-line addition here.
type fieldMap map[string][]string

func (m fieldMap) get(row Row, field string) string {
	return Resolve(row, m[field], "")
}

var projectFields = fieldMap{
	"id":            {"project number", "id"},
	"slug":          {"slug"},
	"title":         {"title", "tittel"},
	"excerpt":       {"project", "prosjekt", "excerpt"},
	"solution":      {"solution", "løsning"},
	"results":       {"results", "resultater", "resultat"},
	"categories":    {"categories", "kategorier"},
	"services":      {"services", "tjenester"},
	"services2":     {"services 2", "tjenester 2"},
	"cover":         {"cover (image)", "cover", "forsidebilde"},
	"image1":        {"image 1", "bilde 1"},
	"image2":        {"image 2", "bilde 2"},
	"image3":        {"image 3", "bilde 3"},
	"image4":        {"image 4", "bilde 4"},
	"client":        {"client", "kunde"},
	"year":          {"year", "år"},
	"location":      {"location", "area", "lokasjon", "sted"},
	"industry":      {"industry", "industri", "bransje"},
	"collaborators": {"collaborators", "samarbeidspartnere"},
	"stat1":         {"stat 1", "stat1"},
	"stat2":         {"stat 2", "stat2"},
	"next1":         {"next project 1", "neste prosjekt 1"},
	"next2":         {"next project 2", "neste prosjekt 2"},
	"next3":         {"next project 3", "neste prosjekt 3"},
	"created":       {"created", "opprettet"},
	"edited":        {"edited", "endret"},
}

var categoryFields = fieldMap{
	"title":            {"title", "tittel"},
	"blurb":            {"blurb", "beskrivelse"},
	"expertise":        {"expertise", "ekspertise"},
	"services":         {"services", "tjenester"},
	"stats":            {"stats"},
	"statsTitle":       {"stats title", "stats tittel"},
	"statsDescription": {"stats description", "stats beskrivelse"},
}

var blogFields = fieldMap{
	"slug":     {"slug"},
	"number":   {"blog number", "number", "nummer"},
	"title":    {"title", "tittel"},
	"cover":    {"cover", "forsidebilde"},
	"coverAlt": {"cover:alt", "cover alt", "cover_alt"},
	"date":     {"date", "dato"},
	"author":   {"author", "forfatter"},
	"content":  {"content", "innhold"},
	"next1":    {"next blog 1"},
	"next2":    {"next blog 2"},
	"next3":    {"next blog 3"},
	"created":  {"created", "opprettet"},
	"edited":   {"edited", "endret"},
}

var clientFields = fieldMap{
	"title":   {"title", "tittel"},
	"slug":    {"slug"},
	"logo":    {"logo"},
	"created": {"created", "opprettet"},
	"edited":  {"edited", "endret"},
}

var teamFields = fieldMap{
	"name":       {"navn", "name"},
	"slug":       {"slug"},
	"role":       {"stilling", "role", "rolle"},
	"expertise":  {"ekspertise", "expertise"},
	"linkedin":   {"linkedin"},
	"mail":       {"mail", "e-post", "email"},
	"imageMain":  {"hovedbilde", "main image"},
	"imageExtra": {"ekstrabilde", "hovedbilde ekstrabilde", "extra image"},
	"created":    {"created", "opprettet"},
	"edited":     {"edited", "endret"},
}
