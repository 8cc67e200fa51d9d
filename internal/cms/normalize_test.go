package cms

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{input: "a, b ,,c", want: []string{"a", "b", "c"}},
		{input: "", want: []string{}},
		{input: " ,  , ", want: []string{}},
		{input: "UX, UX", want: []string{"UX", "UX"}}, // no dedup
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, SplitList(tc.input)); diff != "" {
			t.Fatalf("SplitList(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestExtractBullets(t *testing.T) {
	got := ExtractBullets("<ul><li>One</li><li>Two</li><li>Three</li><li>Four</li></ul>")
	want := []string{"One", "Two", "Three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBulletsBlankItemsCountAgainstCap(t *testing.T) {
	// Only the first three list items are considered. A blank item among
	// them is dropped, not replaced by a later one.
	got := ExtractBullets("<ul><li>One</li><li> </li><li>&nbsp;</li><li>Two</li><li>Three</li><li>Four</li></ul>")
	want := []string{"One"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBulletsCleansMarkup(t *testing.T) {
	got := ExtractBullets(`<ul><li><b>Bold</b>&nbsp;text</li><li>  </li><li>Second</li></ul>`)
	want := []string{"Bold text", "Second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBulletsEmpty(t *testing.T) {
	if got := ExtractBullets(""); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	if got := ExtractBullets("no list here"); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestAsImageURL(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "https://example.com/a.jpg", want: "https://example.com/a.jpg"},
		{input: "HTTP://example.com/a.jpg", want: "HTTP://example.com/a.jpg"},
		{input: "photo.jpg", want: "/cms/photo.jpg"},
		{input: "  photo.jpg ", want: "/cms/photo.jpg"},
	}
	for _, tc := range cases {
		if got := AsImageURL(tc.input, "/cms/"); got != tc.want {
			t.Fatalf("AsImageURL(%q) = %q want %q", tc.input, got, tc.want)
		}
	}
	if got := AsImageURL("a.jpg", "/cms"); got != "/cms/a.jpg" {
		t.Fatalf("base without slash: got %q", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{name: "basic", input: "Hello World", want: "hello-world"},
		{name: "diacritics", input: "Crème Brûlée", want: "creme-brulee"},
		{name: "junk runs", input: "a  --  b!!c", want: "a-b-c"},
		{name: "trims hyphens", input: "--x--", want: "x"},
		{name: "fallback", input: "", fallback: "Prosjekt Alfa", want: "prosjekt-alfa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input, tc.fallback); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestSlugifyTotal(t *testing.T) {
	// Both inputs degenerate: still a non-empty URL-safe token.
	got := Slugify("!!!", "???")
	if got == "" {
		t.Fatal("empty slug")
	}
	for _, r := range got {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			t.Fatalf("slug %q has unsafe rune %q", got, r)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "Crème Brûlée", "already-a-slug", "Blåbær"}
	for _, in := range inputs {
		once := Slugify(in, "")
		if twice := Slugify(once, ""); twice != once {
			t.Fatalf("Slugify(%q): %q then %q", in, once, twice)
		}
	}
}

func TestSlugSetClaim(t *testing.T) {
	set := slugSet{}
	if got := set.claim("a"); got != "a" {
		t.Fatalf("got %q", got)
	}
	if got := set.claim("a"); got != "a-2" {
		t.Fatalf("got %q", got)
	}
	if got := set.claim("a"); got != "a-3" {
		t.Fatalf("got %q", got)
	}
	if got := set.claim("b"); got != "b" {
		t.Fatalf("got %q", got)
	}
}

func TestRandomTokenShape(t *testing.T) {
	tok := randomToken()
	if len(tok) != 6 || strings.ContainsFunc(tok, func(r rune) bool {
		return !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'))
	}) {
		t.Fatalf("token %q", tok)
	}
}
