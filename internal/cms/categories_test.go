package cms

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"presbuilder/internal"
)

func TestBuildCategoriesDeclaredThenStubs(t *testing.T) {
	idx := NewServiceIndex([]Row{
		{"Title": "Design", "Blurb": "Form og funksjon.", "Expertise": "UX, UI", "Stats": "69 projects done, 21 years of experience"},
	})
	projects := []internal.Project{
		{Categories: []string{"Design", "Egen kategori"}},
		{Categories: []string{"Egen kategori"}},
	}

	cats := BuildCategories(idx, projects)
	if len(cats) != 2 {
		t.Fatalf("len=%d", len(cats))
	}

	// Declared entry is authoritative.
	if cats[0].Title != "Design" || cats[0].Blurb != "Form og funksjon." {
		t.Fatalf("declared: %+v", cats[0])
	}
	if diff := cmp.Diff([]string{"UX", "UI"}, cats[0].Expertise); diff != "" {
		t.Fatalf("expertise (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"69 projects done", "21 years of experience"}, cats[0].Stats); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}

	// Referenced-only title becomes a stub, once.
	stub := cats[1]
	if stub.ID != "Egen kategori" || stub.Title != "Egen kategori" || stub.Blurb != "" {
		t.Fatalf("stub: %+v", stub)
	}
	if stub.Expertise == nil || stub.Stats == nil {
		t.Fatal("stub lists must be arrays, not nil")
	}
}

func TestBuildCategoriesStatsCapped(t *testing.T) {
	idx := NewServiceIndex([]Row{
		{"Title": "Design", "Stats": "1 a, 2 b, 3 c, 4 d"},
	})
	cats := BuildCategories(idx, nil)
	if len(cats[0].Stats) != 3 {
		t.Fatalf("stats: %v", cats[0].Stats)
	}
}

func TestBuildCategoriesDuplicateDeclarationsCollide(t *testing.T) {
	// Categories are keyed by display title; the first declaration wins.
	idx := NewServiceIndex([]Row{
		{"Title": "Design", "Blurb": "first"},
		{"Title": "design", "Blurb": "second"},
	})
	cats := BuildCategories(idx, nil)
	if len(cats) != 1 || cats[0].Blurb != "first" {
		t.Fatalf("cats: %+v", cats)
	}
}

func TestServiceIndexLookups(t *testing.T) {
	idx := designIndex()

	if title, ok := idx.CategoryTitle("  design "); !ok || title != "Design" {
		t.Fatalf("CategoryTitle: %q %v", title, ok)
	}
	if _, ok := idx.CategoryTitle("ukjent"); ok {
		t.Fatal("unexpected hit")
	}
	if owner, svc, ok := idx.OwnerOfService("ui"); !ok || owner != "Design" || svc != "UI" {
		t.Fatalf("OwnerOfService: %q %q %v", owner, svc, ok)
	}
}
