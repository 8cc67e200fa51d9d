package cms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildBlogSortsByDateDescending(t *testing.T) {
	rows := []Row{
		{"Title": "Old", "Date": "2023-06-01"},
		{"Title": "Broken", "Date": "n/a"},
		{"Title": "New", "Date": "2024-01-01"},
	}
	posts := BuildBlog(rows, "/cms/")

	got := []string{posts[0].Title, posts[1].Title, posts[2].Title}
	if diff := cmp.Diff([]string{"New", "Old", "Broken"}, got); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}

func TestBuildBlogNextResolution(t *testing.T) {
	rows := []Row{
		{"Title": "First", "Blog Number": "1", "Next Blog 1": "2", "Next Blog 2": "99", "Next Blog 3": "3"},
		{"Title": "Second", "Blog Number": "2"},
		{"Title": "Third", "Blog Number": "3"},
	}
	posts := BuildBlog(rows, "/cms/")

	var next []string
	for _, p := range posts {
		if p.Title == "First" {
			next = p.Next
		}
	}
	// Unresolvable "99" is dropped silently.
	if diff := cmp.Diff([]string{"second", "third"}, next); diff != "" {
		t.Fatalf("next (-want +got):\n%s", diff)
	}
}

func TestBuildBlogSlugAndID(t *testing.T) {
	rows := []Row{
		{"Title": "Hello World", "Slug": ""},
		{"Title": "Hello World"},
	}
	posts := BuildBlog(rows, "/cms/")
	if posts[0].Slug != "hello-world" || posts[1].Slug != "hello-world-2" {
		t.Fatalf("slugs: %q %q", posts[0].Slug, posts[1].Slug)
	}
	if posts[0].ID != posts[0].Slug {
		t.Fatalf("id=%q slug=%q", posts[0].ID, posts[0].Slug)
	}
}

func TestBuildBlogRowMapping(t *testing.T) {
	rows := []Row{{
		"Title":     "Post",
		"Cover":     "cover.png",
		"Cover:alt": "Alt text",
		"Date":      "2024-03-01",
		"Author":    "Kari",
		"Content":   "<p>Body</p>",
	}}
	posts := BuildBlog(rows, "/cms/")
	p := posts[0]
	if p.Cover != "/cms/cover.png" || p.CoverAlt != "Alt text" || p.Author != "Kari" || p.ContentHTML != "<p>Body</p>" {
		t.Fatalf("post: %+v", p)
	}
	if p.Next == nil {
		t.Fatal("next must be an array, not nil")
	}
}

func TestParseBlogDateLayouts(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{input: "2024-01-02", ok: true},
		{input: "02.01.2024", ok: true},
		{input: "January 2, 2024", ok: true},
		{input: "", ok: false},
		{input: "soon", ok: false},
	}
	for _, tc := range cases {
		got := parseBlogDate(tc.input)
		if parsed := got.Unix() != 0; parsed != tc.ok {
			t.Fatalf("parseBlogDate(%q) = %v", tc.input, got)
		}
	}
}
