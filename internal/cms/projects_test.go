package cms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func designIndex() *ServiceIndex {
	return NewServiceIndex([]Row{
		{"Title": "Design", "Services": "UX, UI", "Blurb": "Form og funksjon."},
		{"Title": "Strategi", "Services": "Analyse, Rådgivning"},
	})
}

func TestBuildProjectsCategoryTokenExpands(t *testing.T) {
	rows := []Row{{"Title": "Alpha", "Services": "Design"}}
	projects := BuildProjects(rows, designIndex(), "/cms/")

	if diff := cmp.Diff([]string{"Design"}, projects[0].Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"UX", "UI"}, projects[0].Services); diff != "" {
		t.Fatalf("services (-want +got):\n%s", diff)
	}
}

func TestBuildProjectsServiceTokenRecordsOwner(t *testing.T) {
	rows := []Row{{"Title": "Alpha", "Services": "UX"}}
	projects := BuildProjects(rows, designIndex(), "/cms/")

	if diff := cmp.Diff([]string{"Design"}, projects[0].Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"UX"}, projects[0].Services); diff != "" {
		t.Fatalf("services (-want +got):\n%s", diff)
	}
}

func TestBuildProjectsUnknownServiceKept(t *testing.T) {
	rows := []Row{{"Title": "Alpha", "Services": "Noe helt annet"}}
	projects := BuildProjects(rows, designIndex(), "/cms/")

	if len(projects[0].Categories) != 0 {
		t.Fatalf("categories: %v", projects[0].Categories)
	}
	if diff := cmp.Diff([]string{"Noe helt annet"}, projects[0].Services); diff != "" {
		t.Fatalf("services (-want +got):\n%s", diff)
	}
}

func TestBuildProjectsCategoriesFromBothServiceColumns(t *testing.T) {
	// Explicit categories column empty, both services columns populated.
	rows := []Row{{"Title": "Alpha", "Services": "UX", "Services 2": "Analyse"}}
	projects := BuildProjects(rows, designIndex(), "/cms/")

	if diff := cmp.Diff([]string{"Design", "Strategi"}, projects[0].Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
}

func TestBuildProjectsExplicitCategoriesKept(t *testing.T) {
	rows := []Row{{"Title": "Alpha", "Categories": "Design, Egen"}}
	projects := BuildProjects(rows, designIndex(), "/cms/")

	if diff := cmp.Diff([]string{"Design", "Egen"}, projects[0].Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
}

func TestBuildProjectsRowMapping(t *testing.T) {
	rows := []Row{{
		"Project number": "P7",
		"Title":          "Alpha",
		"Project":        "Short excerpt.",
		"Solution":       "Long form solution.",
		"Results":        "<ul><li>One</li><li>Two</li><li>Three</li><li>Four</li></ul>",
		"Cover (image)":  "cover.jpg",
		"Image 1":        "https://cdn.example.com/one.jpg",
		"Image 2":        "",
		"Client":         "Acme",
		"Year":           "2023",
		"Location":       "Oslo",
		"Industry":       "Helse",
		"Stat 1":         "200 personer involvert",
		"Stat 2":         "48 intervjuer",
		"Next project 1": "P8",
		"Next project 2": "P9",
		"Slug":           "",
		"Created":        "2023-01-01",
		"Edited":         "2023-02-01",
	}}
	projects := BuildProjects(rows, designIndex(), "/cms/")
	p := projects[0]

	if p.ID != "P7" {
		t.Fatalf("id=%q", p.ID)
	}
	if p.Slug != "alpha" {
		t.Fatalf("slug=%q", p.Slug)
	}
	if diff := cmp.Diff([]string{"One", "Two", "Three"}, p.BulletPoints); diff != "" {
		t.Fatalf("bullets (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/cms/cover.jpg", "https://cdn.example.com/one.jpg"}, p.Images); diff != "" {
		t.Fatalf("images (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"P8", "P9"}, p.Next); diff != "" {
		t.Fatalf("next (-want +got):\n%s", diff)
	}
	if p.Location != "Oslo" || p.Industry != "Helse" || p.Stat1 != "200 personer involvert" {
		t.Fatalf("meta: %+v", p)
	}
}

func TestBuildProjectsSlugCollision(t *testing.T) {
	rows := []Row{
		{"Title": "Alpha", "id": "p1"},
		{"Title": "Alpha", "id": "p2"},
	}
	projects := BuildProjects(rows, designIndex(), "/cms/")
	if projects[0].Slug != "alpha" || projects[1].Slug != "alpha-2" {
		t.Fatalf("slugs: %q %q", projects[0].Slug, projects[1].Slug)
	}
}

func TestBuildProjectsNoIdentifiers(t *testing.T) {
	projects := BuildProjects([]Row{{"Client": "Acme"}}, designIndex(), "/cms/")
	if projects[0].ID == "" || projects[0].Slug == "" {
		t.Fatalf("empty identifiers: %+v", projects[0])
	}
}
