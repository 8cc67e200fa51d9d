package cms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildTeamNorwegianHeaders(t *testing.T) {
	rows := []Row{{
		"Navn":        "Ola Nordmann",
		"Stilling":    "Designer",
		"Ekspertise":  "UX, Innsikt",
		"LinkedIn":    "https://linkedin.com/in/ola",
		"E-post":      "ola@example.com",
		"Hovedbilde":  "ola.jpg",
		"Ekstrabilde": "ola-2.jpg",
	}}
	team := BuildTeam(rows, "/cms/")
	m := team[0]

	if m.Name != "Ola Nordmann" || m.Role != "Designer" || m.Mail != "ola@example.com" {
		t.Fatalf("member: %+v", m)
	}
	if m.Slug != "ola-nordmann" {
		t.Fatalf("slug=%q", m.Slug)
	}
	if diff := cmp.Diff([]string{"UX", "Innsikt"}, m.Expertise); diff != "" {
		t.Fatalf("expertise (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/cms/ola.jpg", "/cms/ola-2.jpg"}, m.Images); diff != "" {
		t.Fatalf("images (-want +got):\n%s", diff)
	}
}

func TestBuildTeamImagesAlwaysArray(t *testing.T) {
	team := BuildTeam([]Row{{"Navn": "Kari"}}, "/cms/")
	if team[0].Images == nil || len(team[0].Images) != 0 {
		t.Fatalf("images: %v", team[0].Images)
	}
}

func TestBuildClients(t *testing.T) {
	rows := []Row{
		{"Title": "Acme", "Logo": "acme.svg"},
		{"Title": "Acme"},
	}
	clients := BuildClients(rows, "/cms/")
	if clients[0].Logo != "/cms/acme.svg" {
		t.Fatalf("logo=%q", clients[0].Logo)
	}
	if clients[0].Slug != "acme" || clients[1].Slug != "acme-2" {
		t.Fatalf("slugs: %q %q", clients[0].Slug, clients[1].Slug)
	}
}
