package cms

import (
	"presbuilder/internal"
)

const maxNextRefs = 3

// BuildProjects maps work-sheet rows into project records. The combined
// services cell is reconciled against the declared-categories index: a
// token naming a known category expands to that category's full service
// list, a token naming a known service records the owning category along
// with the service itself, and anything else is kept as a free-text
// service. Projects that end up with services but no categories derive
// their categories from the services' owners.
func BuildProjects(rows []Row, idx *ServiceIndex, assetBase string) []internal.Project {
	out := make([]internal.Project, 0, len(rows))
	slugs := slugSet{}
	for _, row := range rows {
		p := buildProject(row, idx, assetBase)
		p.Slug = slugs.claim(p.Slug)
		out = append(out, p)
	}
	return out
}

func buildProject(row Row, idx *ServiceIndex, assetBase string) internal.Project {
	title := projectFields.get(row, "title")
	id := projectFields.get(row, "id")
	if id == "" {
		id = Slugify(projectFields.get(row, "slug"), "")
	}

	categories := newOrderedSet()
	for _, c := range SplitList(projectFields.get(row, "categories")) {
		categories.add(c)
	}

	services := newOrderedSet()
	combined := append(
		SplitList(projectFields.get(row, "services")),
		SplitList(projectFields.get(row, "services2"))...,
	)
	for _, token := range combined {
		if catTitle, ok := idx.CategoryTitle(token); ok {
			categories.add(catTitle)
			for _, svc := range idx.ServicesFor(catTitle) {
				services.add(svc)
			}
			continue
		}
		if owner, svc, ok := idx.OwnerOfService(token); ok {
			categories.add(owner)
			services.add(svc)
			continue
		}
		services.add(token)
	}

	// A project with known services but no categories gets them from the
	// reverse map; misses are simply skipped.
	if categories.empty() && !services.empty() {
		for _, svc := range services.values() {
			if owner, _, ok := idx.OwnerOfService(svc); ok {
				categories.add(owner)
			}
		}
	}

	images := []string{}
	for _, field := range []string{"cover", "image1", "image2", "image3", "image4"} {
		if img := AsImageURL(projectFields.get(row, field), assetBase); img != "" {
			images = append(images, img)
		}
	}

	next := []string{}
	for _, field := range []string{"next1", "next2", "next3"} {
		if ref := projectFields.get(row, field); ref != "" && len(next) < maxNextRefs {
			next = append(next, ref)
		}
	}

	return internal.Project{
		ID:            id,
		Slug:          Slugify(projectFields.get(row, "slug"), firstNonEmpty(title, id)),
		Title:         title,
		Excerpt:       projectFields.get(row, "excerpt"),
		Solution:      projectFields.get(row, "solution"),
		BulletPoints:  ExtractBullets(projectFields.get(row, "results")),
		Categories:    categories.values(),
		Images:        images,
		Client:        projectFields.get(row, "client"),
		Year:          projectFields.get(row, "year"),
		Location:      projectFields.get(row, "location"),
		Industry:      projectFields.get(row, "industry"),
		Collaborators: projectFields.get(row, "collaborators"),
		Stat1:         projectFields.get(row, "stat1"),
		Stat2:         projectFields.get(row, "stat2"),
		Services:      services.values(),
		Next:          next,
		Created:       projectFields.get(row, "created"),
		Edited:        projectFields.get(row, "edited"),
	}
}

// orderedSet keeps first-insertion order with case-insensitive dedup, so
// expanding a category to its services never doubles a service the cell
// also names directly.
type orderedSet struct {
	keys map[string]struct{}
	list []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{keys: map[string]struct{}{}, list: []string{}}
}

func (s *orderedSet) add(v string) {
	key := lookupKey(v)
	if _, ok := s.keys[key]; ok {
		return
	}
	s.keys[key] = struct{}{}
	s.list = append(s.list, v)
}

func (s *orderedSet) empty() bool      { return len(s.list) == 0 }
func (s *orderedSet) values() []string { return s.list }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
