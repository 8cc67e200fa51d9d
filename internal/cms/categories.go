package cms

import (
	"strings"

	"presbuilder/internal"
)

const maxCategoryStats = 3

// ServiceIndex is built from the declared-categories sheet and answers the
// two lookups behind category/service reconciliation: category title to its
// member services, and service name to its owning category title. Lookups
// are case- and whitespace-insensitive; display spellings come from the
// declared side.
type ServiceIndex struct {
	declared        []internal.Category
	titleByKey      map[string]string   // normalized title -> display title
	servicesByTitle map[string][]string // display title -> member services
	ownerByService  map[string]serviceRef
}

type serviceRef struct {
	category string
	service  string
}

// NewServiceIndex ingests the declared-categories rows. Rows without a
// title are dropped; duplicate titles keep the first declaration.
func NewServiceIndex(rows []Row) *ServiceIndex {
	idx := &ServiceIndex{
		titleByKey:      map[string]string{},
		servicesByTitle: map[string][]string{},
		ownerByService:  map[string]serviceRef{},
	}
	for _, row := range rows {
		title := categoryFields.get(row, "title")
		if title == "" {
			continue
		}
		key := lookupKey(title)
		if _, seen := idx.titleByKey[key]; seen {
			continue
		}
		idx.titleByKey[key] = title

		services := SplitList(categoryFields.get(row, "services"))
		idx.servicesByTitle[title] = services
		for _, svc := range services {
			if _, taken := idx.ownerByService[lookupKey(svc)]; !taken {
				idx.ownerByService[lookupKey(svc)] = serviceRef{category: title, service: svc}
			}
		}

		stats := SplitList(categoryFields.get(row, "stats"))
		if len(stats) > maxCategoryStats {
			stats = stats[:maxCategoryStats]
		}
		idx.declared = append(idx.declared, internal.Category{
			ID:               title,
			Title:            title,
			Blurb:            categoryFields.get(row, "blurb"),
			Expertise:        SplitList(categoryFields.get(row, "expertise")),
			Stats:            stats,
			StatsTitle:       categoryFields.get(row, "statsTitle"),
			StatsDescription: categoryFields.get(row, "statsDescription"),
		})
	}
	return idx
}

// CategoryTitle resolves a free-text token against declared category
// titles.
func (idx *ServiceIndex) CategoryTitle(token string) (string, bool) {
	title, ok := idx.titleByKey[lookupKey(token)]
	return title, ok
}

// ServicesFor returns the declared member services of a category title.
func (idx *ServiceIndex) ServicesFor(title string) []string {
	return idx.servicesByTitle[title]
}

// OwnerOfService resolves a free-text token against declared service names,
// returning the owning category title and the declared service spelling.
func (idx *ServiceIndex) OwnerOfService(token string) (category, service string, ok bool) {
	ref, ok := idx.ownerByService[lookupKey(token)]
	if !ok {
		return "", "", false
	}
	return ref.category, ref.service, true
}

// BuildCategories merges the index's declared categories with stub entries
// for every category id referenced by a project but absent from the sheet.
// Declared data always wins; stubs carry the title only, in first-reference
// order after the declared block.
func BuildCategories(idx *ServiceIndex, projects []internal.Project) []internal.Category {
	out := make([]internal.Category, len(idx.declared))
	copy(out, idx.declared)

	seen := map[string]struct{}{}
	for _, c := range out {
		seen[lookupKey(c.Title)] = struct{}{}
	}
	for _, p := range projects {
		for _, title := range p.Categories {
			key := lookupKey(title)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, internal.Category{
				ID:        title,
				Title:     title,
				Blurb:     "",
				Expertise: []string{},
				Stats:     []string{},
			})
		}
	}
	return out
}

func lookupKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
