package cms

import "presbuilder/internal"

// BuildClients maps client-sheet rows. No cross-references.
func BuildClients(rows []Row, assetBase string) []internal.Client {
	out := make([]internal.Client, 0, len(rows))
	slugs := slugSet{}
	for _, row := range rows {
		title := clientFields.get(row, "title")
		out = append(out, internal.Client{
			Title:   title,
			Slug:    slugs.claim(Slugify(clientFields.get(row, "slug"), title)),
			Logo:    AsImageURL(clientFields.get(row, "logo"), assetBase),
			Created: clientFields.get(row, "created"),
			Edited:  clientFields.get(row, "edited"),
		})
	}
	return out
}
