package cms

import "presbuilder/internal"

// BuildTeam maps team-sheet rows. Headers on this sheet are historically
// Norwegian-first (navn, stilling, hovedbilde), hence the variant order in
// teamFields.
func BuildTeam(rows []Row, assetBase string) []internal.TeamMember {
	out := make([]internal.TeamMember, 0, len(rows))
	slugs := slugSet{}
	for _, row := range rows {
		name := teamFields.get(row, "name")

		images := []string{}
		for _, field := range []string{"imageMain", "imageExtra"} {
			if img := AsImageURL(teamFields.get(row, field), assetBase); img != "" {
				images = append(images, img)
			}
		}

		out = append(out, internal.TeamMember{
			Name:      name,
			Slug:      slugs.claim(Slugify(teamFields.get(row, "slug"), name)),
			Role:      teamFields.get(row, "role"),
			Expertise: SplitList(teamFields.get(row, "expertise")),
			LinkedIn:  teamFields.get(row, "linkedin"),
			Mail:      teamFields.get(row, "mail"),
			Images:    images,
			Created:   teamFields.get(row, "created"),
			Edited:    teamFields.get(row, "edited"),
		})
	}
	return out
}
