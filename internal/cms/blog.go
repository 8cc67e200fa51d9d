package cms

import (
	"sort"
	"strings"
	"time"

	"presbuilder/internal"
)

// blogDateLayouts are the date spellings seen across export revisions.
// Anything else parses as the epoch and sorts last.
var blogDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02.01.2006",
	"January 2, 2006",
}

// BuildBlog maps blog-sheet rows into posts: slug-derived ids, next
// references resolved from sequence number to slug, and the collection
// sorted by date descending with unparsable dates last. Unresolvable next
// references are dropped, never surfaced.
func BuildBlog(rows []Row, assetBase string) []internal.BlogPost {
	type pre struct {
		post     internal.BlogPost
		nextNums []string
	}

	slugs := slugSet{}
	pres := make([]pre, 0, len(rows))
	byNumber := map[string]int{}
	for _, row := range rows {
		slug := slugs.claim(Slugify(blogFields.get(row, "slug"), blogFields.get(row, "title")))
		p := pre{
			post: internal.BlogPost{
				ID:          slug,
				Slug:        slug,
				Number:      blogFields.get(row, "number"),
				Title:       blogFields.get(row, "title"),
				Cover:       AsImageURL(blogFields.get(row, "cover"), assetBase),
				CoverAlt:    blogFields.get(row, "coverAlt"),
				Date:        blogFields.get(row, "date"),
				Author:      blogFields.get(row, "author"),
				ContentHTML: blogFields.get(row, "content"),
				Next:        []string{},
				Created:     blogFields.get(row, "created"),
				Edited:      blogFields.get(row, "edited"),
			},
		}
		for _, field := range []string{"next1", "next2", "next3"} {
			if ref := blogFields.get(row, field); ref != "" {
				p.nextNums = append(p.nextNums, ref)
			}
		}
		if p.post.Number != "" {
			if _, taken := byNumber[p.post.Number]; !taken {
				byNumber[p.post.Number] = len(pres)
			}
		}
		pres = append(pres, p)
	}

	out := make([]internal.BlogPost, 0, len(pres))
	for _, p := range pres {
		for _, num := range p.nextNums {
			if i, ok := byNumber[strings.TrimSpace(num)]; ok {
				p.post.Next = append(p.post.Next, pres[i].post.Slug)
			}
		}
		out = append(out, p.post)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return parseBlogDate(out[i].Date).After(parseBlogDate(out[j].Date))
	})
	return out
}

func parseBlogDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range blogDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}
