package deck

import (
	"fmt"
	"html"
	"strings"

	"presbuilder/internal"
)

// HTMLRenderer is the static-export surface: a single self-contained
// document, one A4 page per slide, all styling inline so the file is
// portable with no external dependencies.
type HTMLRenderer struct{}

const pageStyles = `*{box-sizing:border-box} body{margin:0;background:#f5f5f5;font-family:system-ui,-apple-system,Segoe UI,Roboto} .page{width:210mm;height:297mm;background:#fff;margin:8mm auto;padding:16mm;page-break-after:always;border-radius:12px;box-shadow:0 5px 30px rgba(0,0,0,.08)} @media print{body{background:#fff} .page{margin:0;box-shadow:none;border-radius:0}}`

func (HTMLRenderer) RenderDeck(slides []Slide, doc *internal.ContentDocument) string {
	var pages strings.Builder
	for _, s := range slides {
		pages.WriteString(`<div class="page">` + (HTMLRenderer{}).RenderSlide(s, doc) + `</div>`)
	}
	return `<!doctype html><html><head><meta charset="utf-8"/>` +
		`<meta name="viewport" content="width=device-width,initial-scale=1"/>` +
		`<title>Rapport</title><style>` + pageStyles + `</style></head><body>` +
		pages.String() + `</body></html>`
}

func (HTMLRenderer) RenderSlide(slide Slide, doc *internal.ContentDocument) string {
	switch slide.Kind {
	case KindCover:
		sub := ""
		if slide.Subtitle != "" {
			sub = fmt.Sprintf(`<div style="color:#525252;margin-top:8px;font-size:20px">%s</div>`, html.EscapeString(slide.Subtitle))
		}
		return fmt.Sprintf(`<div style="display:grid;place-items:center;height:100%%"><div style="text-align:center"><div style="font-size:48px;font-weight:600">%s</div>%s</div></div>`,
			html.EscapeString(slide.Title), sub)

	case KindOutro:
		title := slide.Title
		if title == "" {
			title = outroReport
		}
		return fmt.Sprintf(`<div style="display:grid;place-items:center;height:100%%"><div style="font-size:48px;font-weight:600">%s</div></div>`,
			html.EscapeString(title))

	case KindCategory:
		return fmt.Sprintf(`<div><div style="font-size:28px;font-weight:600">%s</div><p style="margin-top:8px;color:#444;font-size:18px;max-width:700px">%s</p></div>`,
			html.EscapeString(categoryTitle(doc, slide.CategoryID)),
			html.EscapeString(categoryBlurb(doc, slide.CategoryID)))

	case KindExpertise:
		var items strings.Builder
		if cat := doc.CategoryByID(slide.CategoryID); cat != nil {
			for _, e := range cat.Expertise {
				fmt.Fprintf(&items, `<div style="font-size:18px;color:#444;margin-top:8px">• %s</div>`, html.EscapeString(e))
			}
		}
		return fmt.Sprintf(`<div><div style="font-size:28px;font-weight:600;margin-bottom:24px">%s</div><div style="display:grid;grid-template-columns:1fr 1fr;gap:16px">%s</div></div>`,
			html.EscapeString(expertiseHeading), items.String())

	case KindStats:
		var cells strings.Builder
		heading := statsHeading
		if cat := doc.CategoryByID(slide.CategoryID); cat != nil {
			if cat.StatsTitle != "" {
				heading = cat.StatsTitle
			}
			for _, raw := range cat.Stats {
				stat := SplitCategoryStat(raw)
				if stat.Number != "" {
					fmt.Fprintf(&cells, `<div style="text-align:center"><div style="font-size:56px;font-weight:600">%s%s</div><div style="color:#525252;margin-top:4px">%s</div></div>`,
						html.EscapeString(stat.Number), html.EscapeString(stat.Sign), html.EscapeString(stat.Text))
				} else {
					fmt.Fprintf(&cells, `<div style="text-align:center;font-size:20px">%s</div>`, html.EscapeString(stat.Text))
				}
			}
		}
		return fmt.Sprintf(`<div style="display:flex;flex-direction:column;height:100%%"><div style="font-size:36px;font-weight:600;text-align:center;margin-bottom:32px">%s</div><div style="display:grid;grid-template-columns:1fr 1fr 1fr;gap:24px;align-items:center;flex:1">%s</div></div>`,
			html.EscapeString(heading), cells.String())

	case KindClients:
		var logos strings.Builder
		for _, c := range doc.Clients {
			if c.Logo != "" {
				fmt.Fprintf(&logos, `<div style="display:grid;place-items:center"><img src="%s" alt="%s" style="max-width:100%%;max-height:64px;object-fit:contain"/></div>`,
					html.EscapeString(c.Logo), html.EscapeString(c.Title))
			} else {
				fmt.Fprintf(&logos, `<div style="display:grid;place-items:center;font-size:18px;color:#444">%s</div>`, html.EscapeString(c.Title))
			}
		}
		return fmt.Sprintf(`<div><div style="font-size:28px;font-weight:600;margin-bottom:24px">%s</div><div style="display:grid;grid-template-columns:1fr 1fr 1fr;gap:24px">%s</div></div>`,
			html.EscapeString(clientsHeading), logos.String())

	case KindProject:
		proj := doc.ProjectByID(slide.ProjectID)
		if proj == nil {
			return fmt.Sprintf(`<div style="display:grid;place-items:center;height:100%%"><div style="font-size:24px;font-weight:600;color:#999">%s</div></div>`,
				html.EscapeString(placeholderProject))
		}

		var body strings.Builder
		if len(proj.BulletPoints) > 0 {
			for _, p := range proj.BulletPoints {
				fmt.Fprintf(&body, `<p style="margin-top:8px;color:#444;font-size:18px">%s</p>`, html.EscapeString(p))
			}
		} else {
			fmt.Fprintf(&body, `<p style="margin-top:8px;color:#444;font-size:18px">%s</p>`, html.EscapeString(proj.Excerpt))
			if proj.Solution != "" {
				fmt.Fprintf(&body, `<p style="margin-top:8px;color:#444;font-size:18px">%s</p>`, html.EscapeString(proj.Solution))
			}
		}

		var stats strings.Builder
		for _, raw := range []string{proj.Stat1, proj.Stat2} {
			if raw == "" {
				continue
			}
			stat := SplitProjectStat(raw)
			if stat.Number != "" {
				fmt.Fprintf(&stats, `<div><span style="font-size:40px;font-weight:700">%s%s</span> <span style="color:#444">%s</span></div>`,
					html.EscapeString(stat.Number), html.EscapeString(stat.Sign), html.EscapeString(stat.Text))
			} else {
				fmt.Fprintf(&stats, `<div style="font-weight:700">%s</div>`, html.EscapeString(stat.Text))
			}
		}

		var meta strings.Builder
		writeMeta := func(label, value string) {
			if value != "" {
				fmt.Fprintf(&meta, `<p style="margin:2px 0;font-style:italic">%s: <strong>%s</strong></p>`,
					label, html.EscapeString(value))
			}
		}
		writeMeta("Klient", proj.Client)
		writeMeta("Lokasjon", proj.Location)
		writeMeta("År", proj.Year)
		writeMeta("Industri", proj.Industry)

		var imgs strings.Builder
		for _, src := range firstN(proj.Images, 2) {
			fmt.Fprintf(&imgs, `<div style="background:#eee;border-radius:12px;overflow:hidden;aspect-ratio:4/3"><img src="%s" style="width:100%%;height:100%%;object-fit:cover"/></div>`,
				html.EscapeString(src))
		}

		return fmt.Sprintf(`<div style="display:grid;grid-template-columns:1fr 1fr;gap:16px;align-items:center"><div><div style="font-size:24px;font-weight:600">%s</div>%s<div style="margin-top:16px">%s</div><div style="margin-top:16px;color:#525252;font-size:14px">%s</div></div><div style="display:grid;grid-template-columns:1fr 1fr;gap:12px">%s</div></div>`,
			html.EscapeString(proj.Title), body.String(), stats.String(), meta.String(), imgs.String())
	}
	return ""
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
