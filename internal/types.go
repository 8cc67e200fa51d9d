package internal

// Project is one case-study entry from the work sheet. Categories and
// services are mutually derivable: see cms.BuildProjects.
type Project struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Solution      string   `json:"solution,omitempty"`
	BulletPoints  []string `json:"bulletPoints"`
	Categories    []string `json:"categories"`
	Images        []string `json:"images"`
	Client        string   `json:"client"`
	Year          string   `json:"year"`
	Location      string   `json:"location,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	Collaborators string   `json:"collaborators,omitempty"`
	Stat1         string   `json:"stat1,omitempty"`
	Stat2         string   `json:"stat2,omitempty"`
	Services      []string `json:"services"`
	Next          []string `json:"next"`
	Created       string   `json:"created"`
	Edited        string   `json:"edited"`
}

// Category is keyed by display title; ID == Title. Declared rows from the
// categories sheet carry blurb/expertise/stats, stub entries inferred from
// project references carry the title only.
type Category struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Blurb            string   `json:"blurb"`
	Expertise        []string `json:"expertise"`
	Stats            []string `json:"stats"`
	StatsTitle       string   `json:"statsTitle,omitempty"`
	StatsDescription string   `json:"statsDescription,omitempty"`
}

// BlogPost is keyed by slug; Number is the sheet's sequence number and is
// only used to resolve next-post references.
type BlogPost struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Number      string   `json:"number"`
	Title       string   `json:"title"`
	Cover       string   `json:"cover"`
	CoverAlt    string   `json:"coverAlt"`
	Date        string   `json:"date"`
	Author      string   `json:"author"`
	ContentHTML string   `json:"contentHTML"`
	Next        []string `json:"next"`
	Created     string   `json:"created"`
	Edited      string   `json:"edited"`
}

type Client struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Logo    string `json:"logo"`
	Created string `json:"created"`
	Edited  string `json:"edited"`
}

type TeamMember struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Role      string   `json:"role"`
	Expertise []string `json:"expertise"`
	LinkedIn  string   `json:"linkedin"`
	Mail      string   `json:"mail"`
	Images    []string `json:"images"`
	Created   string   `json:"created"`
	Edited    string   `json:"edited"`
}

// ContentDocument is the aggregate built once per pipeline run and treated
// as read-only by every consumer. The five keys are the wire contract with
// the UI; list-valued fields are always arrays, never null.
type ContentDocument struct {
	Categories []Category   `json:"categories"`
	Projects   []Project    `json:"projects"`
	Blog       []BlogPost   `json:"blog"`
	Clients    []Client     `json:"clients"`
	Team       []TeamMember `json:"team"`
}

// Empty reports whether every collection is empty. An all-empty document is
// never persisted: it would overwrite a valid prior output with nothing.
func (d ContentDocument) Empty() bool {
	return len(d.Categories) == 0 && len(d.Projects) == 0 && len(d.Blog) == 0 &&
		len(d.Clients) == 0 && len(d.Team) == 0
}

// CategoryByID returns nil when no category matches; renderers substitute
// placeholder copy in that case.
func (d *ContentDocument) CategoryByID(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}

func (d *ContentDocument) ProjectByID(id string) *Project {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return &d.Projects[i]
		}
	}
	return nil
}
