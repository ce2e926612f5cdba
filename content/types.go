// Package content turns raw spreadsheet rows into the typed payloads served
// by the API and rendered by the pages: a catalogue of Places and editorial
// Stories, each a transient projection recomputed from the sheet source.
package content

// PlaceSummary is the card-view subset of a Place used on index pages.
type PlaceSummary struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	HeroImage string `json:"heroImage"`
	Excerpt   string `json:"excerpt"`
}

// Destination is a child of a Place, joined by place slug.
type Destination struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Place is the full detail payload for one place.
type Place struct {
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	Region       string        `json:"region"`
	RegionID     string        `json:"regionId"`
	HeroImage    string        `json:"heroImage"`
	Excerpt      string        `json:"excerpt"`
	Body         string        `json:"body"`
	Highlights   []string      `json:"highlights"`
	BestTime     string        `json:"bestTime"`
	Destinations []Destination `json:"destinations"`
}

// StorySummary is the card-view subset of a Story used on index pages.
type StorySummary struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Category  string `json:"category"`
	Region    string `json:"region"`
	HeroImage string `json:"heroImage"`
	Excerpt   string `json:"excerpt"`
	ReadTime  string `json:"readTime"`
	Featured  bool   `json:"featured"`
}

// StoryImage is a child of a Story, joined by story slug and ordered
// ascending within the story.
type StoryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Alt     string `json:"alt"`
}

// Story is the full detail payload for one story. Body carries the inline
// markup dialect parsed by the storybody package.
type Story struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Category    string       `json:"category"`
	Region      string       `json:"region"`
	HeroImage   string       `json:"heroImage"`
	HeroCaption string       `json:"heroCaption"`
	Excerpt     string       `json:"excerpt"`
	Body        string       `json:"body"`
	ReadTime    string       `json:"readTime"`
	Author      string       `json:"author"`
	Sources     string       `json:"sources"`
	Images      []StoryImage `json:"images"`
}
