package views

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/indigoandlavender/slow-tunisia/content"
	"github.com/indigoandlavender/slow-tunisia/geo"
)

// PlaceEntries reduces place summaries to mappable entries.
func PlaceEntries(places []content.PlaceSummary) []geo.Entry {
	out := make([]geo.Entry, 0, len(places))
	for _, p := range places {
		out = append(out, geo.Entry{Slug: p.Slug, Title: p.Name, Region: p.Region})
	}
	return out
}

// StoryEntries reduces story summaries to mappable entries.
func StoryEntries(stories []content.StorySummary) []geo.Entry {
	out := make([]geo.Entry, 0, len(stories))
	for _, s := range stories {
		out = append(out, geo.Entry{Slug: s.Slug, Title: s.Title, Subtitle: s.Subtitle, Category: s.Category, Region: s.Region})
	}
	return out
}

// linkBase returns the path prefix a map entry links under.
func linkBase(e geo.Entry) string {
	if e.Category != "" {
		return "/story/"
	}
	return "/places/"
}

// writeMapSection emits the interactive map: a container carrying the
// cluster payload for the client script, with the region-grouped text
// listing rendered inside as the fallback. The script upgrades the
// container in place when the mapping library loads; on any failure the
// listing simply stays.
func writeMapSection(buf *bytes.Buffer, entries []geo.Entry) {
	if len(entries) == 0 {
		buf.WriteString(`<div class="map-empty"><p>No stories to display on map</p></div>`)
		return
	}

	clusters := geo.Clusters(geo.Locate(entries))
	payload, err := json.Marshal(clusters)
	if err != nil {
		payload = []byte("[]")
	}

	buf.WriteString(`<section class="map-section"><p class="section-kicker">Explore by Location</p>`)
	buf.WriteString(`<div class="tunisia-map" data-clusters="` + esc(string(payload)) + `">`)
	writeMapFallback(buf, entries)
	buf.WriteString("</div>")
	buf.WriteString(`<script src="/public/map.js" defer></script>`)
	buf.WriteString("</section>")
}

// writeMapFallback emits the static region-grouped listing used before the
// client map is ready and whenever it fails.
func writeMapFallback(buf *bytes.Buffer, entries []geo.Entry) {
	groups := geo.GroupByRegion(entries)
	if len(groups) > geo.MaxFallbackRegions {
		groups = groups[:geo.MaxFallbackRegions]
	}
	buf.WriteString(`<div class="map-fallback"><p class="section-kicker">Stories by Region</p><div class="map-fallback-grid">`)
	for _, g := range groups {
		buf.WriteString(`<div class="map-fallback-region"><h3>` + esc(g.Region) + `</h3><ul>`)
		for _, e := range g.Visible() {
			buf.WriteString(`<li><a href="` + linkBase(e) + esc(e.Slug) + `">` + esc(e.Title) + `</a></li>`)
		}
		if n := g.Overflow(); n > 0 {
			buf.WriteString(`<li class="map-fallback-more">+ ` + strconv.Itoa(n) + ` more</li>`)
		}
		buf.WriteString("</ul></div>")
	}
	buf.WriteString("</div></div>")
}
