package views

import (
	"bytes"

	"github.com/indigoandlavender/slow-tunisia/content"
)

// writePlaceCard emits one place card for the index grid.
func writePlaceCard(buf *bytes.Buffer, p content.PlaceSummary) {
	buf.WriteString(`<a class="card" href="/places/` + esc(p.Slug) + `"><article>`)
	writeCardImage(buf, p.HeroImage, p.Name)
	buf.WriteString(`<div class="card-body">`)
	buf.WriteString(`<p class="card-kicker">` + esc(p.Region) + `</p>`)
	buf.WriteString(`<h3 class="card-title">` + esc(p.Name) + `</h3>`)
	buf.WriteString(`<p class="card-excerpt">` + esc(p.Excerpt) + `</p>`)
	buf.WriteString("</div></article></a>")
}

// writeStoryCard emits one story card for the index grids.
func writeStoryCard(buf *bytes.Buffer, s content.StorySummary) {
	buf.WriteString(`<a class="card" href="/story/` + esc(s.Slug) + `"><article>`)
	writeCardImage(buf, s.HeroImage, s.Title)
	buf.WriteString(`<div class="card-body">`)
	buf.WriteString(`<p class="card-kicker">` + readingLine(esc(s.Category), esc(s.ReadTime)) + `</p>`)
	buf.WriteString(`<h3 class="card-title">` + esc(s.Title) + `</h3>`)
	buf.WriteString(`<p class="card-excerpt">` + esc(s.Excerpt) + `</p>`)
	buf.WriteString("</div></article></a>")
}

// writeCardImage emits the card hero, or a neutral placeholder when the row
// carries no image.
func writeCardImage(buf *bytes.Buffer, src, alt string) {
	buf.WriteString(`<div class="card-image">`)
	if src != "" {
		buf.WriteString(`<img src="` + esc(src) + `" alt="` + esc(alt) + `" loading="lazy"/>`)
	} else {
		buf.WriteString(`<div class="card-image-placeholder"></div>`)
	}
	buf.WriteString("</div>")
}
