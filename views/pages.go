package views

import (
	"bytes"
	"strings"

	"github.com/a-h/templ"

	"github.com/indigoandlavender/slow-tunisia/content"
	"github.com/indigoandlavender/slow-tunisia/storybody"
)

// Home renders the landing page: an introduction, featured stories, and the
// first few places.
func Home(cfg SiteConfig, places []content.PlaceSummary, stories []content.StorySummary) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := PageMeta{URL: buildURL(cfg.URL), OGType: "website"}
		page(buf, cfg, meta, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="hero"><h1>` + esc(cfg.Name) + `</h1>`)
			buf.WriteString(`<p class="hero-lede">` + esc(cfg.Description) + `</p></section>`)

			var featured []content.StorySummary
			for _, s := range stories {
				if s.Featured {
					featured = append(featured, s)
				}
			}
			if len(featured) > 0 {
				buf.WriteString(`<section class="grid-section"><h2 class="section-kicker">Featured Stories</h2><div class="card-grid">`)
				for _, s := range featured {
					writeStoryCard(buf, s)
				}
				buf.WriteString("</div></section>")
			}
			if len(places) > 0 {
				if len(places) > 3 {
					places = places[:3]
				}
				buf.WriteString(`<section class="grid-section"><h2 class="section-kicker">Places</h2><div class="card-grid">`)
				for _, p := range places {
					writePlaceCard(buf, p)
				}
				buf.WriteString("</div></section>")
			}
		})
	})
}

// Places renders the places index: hero, location map, and the card grid.
func Places(cfg SiteConfig, places []content.PlaceSummary) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := PageMeta{Title: "Places", URL: buildURL(cfg.URL, "places")}
		page(buf, cfg, meta, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="hero"><h1>Places</h1>`)
			buf.WriteString(`<p class="hero-lede">Tunisia stretches from Mediterranean cliffs to Saharan dunes, with three thousand years of civilization layered between.</p></section>`)
			if len(places) > 0 {
				writeMapSection(buf, PlaceEntries(places))
			}
			buf.WriteString(`<section class="grid-section"><div class="card-grid">`)
			for _, p := range places {
				writePlaceCard(buf, p)
			}
			buf.WriteString("</div>")
			if len(places) == 0 {
				buf.WriteString(`<div class="empty-state"><p>Places coming soon.</p></div>`)
			}
			buf.WriteString("</section>")
		})
	})
}

// Place renders a place detail page. Each section is skipped when its data
// is absent, so a sparse row still renders cleanly.
func Place(cfg SiteConfig, p content.Place) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := PageMeta{
			Title:       p.Name,
			Description: p.Excerpt,
			URL:         buildURL(cfg.URL, "places", p.Slug),
			Image:       p.HeroImage,
			OGType:      "article",
		}
		page(buf, cfg, meta, func(buf *bytes.Buffer) {
			writeDetailHero(buf, p.HeroImage, p.Name)
			buf.WriteString(`<article class="detail">`)
			buf.WriteString(`<p class="section-kicker">` + esc(p.Region) + `</p>`)
			buf.WriteString(`<h1>` + esc(p.Name) + `</h1>`)
			buf.WriteString(`<p class="detail-lede">` + esc(p.Excerpt) + `</p>`)
			if p.Body != "" {
				buf.WriteString(`<div class="detail-body">`)
				for _, para := range strings.Split(p.Body, "\n\n") {
					if t := strings.TrimSpace(para); t != "" {
						buf.WriteString("<p>" + esc(t) + "</p>")
					}
				}
				buf.WriteString("</div>")
			}
			if len(p.Highlights) > 0 {
				buf.WriteString(`<section class="detail-section"><h2 class="section-kicker">Highlights</h2><ul class="highlights">`)
				for _, h := range p.Highlights {
					buf.WriteString("<li>" + esc(h) + "</li>")
				}
				buf.WriteString("</ul></section>")
			}
			if len(p.Destinations) > 0 {
				buf.WriteString(`<section class="detail-section"><h2 class="section-kicker">Destinations</h2><ul class="destinations">`)
				for _, d := range p.Destinations {
					buf.WriteString(`<li><span class="destination-name">` + esc(d.Name) + `</span>`)
					if d.Type != "" {
						buf.WriteString(`<span class="destination-type">` + esc(d.Type) + `</span>`)
					}
					if d.Description != "" {
						buf.WriteString(`<p>` + esc(d.Description) + `</p>`)
					}
					buf.WriteString("</li>")
				}
				buf.WriteString("</ul></section>")
			}
			if p.BestTime != "" {
				buf.WriteString(`<section class="detail-section"><h2 class="section-kicker">Best Time to Visit</h2><p>` + esc(p.BestTime) + `</p></section>`)
			}
			buf.WriteString(`<p class="back-link"><a href="/places">All Places</a></p>`)
			buf.WriteString("</article>")
		})
	})
}

// Stories renders the stories index: featured stories first, then the rest.
func Stories(cfg SiteConfig, featured, regular []content.StorySummary) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := PageMeta{Title: "Stories", URL: buildURL(cfg.URL, "stories")}
		page(buf, cfg, meta, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="hero"><h1>Stories</h1>`)
			buf.WriteString(`<p class="hero-lede">Tunisia beyond the postcard. The blue that isn't Greek. The doors that ward off djinn.</p></section>`)
			if len(featured) > 0 {
				buf.WriteString(`<section class="grid-section"><h2 class="section-kicker">Featured</h2><div class="card-grid card-grid-wide">`)
				for _, s := range featured {
					writeStoryCard(buf, s)
				}
				buf.WriteString("</div></section>")
			}
			buf.WriteString(`<section class="grid-section">`)
			if len(featured) > 0 && len(regular) > 0 {
				buf.WriteString(`<h2 class="section-kicker">All Stories</h2>`)
			}
			buf.WriteString(`<div class="card-grid">`)
			for _, s := range regular {
				writeStoryCard(buf, s)
			}
			buf.WriteString("</div>")
			if len(featured) == 0 && len(regular) == 0 {
				buf.WriteString(`<div class="empty-state"><p>Stories coming soon.</p></div>`)
			}
			buf.WriteString("</section>")
		})
	})
}

// Story renders a story detail page with its parsed body and gallery.
func Story(cfg SiteConfig, s content.Story) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := PageMeta{
			Title:       s.Title,
			Description: s.Excerpt,
			URL:         buildURL(cfg.URL, "story", s.Slug),
			Image:       s.HeroImage,
			OGType:      "article",
		}
		page(buf, cfg, meta, func(buf *bytes.Buffer) {
			writeDetailHero(buf, s.HeroImage, s.Title)
			buf.WriteString(`<article class="detail story">`)
			buf.WriteString(`<p class="section-kicker">` + readingLine(esc(s.Category), esc(s.ReadTime)) + `</p>`)
			buf.WriteString(`<h1>` + esc(s.Title) + `</h1>`)
			if s.Subtitle != "" {
				buf.WriteString(`<p class="detail-lede">` + esc(s.Subtitle) + `</p>`)
			}
			if s.Author != "" {
				buf.WriteString(`<p class="story-byline">By ` + esc(s.Author) + `</p>`)
			}
			if s.HeroCaption != "" {
				buf.WriteString(`<p class="hero-caption">` + esc(s.HeroCaption) + `</p>`)
			}
			storybody.Render(buf, s.Body)
			if len(s.Images) > 0 {
				buf.WriteString(`<section class="detail-section story-gallery">`)
				for _, img := range s.Images {
					if img.URL == "" {
						continue
					}
					buf.WriteString(`<figure><img src="` + esc(img.URL) + `" alt="` + esc(img.Alt) + `" loading="lazy"/>`)
					if img.Caption != "" {
						buf.WriteString("<figcaption>" + esc(img.Caption) + "</figcaption>")
					}
					buf.WriteString("</figure>")
				}
				buf.WriteString("</section>")
			}
			if s.Sources != "" {
				buf.WriteString(`<section class="detail-section story-sources"><h2 class="section-kicker">Sources</h2><p>` + esc(s.Sources) + `</p></section>`)
			}
			buf.WriteString(`<p class="back-link"><a href="/stories">All Stories</a></p>`)
			buf.WriteString("</article>")
			buf.WriteString(`<script type="application/ld+json">` + ArticleJsonLD(cfg, s) + `</script>`)
		})
	})
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "Not Found", "The page you are looking for does not exist.")
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "Something Went Wrong", "We could not load this page. Please try again shortly.")
}

func statusPage(cfg SiteConfig, title, detail string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, PageMeta{Title: title}, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="hero status-page"><h1>` + esc(title) + `</h1>`)
			buf.WriteString(`<p class="hero-lede">` + esc(detail) + `</p>`)
			buf.WriteString(`<p class="back-link"><a href="/">Back to the start</a></p></section>`)
		})
	})
}

// writeDetailHero emits the full-width hero image when one exists.
func writeDetailHero(buf *bytes.Buffer, src, alt string) {
	if src == "" {
		return
	}
	buf.WriteString(`<section class="detail-hero"><img src="` + esc(src) + `" alt="` + esc(alt) + `"/></section>`)
}
