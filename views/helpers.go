package views

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/indigoandlavender/slow-tunisia/content"
)

// component wraps an HTML-writing function as a templ.Component.
func component(fn func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// esc escapes text for HTML element content and attribute values.
func esc(s string) string {
	return html.EscapeString(s)
}

// buildURL joins path segments onto a base URL.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// TravelAgencyJsonLD produces the Schema.org TravelAgency block emitted on
// every page, including the journey offer catalogue.
func TravelAgencyJsonLD(cfg SiteConfig) string {
	offer := func(name, description string) map[string]any {
		return map[string]any{
			"@type": "Offer",
			"itemOffered": map[string]string{
				"@type":       "TouristTrip",
				"name":        name,
				"description": description,
			},
		}
	}
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "TravelAgency",
		"name":        cfg.Name,
		"description": cfg.Description,
		"url":         buildURL(cfg.URL),
		"address": map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": "Tunis",
			"addressCountry":  "TN",
		},
		"areaServed": map[string]string{
			"@type": "Country",
			"name":  "Tunisia",
		},
		"hasOfferCatalog": map[string]any{
			"@type": "OfferCatalog",
			"name":  "Tunisia Private Journeys",
			"itemListElement": []any{
				offer("Carthage & Sidi Bou Said", "Ancient ruins and blue-white villages"),
				offer("Sahara & Ksour", "Desert oases and fortified granaries"),
				offer("Djerba & The South", "Island life and Star Wars landscapes"),
			},
		},
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleJsonLD produces a Schema.org Article block for a story page.
func ArticleJsonLD(cfg SiteConfig, story content.Story) string {
	storyURL := buildURL(cfg.URL, "story", story.Slug)
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    story.Title,
		"description": story.Excerpt,
		"url":         storyURL,
		"author": map[string]string{
			"@type": "Person",
			"name":  story.Author,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   storyURL,
		},
	}
	if story.HeroImage != "" {
		data["image"] = story.HeroImage
	}
	if story.Category != "" {
		data["articleSection"] = story.Category
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// readingLine joins the category / read time / author fragments shown under
// story titles, skipping empty parts.
func readingLine(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " &middot; ")
}
