package slowtunisia

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// handleSitemap lists the static pages plus every published place and story.
// Upstream failures degrade to the static pages only.
func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
		{Loc: BuildURL(base, "places")},
		{Loc: BuildURL(base, "stories")},
	}
	if places, err := a.Content.ListPlaces(ctx); err == nil {
		for _, p := range places {
			urls = append(urls, sitemapURL{Loc: BuildURL(base, "places", p.Slug)})
		}
	}
	if stories, err := a.Content.ListStories(ctx); err == nil {
		for _, s := range stories {
			urls = append(urls, sitemapURL{Loc: BuildURL(base, "story", s.Slug)})
		}
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) == 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
