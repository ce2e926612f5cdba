package slowtunisia

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	GUID        string `xml:"guid"`
}

// handleFeed serves an RSS feed of published stories in listing order.
func (a *App) handleFeed(c echo.Context) error {
	stories, err := a.Content.ListStories(c.Request().Context())
	if err != nil {
		stories = nil
	}
	base := a.Config.URL
	items := make([]rssItem, 0, len(stories))
	for _, s := range stories {
		storyURL := BuildURL(base, "story", s.Slug)
		items = append(items, rssItem{
			Title:       s.Title,
			Link:        storyURL,
			Description: s.Excerpt,
			Category:    s.Category,
			GUID:        storyURL,
		})
	}
	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
