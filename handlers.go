package slowtunisia

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/indigoandlavender/slow-tunisia/content"
	"github.com/indigoandlavender/slow-tunisia/views"
)

// handleHome serves the landing page. Upstream failures degrade to empty
// sections rather than an error page.
func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	places, err := a.Content.ListPlaces(ctx)
	if err != nil {
		places = nil
	}
	stories, err := a.Content.ListStories(ctx)
	if err != nil {
		stories = nil
	}
	return Render(c, views.Home(a.viewConfig(), places, stories))
}

// handlePlaces serves the places index. A failed fetch renders the empty
// state instead of an error page.
func (a *App) handlePlaces(c echo.Context) error {
	places, err := a.Content.ListPlaces(c.Request().Context())
	if err != nil {
		places = nil
	}
	return Render(c, views.Places(a.viewConfig(), places))
}

func (a *App) handlePlace(c echo.Context) error {
	slug := c.Param("slug")
	place, err := a.Content.GetPlace(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.notFoundView())
		}
		return err
	}
	return Render(c, views.Place(a.viewConfig(), place))
}

func (a *App) handleStories(c echo.Context) error {
	stories, err := a.Content.ListStories(c.Request().Context())
	if err != nil {
		stories = nil
	}
	var featured, regular []content.StorySummary
	for _, s := range stories {
		if s.Featured {
			featured = append(featured, s)
		} else {
			regular = append(regular, s)
		}
	}
	return Render(c, views.Stories(a.viewConfig(), featured, regular))
}

func (a *App) handleStory(c echo.Context) error {
	slug := c.Param("slug")
	story, err := a.Content.GetStory(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.notFoundView())
		}
		return err
	}
	return Render(c, views.Story(a.viewConfig(), story))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) notFoundView() templ.Component {
	return views.NotFound(a.viewConfig())
}

func (a *App) serverErrorView() templ.Component {
	return views.ServerError(a.viewConfig())
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
