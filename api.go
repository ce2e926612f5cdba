package slowtunisia

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/indigoandlavender/slow-tunisia/content"
)

// handleAPIPlaces lists published places as card summaries. On upstream
// failure the contract is a 500 with an empty array, so the page layer can
// render an empty state without special-casing errors.
func (a *App) handleAPIPlaces(c echo.Context) error {
	places, err := a.Content.ListPlaces(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []content.PlaceSummary{})
	}
	return c.JSON(http.StatusOK, places)
}

// handleAPIPlace returns one place with its destinations, 404 when the slug
// is unknown, 500 on upstream failure.
func (a *App) handleAPIPlace(c echo.Context) error {
	place, err := a.Content.GetPlace(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Place not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch place"})
	}
	return c.JSON(http.StatusOK, place)
}

// handleAPIStories lists published stories as card summaries, degrading to
// an empty array on upstream failure.
func (a *App) handleAPIStories(c echo.Context) error {
	stories, err := a.Content.ListStories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []content.StorySummary{})
	}
	return c.JSON(http.StatusOK, stories)
}

// handleAPIStory returns one story with its gallery images, 404 when the
// slug is unknown, 500 on upstream failure.
func (a *App) handleAPIStory(c echo.Context) error {
	story, err := a.Content.GetStory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Story not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch story"})
	}
	return c.JSON(http.StatusOK, story)
}
