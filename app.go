// Package slowtunisia serves the Slow Tunisia marketing site: a catalogue of
// Places and editorial Stories rendered from a spreadsheet-backed content
// source, a read-only JSON API over the same data, and an interactive map of
// story and place locations.
package slowtunisia

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/indigoandlavender/slow-tunisia/content"
	"github.com/indigoandlavender/slow-tunisia/sheets"
	"github.com/indigoandlavender/slow-tunisia/views"
)

// App wires together the sheet source, content service, handlers, and
// middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Service
	Log     zerolog.Logger

	source       content.Source
	cache        *content.CachedSource
	staticDir    string
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()
	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Log:       NewLogger(cfg.AppEnv),
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// init builds the content pipeline, middleware, and routes. Safe to call
// once before serving; Start does it implicitly.
func (a *App) init() error {
	if a.initialized {
		return nil
	}

	if a.source == nil {
		client, err := sheets.New(a.Config.SheetsBaseURL, a.Config.SpreadsheetID, a.Config.SheetsAPIKey, a.Config.SheetsRPS, a.Log)
		if err != nil {
			return fmt.Errorf("slowtunisia: init sheets client: %w", err)
		}
		a.source = client
	}

	// The revalidation window: rows fetched once per table per TTL, matching
	// the freshness hint advertised on responses.
	a.cache = content.NewCachedSource(a.source, a.Config.RevalidateTTL)
	a.Content = content.NewService(a.cache, a.Log)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app and starts the HTTP server.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources. Call when the app is shutting down.
func (a *App) Close() error {
	return a.Echo.Close()
}

// Invalidate drops the content snapshot so the next request re-fetches.
func (a *App) Invalidate() {
	if a.cache != nil {
		a.cache.Invalidate()
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded site assets (map.js, site.css), then the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/map.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// JSON API
	e.GET("/api/places", a.handleAPIPlaces)
	e.GET("/api/places/:slug", a.handleAPIPlace)
	e.GET("/api/stories", a.handleAPIStories)
	e.GET("/api/stories/:slug", a.handleAPIStory)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/places", a.handlePlaces)
	e.GET("/places/:slug", a.handlePlace)
	e.GET("/stories", a.handleStories)
	e.GET("/story/:slug", a.handleStory)
}

// viewConfig adapts SiteConfig for the views package.
func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}
