package slowtunisia

import "embed"

// EmbeddedAssets contains static assets shipped with the site:
// map.js (the interactive map lifecycle) and site.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
