package views

import (
	"bytes"
)

// writeHead emits the document head: meta, OpenGraph, canonical, JSON-LD.
func writeHead(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	title := cfg.Name
	if meta.Title != "" {
		title = meta.Title + " | " + cfg.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = cfg.Description
	}

	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	buf.WriteString(`<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	buf.WriteString("<title>" + esc(title) + "</title>")
	buf.WriteString(`<meta name="description" content="` + esc(desc) + `"/>`)
	buf.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `"/>`)
	buf.WriteString(`<meta property="og:type" content="` + esc(meta.OGType) + `"/>`)
	buf.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
	buf.WriteString(`<meta property="og:description" content="` + esc(desc) + `"/>`)
	if meta.URL != "" {
		buf.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		buf.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
	}
	if meta.Image != "" {
		buf.WriteString(`<meta property="og:image" content="` + esc(meta.Image) + `"/>`)
		buf.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
	}
	buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml"/>`)
	buf.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
	buf.WriteString(`<script type="application/ld+json">` + TravelAgencyJsonLD(cfg) + `</script>`)
	buf.WriteString("</head>")
}

// writeHeader emits the shared site navigation.
func writeHeader(buf *bytes.Buffer, cfg SiteConfig) {
	buf.WriteString(`<header class="site-header"><nav>`)
	buf.WriteString(`<a class="site-name" href="/">` + esc(cfg.Name) + `</a>`)
	buf.WriteString(`<a href="/places">Places</a><a href="/stories">Stories</a>`)
	buf.WriteString("</nav></header>")
}

// writeFooter closes the document.
func writeFooter(buf *bytes.Buffer, cfg SiteConfig) {
	buf.WriteString(`<footer class="site-footer"><p>` + esc(cfg.Name) + `</p></footer>`)
	buf.WriteString("</body></html>")
}

// page wraps body-writing into the shared document shell.
func page(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta, body func(buf *bytes.Buffer)) {
	writeHead(buf, cfg, meta)
	buf.WriteString(`<body class="site">`)
	writeHeader(buf, cfg)
	buf.WriteString(`<main class="site-main">`)
	body(buf)
	buf.WriteString("</main>")
	writeFooter(buf, cfg)
}
