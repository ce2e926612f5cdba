// Package storybody parses the inline markup dialect used in story bodies
// and renders it as a templ component. The dialect is deliberately small:
// ![alt](url) places an inline image, !![alt](url) a full-bleed one, and the
// text between images is split into paragraphs classified by prefix
// (> pull-quote, ## subheading, plain paragraph).
package storybody

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// DefaultAlt is used when an image token carries an empty alt caption.
const DefaultAlt = "Story image"

// BlockType discriminates the top-level blocks of a story body.
type BlockType string

const (
	BlockText      BlockType = "text"
	BlockImage     BlockType = "image"
	BlockFullBleed BlockType = "fullbleed"
)

// Block is one top-level segment of a story body. For text blocks Content
// holds the raw text; for image blocks it holds the image URL and Alt the
// caption.
type Block struct {
	Type    BlockType
	Content string
	Alt     string
}

// ParagraphType classifies one paragraph of a text block.
type ParagraphType string

const (
	ParaPlain   ParagraphType = "paragraph"
	ParaQuote   ParagraphType = "quote"
	ParaHeading ParagraphType = "heading"
)

// Paragraph is one classified paragraph with its marker stripped.
type Paragraph struct {
	Type ParagraphType
	Text string
}

// One or two bangs, an alt run without ']', a url run without ')'.
// Leftmost matching makes !![..](..) bind both bangs, so a single-bang
// token never matches inside a double-bang one.
var reImageToken = regexp.MustCompile(`!?!\[([^\]]*)\]\(([^)]+)\)`)

// Parse segments content into an ordered block sequence with a single
// left-to-right scan. Text around recognized image tokens is trimmed and
// dropped when empty.
func Parse(content string) []Block {
	var blocks []Block
	last := 0
	for _, m := range reImageToken.FindAllStringSubmatchIndex(content, -1) {
		if text := strings.TrimSpace(content[last:m[0]]); text != "" {
			blocks = append(blocks, Block{Type: BlockText, Content: text})
		}
		kind := BlockImage
		if strings.HasPrefix(content[m[0]:], "!!") {
			kind = BlockFullBleed
		}
		alt := content[m[2]:m[3]]
		if alt == "" {
			alt = DefaultAlt
		}
		blocks = append(blocks, Block{Type: kind, Content: content[m[4]:m[5]], Alt: alt})
		last = m[1]
	}
	if text := strings.TrimSpace(content[last:]); text != "" {
		blocks = append(blocks, Block{Type: BlockText, Content: text})
	}
	return blocks
}

var (
	reParagraphBreak = regexp.MustCompile(`\n\n+`)
	reQuoteMarker    = regexp.MustCompile(`^>\s*`)
)

// Paragraphs splits a text block on runs of two or more newlines and
// classifies each paragraph by its prefix. Empty paragraphs are dropped.
func Paragraphs(text string) []Paragraph {
	var out []Paragraph
	for _, para := range reParagraphBreak.Split(text, -1) {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, ">"):
			out = append(out, Paragraph{Type: ParaQuote, Text: reQuoteMarker.ReplaceAllString(trimmed, "")})
		case strings.HasPrefix(trimmed, "## "):
			out = append(out, Paragraph{Type: ParaHeading, Text: strings.TrimPrefix(trimmed, "## ")})
		default:
			out = append(out, Paragraph{Type: ParaPlain, Text: trimmed})
		}
	}
	return out
}

// Component returns a templ.Component that renders content as HTML.
func Component(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, content)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML representation of content to buf.
func Render(buf *bytes.Buffer, content string) {
	for _, block := range Parse(content) {
		switch block.Type {
		case BlockText:
			buf.WriteString(`<div class="story-text">`)
			for _, p := range Paragraphs(block.Content) {
				writeParagraph(buf, p)
			}
			buf.WriteString("</div>")
		case BlockImage:
			writeFigure(buf, block, "story-image")
		case BlockFullBleed:
			writeFigure(buf, block, "story-image story-image-fullbleed")
		}
	}
}

func writeParagraph(buf *bytes.Buffer, p Paragraph) {
	switch p.Type {
	case ParaQuote:
		buf.WriteString(`<blockquote class="story-quote"><p>`)
		buf.WriteString(html.EscapeString(p.Text))
		buf.WriteString("</p></blockquote>")
	case ParaHeading:
		buf.WriteString(`<h2 class="story-subheading">`)
		buf.WriteString(html.EscapeString(p.Text))
		buf.WriteString("</h2>")
	default:
		buf.WriteString("<p>")
		buf.WriteString(html.EscapeString(p.Text))
		buf.WriteString("</p>")
	}
}

// writeFigure emits an image block. The caption is shown only when the alt
// text is a real caption rather than the default placeholder.
func writeFigure(buf *bytes.Buffer, block Block, class string) {
	src := SafeURL(block.Content)
	if src == "" {
		return
	}
	buf.WriteString(`<figure class="` + class + `"><img src="` + src + `" alt="` + html.EscapeString(block.Alt) + `" loading="lazy"/>`)
	if block.Alt != "" && block.Alt != DefaultAlt {
		buf.WriteString("<figcaption>")
		buf.WriteString(html.EscapeString(block.Alt))
		buf.WriteString("</figcaption>")
	}
	buf.WriteString("</figure>")
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return html.EscapeString(val)
	default:
		return ""
	}
}
