// Package lucid extracts the main article content and metadata from HTML
// documents.
package lucid

import (
	"github.com/lucidread/lucid/dom"
)

// Version information for the Lucid library.
const (
	Version = "0.1.0"
	Name    = "Lucid"
)

// Article is the result of an extraction. Content is nil exactly when no
// article body could be found; TextContent is always present, possibly
// empty, and Length is always len(TextContent). Empty metadata fields
// mean the field could not be resolved.
type Article struct {
	Title         string       `json:"title"`
	Byline        string       `json:"byline"`
	Dir           string       `json:"dir"`
	Lang          string       `json:"lang"`
	SiteName      string       `json:"site_name"`
	PublishedTime string       `json:"published_time"`
	Content       *dom.Element `json:"-"`
	TextContent   string       `json:"text_content"`
	Length        int          `json:"length"`
	Excerpt       string       `json:"excerpt"`
}

// ContentHTML renders the extracted content tree back to HTML markup.
// It returns "" when no content was found.
func (a *Article) ContentHTML() string {
	if a == nil || a.Content == nil {
		return ""
	}
	return dom.RenderHTML(a.Content)
}

// Metadata holds the article metadata resolved through the priority
// chains (JSON-LD, then meta tags, then document heuristics). Each field
// is independently optional; empty means unresolved.
type Metadata struct {
	Title         string `json:"title"`
	Byline        string `json:"byline"`
	Excerpt       string `json:"excerpt"`
	SiteName      string `json:"site_name"`
	PublishedTime string `json:"published_time"`
}

// ExtractionOptions configures the extraction process.
type ExtractionOptions struct {
	// CharThreshold is the minimum amount of clean text required before
	// the extractor stops relaxing its heuristics.
	CharThreshold int

	// DisableJSONLD skips JSON-LD metadata extraction.
	DisableJSONLD bool
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		CharThreshold: 500,
	}
}

// ReadableOptions configures the readability probe. Zero values select
// the defaults (minimum content length 140, minimum score 20).
type ReadableOptions struct {
	MinContentLength int
	MinScore         float64
}
