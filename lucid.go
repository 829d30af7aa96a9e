package lucid

import (
	"io"

	"github.com/lucidread/lucid/dom"
	"github.com/lucidread/lucid/internal/readability"
)

// Option modifies ExtractionOptions, following the functional options
// pattern.
type Option func(*ExtractionOptions)

// WithCharThreshold sets the minimum amount of clean text required before
// the extractor stops relaxing its heuristics.
func WithCharThreshold(n int) Option {
	return func(o *ExtractionOptions) {
		o.CharThreshold = n
	}
}

// WithDisableJSONLD disables JSON-LD metadata extraction.
func WithDisableJSONLD(disable bool) Option {
	return func(o *ExtractionOptions) {
		o.DisableJSONLD = disable
	}
}

// Parser extracts articles from HTML documents. A Parser is stateless and
// safe for concurrent use; every extraction works on its own immutable
// tree.
type Parser struct {
	options ExtractionOptions
}

// New creates a Parser with the provided options.
//
// Example:
//
//	p := lucid.New(lucid.WithCharThreshold(250))
//	article, err := p.ParseFile("article.html")
func New(opts ...Option) *Parser {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{options: options}
}

// ParseFile parses the HTML file at path and extracts its article.
// File and parse errors are propagated; extraction itself never fails.
func (p *Parser) ParseFile(path string) (*Article, error) {
	root, err := dom.ParseFile(path)
	if err != nil {
		return nil, readability.WrapParseError(err, "ParseFile", "failed to parse HTML document")
	}
	return p.ParseDocument(root), nil
}

// Parse reads an HTML document from r and extracts its article.
func (p *Parser) Parse(r io.Reader) (*Article, error) {
	root, err := dom.Parse(r)
	if err != nil {
		return nil, readability.WrapParseError(err, "Parse", "failed to parse HTML document")
	}
	return p.ParseDocument(root), nil
}

// ParseDocument extracts the article from an already-parsed tree. It
// never fails: a document without a usable body yields an Article with
// nil Content and whatever metadata could be resolved. The input tree is
// not modified.
func (p *Parser) ParseDocument(root *dom.Element) *Article {
	result := readability.Extract(root, p.internalOptions())
	return &Article{
		Title:         result.Title,
		Byline:        result.Byline,
		Dir:           result.Dir,
		Lang:          result.Lang,
		SiteName:      result.SiteName,
		PublishedTime: result.PublishedTime,
		Content:       result.Content,
		TextContent:   result.TextContent,
		Length:        result.Length,
		Excerpt:       result.Excerpt,
	}
}

// Title resolves only the article title, without running content
// extraction.
func (p *Parser) Title(root *dom.Element) string {
	return p.Metadata(root).Title
}

// Text extracts only the clean article text.
func (p *Parser) Text(root *dom.Element) string {
	return readability.Extract(root, p.internalOptions()).TextContent
}

// Language returns the document language as a canonical BCP 47 tag where
// possible, or "" when undeclared.
func (p *Parser) Language(root *dom.Element) string {
	return readability.DocumentLanguage(root)
}

// Direction returns the document text direction ("ltr", "rtl", "auto" or
// "").
func (p *Parser) Direction(root *dom.Element) string {
	return readability.DocumentDirection(root)
}

// Metadata resolves the article metadata without running content
// extraction.
func (p *Parser) Metadata(root *dom.Element) Metadata {
	meta := readability.ResolveMetadata(root, p.options.DisableJSONLD)
	return Metadata{
		Title:         meta.Title,
		Byline:        meta.Byline,
		Excerpt:       meta.Excerpt,
		SiteName:      meta.SiteName,
		PublishedTime: meta.PublishedTime,
	}
}

func (p *Parser) internalOptions() readability.Options {
	return readability.Options{
		CharThreshold: p.options.CharThreshold,
		DisableJSONLD: p.options.DisableJSONLD,
	}
}

// IsReadable estimates whether a parsed document contains enough prose to
// be worth a full extraction. Pass nil for default thresholds.
func IsReadable(root *dom.Element, opts *ReadableOptions) bool {
	minLength, minScore := readableThresholds(opts)
	return readability.IsReadable(root, minLength, minScore)
}

func readableThresholds(opts *ReadableOptions) (int, float64) {
	if opts == nil {
		return 0, 0
	}
	return opts.MinContentLength, opts.MinScore
}
