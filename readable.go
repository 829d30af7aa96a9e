package lucid

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/lucidread/lucid/dom"
	"github.com/lucidread/lucid/internal/readability"
)

// IsReadableHTML is the streaming variant of IsReadable: it parses raw
// markup and scores the candidate prose nodes straight off the parsed
// tree via XPath, without building the immutable document tree. Useful
// for cheaply triaging documents before a full extraction.
func IsReadableHTML(r io.Reader, opts *ReadableOptions) (bool, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return false, readability.WrapParseError(err, "IsReadableHTML", "failed to parse HTML document")
	}

	minLength := readability.DefaultReadableMinLength
	minScore := readability.DefaultReadableMinScore
	if opts != nil {
		if opts.MinContentLength > 0 {
			minLength = opts.MinContentLength
		}
		if opts.MinScore > 0 {
			minScore = opts.MinScore
		}
	}

	score := 0.0
	for _, node := range htmlquery.Find(doc, "//p | //pre | //article") {
		if !nodeProbablyVisible(node) {
			continue
		}
		textLength := len(dom.NormalizeText(htmlquery.InnerText(node)))
		if textLength <= minLength {
			continue
		}
		score += math.Sqrt(float64(textLength - minLength))
		if score > minScore {
			return true, nil
		}
	}
	return false, nil
}

// IsReadableFile applies IsReadableHTML to a file on disk.
func IsReadableFile(path string, opts *ReadableOptions) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return IsReadableHTML(f, opts)
}

// nodeProbablyVisible mirrors the engine's visibility filter for raw
// x/net/html nodes.
func nodeProbablyVisible(n *html.Node) bool {
	var style, class, ariaHidden string
	hasHidden := false
	for _, a := range n.Attr {
		switch a.Key {
		case "style":
			style = a.Val
		case "class":
			class = a.Val
		case "aria-hidden":
			ariaHidden = a.Val
		case "hidden":
			hasHidden = true
		}
	}
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
		return false
	}
	if hasHidden {
		return false
	}
	if ariaHidden == "true" && !strings.Contains(class, "fallback-image") {
		return false
	}
	return true
}
