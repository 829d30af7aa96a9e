/*
Package lucid extracts the main article content from HTML pages. It is
designed to remove navigation, advertisements, and other distractions,
leaving only the article content plus its metadata (title, byline,
excerpt, site name, language, direction, publish time).

The extraction engine is purely functional over an immutable document
tree: it reads and re-selects nodes, never mutating the input, and always
produces a best-effort result rather than an error when a page has no
clear article.

Basic Usage:

	import "github.com/lucidread/lucid"

	// Create a new parser
	p := lucid.New()

	// Extract from a file
	article, err := p.ParseFile("article.html")
	if err != nil {
	    // Handle error
	}

	fmt.Printf("Title: %s\n", article.Title)
	fmt.Printf("Byline: %s\n", article.Byline)
	fmt.Printf("Text: %s\n", article.TextContent)
	fmt.Printf("HTML: %s\n", article.ContentHTML())

Working with pre-parsed trees:

	root, err := dom.ParseString(htmlString)
	if err != nil {
	    // Handle error
	}
	article := p.ParseDocument(root)

Probing before extraction:

	ok, err := lucid.IsReadableFile("page.html", nil)
	if ok {
	    // Worth a full extraction
	}

Features:

  - Extract article content, title, byline, excerpt, site name, language,
    direction, and publish time
  - Metadata resolved through JSON-LD, meta-tag, and document heuristics
  - Progressive relaxation of extraction heuristics for stubborn pages
  - Pure, deterministic extraction over an immutable document tree
*/
package lucid
