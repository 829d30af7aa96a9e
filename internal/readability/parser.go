package readability

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/lucidread/lucid/dom"
)

// Options configures a single extraction run.
type Options struct {
	// CharThreshold is the minimum clean text length the retry controller
	// accepts before relaxing flags. Zero means DefaultCharThreshold.
	CharThreshold int

	// DisableJSONLD skips the JSON-LD stage of metadata resolution.
	DisableJSONLD bool
}

// Result is the outcome of an extraction. Content is nil iff no body was
// found; TextContent is always set, possibly empty. Length is always
// len(TextContent).
type Result struct {
	Title         string
	Byline        string
	Dir           string
	Lang          string
	SiteName      string
	PublishedTime string
	Content       *dom.Element
	TextContent   string
	Length        int
	Excerpt       string
}

// attempt is the outcome of one pass under a particular flag set.
type attempt struct {
	flags   Flags
	content *dom.Element
	text    string
}

// Extract runs the full extraction over an immutable document tree:
// metadata resolution, candidate selection and cleaning under the retry
// state machine, and result assembly. It never fails; a document with no
// usable body yields a Result with nil Content and resolvable metadata
// still populated.
func Extract(root *dom.Element, opts Options) Result {
	threshold := opts.CharThreshold
	if threshold <= 0 {
		threshold = DefaultCharThreshold
	}

	meta := ResolveMetadata(root, opts.DisableJSONLD)
	body := findBody(root)

	chosen := runExtractionAttempts(body, threshold)

	result := Result{
		Title:         meta.Title,
		Byline:        meta.Byline,
		SiteName:      meta.SiteName,
		PublishedTime: meta.PublishedTime,
		Lang:          DocumentLanguage(root),
		Dir:           DocumentDirection(root),
		Content:       chosen.content,
		TextContent:   chosen.text,
		Length:        len(chosen.text),
	}
	result.Excerpt = resolveExcerpt(meta, chosen.content)
	return result
}

// runExtractionAttempts drives the flag-relaxation state machine: run an
// attempt, and when the clean text is too short drop the next flag in
// order and retry. The terminal state always yields a result; when every
// attempt came up short the one with the most text wins (best effort,
// never an error).
func runExtractionAttempts(body *dom.Element, threshold int) attempt {
	if body == nil {
		return attempt{}
	}

	var attempts []attempt
	flags := AllFlags
	dropIdx := 0
	for {
		a := attempt{flags: flags}
		if candidate := findBestCandidate(body, flags); candidate != nil {
			a.content = buildCleanContent(candidate, flags)
			a.text = dom.InnerText(a.content, true)
		}
		if len(a.text) >= threshold {
			return a
		}
		attempts = append(attempts, a)

		dropped := false
		for dropIdx < len(retryDropOrder) {
			f := retryDropOrder[dropIdx]
			dropIdx++
			if flags.Has(f) {
				flags = flags.without(f)
				dropped = true
				break
			}
		}
		if !dropped {
			break
		}
	}

	best := attempts[0]
	for _, a := range attempts[1:] {
		if len(a.text) > len(best.text) {
			best = a
		}
	}
	return best
}

// resolveExcerpt prefers resolved metadata and falls back to the first
// paragraph of the extracted content. The content-derived excerpt is
// never the byline's exact text; a stripped byline must not resurface as
// the excerpt.
func resolveExcerpt(meta Metadata, content *dom.Element) string {
	if meta.Excerpt != "" {
		return meta.Excerpt
	}
	if content == nil {
		return ""
	}
	for _, p := range dom.FindAll(content, "p") {
		text := dom.InnerText(p, true)
		if text == "" || text == meta.Byline {
			continue
		}
		return text
	}
	return ""
}

// findBody locates the document body. The parser adapter always supplies
// one, but an externally built tree may omit it.
func findBody(root *dom.Element) *dom.Element {
	if root == nil {
		return nil
	}
	if root.Tag == "body" {
		return root
	}
	if body := dom.FindChild(root, "body"); body != nil {
		return body
	}
	return dom.FindDeep(root, "body")
}

// DocumentLanguage returns the document language from the html (or body)
// lang attribute, canonicalized as a BCP 47 tag when it parses as one.
func DocumentLanguage(root *dom.Element) string {
	lang := documentAttr(root, "lang")
	if lang == "" {
		return ""
	}
	if tag, err := language.Parse(lang); err == nil {
		return tag.String()
	}
	return lang
}

// DocumentDirection returns the document text direction ("ltr", "rtl" or
// "auto") from the html (or body) dir attribute.
func DocumentDirection(root *dom.Element) string {
	return strings.ToLower(documentAttr(root, "dir"))
}

func documentAttr(root *dom.Element, name string) string {
	if root == nil {
		return ""
	}
	if v := root.GetAttr(name); v != "" {
		return v
	}
	if body := findBody(root); body != nil && body != root {
		return body.GetAttr(name)
	}
	return ""
}
