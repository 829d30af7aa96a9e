package readability

import (
	"encoding/json"
	"strings"

	"golang.org/x/net/html"

	"github.com/lucidread/lucid/dom"
)

// Metadata holds the resolved article metadata. Fields are independently
// optional; the empty string means the field could not be resolved. The
// resolution chains skip empty values, so no chain ever resolves to "".
type Metadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	PublishedTime string
}

// Meta tag priority chains, highest priority first. Keys are the
// normalized form: lowercased, whitespace stripped, dots mapped to
// colons (DC.Title -> dc:title).
var (
	titleMetaChain = []string{
		"dc:title", "dcterm:title", "og:title",
		"weibo:article:title", "weibo:webpage:title",
		"twitter:title", "parsely-title", "title",
	}
	bylineMetaChain = []string{
		"dc:creator", "dcterm:creator", "author", "parsely-author",
	}
	excerptMetaChain = []string{
		"dc:description", "dcterm:description", "og:description",
		"weibo:article:description", "weibo:webpage:description",
		"twitter:description", "description",
	}
	siteNameMetaChain = []string{
		"og:site_name",
	}
	publishedTimeMetaChain = []string{
		"article:published_time", "parsely-pub-date",
	}
)

// ResolveMetadata resolves each metadata field through its priority
// chain: JSON-LD first, then meta tags, then the algorithmic fallback.
// Resolution is independent of content selection.
func ResolveMetadata(root *dom.Element, disableJSONLD bool) Metadata {
	var ld Metadata
	if !disableJSONLD {
		ld = jsonLDMetadata(root)
	}
	values := metaTagValues(root)

	meta := Metadata{
		Title:         firstNonEmpty(ld.Title, fromChain(values, titleMetaChain)),
		Byline:        firstNonEmpty(ld.Byline, fromChain(values, bylineMetaChain)),
		Excerpt:       firstNonEmpty(ld.Excerpt, fromChain(values, excerptMetaChain)),
		SiteName:      firstNonEmpty(ld.SiteName, fromChain(values, siteNameMetaChain)),
		PublishedTime: firstNonEmpty(ld.PublishedTime, fromChain(values, publishedTimeMetaChain)),
	}

	if meta.Title == "" {
		meta.Title = articleTitle(root)
	}
	if meta.Byline == "" {
		meta.Byline = domByline(root)
	}

	meta.Title = unescapeEntities(meta.Title)
	meta.Byline = unescapeEntities(meta.Byline)
	meta.Excerpt = unescapeEntities(meta.Excerpt)
	meta.SiteName = unescapeEntities(meta.SiteName)
	return meta
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fromChain(values map[string]string, chain []string) string {
	for _, key := range chain {
		if v := values[key]; strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// metaTagValues collects the content of every named meta tag under a
// normalized key.
func metaTagValues(root *dom.Element) map[string]string {
	values := make(map[string]string)
	for _, m := range dom.FindAll(root, "meta") {
		content := m.GetAttr("content")
		if content == "" {
			continue
		}
		for _, attr := range []string{"name", "property"} {
			if key := normalizeMetaName(m.GetAttr(attr)); key != "" {
				if _, seen := values[key]; !seen {
					values[key] = content
				}
			}
		}
	}
	return values
}

func normalizeMetaName(name string) string {
	name = strings.ToLower(strings.Join(strings.Fields(name), ""))
	return strings.ReplaceAll(name, ".", ":")
}

// jsonLDMetadata extracts metadata from the first schema.org
// Article-family JSON-LD script. Malformed or off-topic payloads are
// treated as absent metadata, never as an error.
func jsonLDMetadata(root *dom.Element) Metadata {
	for _, script := range dom.FindAll(root, "script") {
		if script.GetAttr("type") != "application/ld+json" {
			continue
		}
		var raw strings.Builder
		for _, c := range script.Children {
			if t, ok := c.(dom.Text); ok {
				raw.WriteString(string(t))
			}
		}
		payload := RegexpCDATA.ReplaceAllString(raw.String(), "")

		var parsed any
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			continue
		}
		obj, ok := articleObject(parsed)
		if !ok {
			continue
		}
		return metadataFromJSONLD(obj)
	}
	return Metadata{}
}

// articleObject finds the schema.org Article-family object in a JSON-LD
// payload, which may be a single object or an array of objects.
func articleObject(parsed any) (map[string]any, bool) {
	switch v := parsed.(type) {
	case map[string]any:
		if isArticleObject(v) {
			return v, true
		}
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok && isArticleObject(obj) {
				return obj, true
			}
		}
	}
	return nil, false
}

func isArticleObject(obj map[string]any) bool {
	if ctx, ok := obj["@context"].(string); !ok || !RegexpSchemaOrgURL.MatchString(strings.TrimSpace(ctx)) {
		return false
	}
	switch t := obj["@type"].(type) {
	case string:
		return RegexpJsonLdArticleTypes.MatchString(t)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && RegexpJsonLdArticleTypes.MatchString(s) {
				return true
			}
		}
	}
	return false
}

func metadataFromJSONLD(obj map[string]any) Metadata {
	var meta Metadata

	if headline, ok := obj["headline"].(string); ok && headline != "" {
		meta.Title = strings.TrimSpace(headline)
	} else if name, ok := obj["name"].(string); ok {
		meta.Title = strings.TrimSpace(name)
	}

	// Only object and array-of-object authors carry a usable name; a bare
	// string author is intentionally not extracted.
	switch author := obj["author"].(type) {
	case map[string]any:
		if name, ok := author["name"].(string); ok {
			meta.Byline = strings.TrimSpace(name)
		}
	case []any:
		var names []string
		for _, item := range author {
			if a, ok := item.(map[string]any); ok {
				if name, ok := a["name"].(string); ok && strings.TrimSpace(name) != "" {
					names = append(names, strings.TrimSpace(name))
				}
			}
		}
		meta.Byline = strings.Join(names, ", ")
	}

	if desc, ok := obj["description"].(string); ok {
		meta.Excerpt = strings.TrimSpace(desc)
	}
	if publisher, ok := obj["publisher"].(map[string]any); ok {
		if name, ok := publisher["name"].(string); ok {
			meta.SiteName = strings.TrimSpace(name)
		}
	}
	for _, key := range []string{"datePublished", "dateCreated", "dateModified"} {
		if date, ok := obj[key].(string); ok && date != "" {
			meta.PublishedTime = strings.TrimSpace(date)
			break
		}
	}
	return meta
}

// articleTitle derives a title from the <title> element: split on the
// last hierarchical separator, retry with the first, fall back through
// colon splitting (guarded by a heading cross-check and word counts) and
// a lone <h1> for degenerate titles.
func articleTitle(root *dom.Element) string {
	var docTitle string
	if t := dom.FindDeep(root, "title"); t != nil {
		docTitle = dom.InnerText(t, true)
	}
	origTitle := docTitle

	hierarchical := false
	switch {
	case RegexpTitleSeparator.MatchString(docTitle):
		hierarchical = RegexpTitleHierarchySep.MatchString(docTitle)
		docTitle = strings.TrimSpace(RegexpTitleFinalPart.ReplaceAllString(docTitle, "$1"))
		if wordCount(docTitle) < 3 {
			docTitle = strings.TrimSpace(RegexpTitleFirstPart.ReplaceAllString(origTitle, "$1"))
		}
	case strings.Contains(docTitle, ": "):
		if !headingMatches(root, docTitle) {
			if idx := strings.LastIndex(origTitle, ":"); idx != -1 {
				docTitle = strings.TrimSpace(origTitle[idx+1:])
				if wordCount(docTitle) < 3 {
					docTitle = strings.TrimSpace(origTitle[:idx])
					if wordCount(docTitle) > 5 {
						docTitle = origTitle
					}
				}
			}
		}
	case docTitle == "" || len(docTitle) > 150 || len(docTitle) < 15:
		if h1s := dom.FindAll(root, "h1"); len(h1s) == 1 {
			docTitle = dom.InnerText(h1s[0], true)
		}
	}

	docTitle = dom.NormalizeText(docTitle)

	// A very short split result usually means the separator was part of
	// the title itself; fall back to the original.
	if wordCount(docTitle) <= 4 &&
		(!hierarchical || wordCount(docTitle) != wordCount(RegexpTitleAnySeparator.ReplaceAllString(origTitle, ""))-1) {
		docTitle = strings.TrimSpace(origTitle)
	}
	return docTitle
}

// headingMatches checks whether any h1/h2 text equals the candidate
// title exactly.
func headingMatches(root *dom.Element, title string) bool {
	for _, h := range dom.FindAll(root, "h1", "h2") {
		if dom.InnerText(h, true) == title {
			return true
		}
	}
	return false
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// domByline scans the document for an author attribution element. The
// first pass is restricted to subtrees that are not unlikely candidates;
// the retry pass is unrestricted but only accepts rel="author" targets.
func domByline(root *dom.Element) string {
	body := dom.FindDeep(root, "body")
	if body == nil {
		return ""
	}

	var byline string
	dom.WalkElements(body, func(e *dom.Element) bool {
		if byline != "" {
			return false
		}
		if isUnlikelyCandidate(e) {
			return false
		}
		if isValidByline(e) {
			byline = dom.InnerText(e, true)
			return false
		}
		return true
	})
	if byline != "" {
		return byline
	}

	dom.WalkElements(body, func(e *dom.Element) bool {
		if byline != "" {
			return false
		}
		if e.GetAttr("rel") == "author" {
			if text := dom.InnerText(e, true); text != "" && len(text) < MaxBylineLength {
				byline = text
				return false
			}
		}
		return true
	})
	return byline
}

func unescapeEntities(s string) string {
	if strings.ContainsRune(s, '&') {
		return html.UnescapeString(s)
	}
	return s
}
