package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidread/lucid/dom"
)

func mustParse(t *testing.T, html string) *dom.Element {
	t.Helper()
	root, err := dom.ParseString(html)
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

func TestParseBuildsTree(t *testing.T) {
	root := mustParse(t, `<!DOCTYPE html>
<html lang="en">
<head><title>Tree Test</title></head>
<body>
	<div id="main" class="content">
		<h1>Heading</h1>
		<p>First paragraph</p>
	</div>
</body>
</html>`)

	assert.Equal(t, "html", root.Tag)
	assert.Equal(t, "en", root.GetAttr("lang"))

	body := dom.FindChild(root, "body")
	require.NotNil(t, body)

	main := dom.FindDeep(body, "div")
	require.NotNil(t, main)
	assert.Equal(t, "main", main.GetAttr("id"))
	assert.Equal(t, "content", main.GetAttr("class"))

	h1 := dom.FindChild(main, "h1")
	require.NotNil(t, h1)
	assert.Equal(t, "Heading", dom.InnerText(h1, true))
}

func TestFindAllDocumentOrder(t *testing.T) {
	root := mustParse(t, `<html><body>
		<p>one</p>
		<div><p>two</p></div>
		<p>three</p>
	</body></html>`)

	ps := dom.FindAll(root, "p")
	require.Len(t, ps, 3)
	assert.Equal(t, "one", dom.InnerText(ps[0], true))
	assert.Equal(t, "two", dom.InnerText(ps[1], true))
	assert.Equal(t, "three", dom.InnerText(ps[2], true))
}

func TestFindChildDirectOnly(t *testing.T) {
	root := mustParse(t, `<html><body><div><p>nested</p></div></body></html>`)
	body := dom.FindChild(root, "body")
	require.NotNil(t, body)

	assert.Nil(t, dom.FindChild(body, "p"), "FindChild must not descend")
	assert.NotNil(t, dom.FindDeep(body, "p"))
}

func TestInnerTextSkipsScriptAndStyle(t *testing.T) {
	root := mustParse(t, `<html><body>
		<p>visible text</p>
		<script>var hidden = "script text";</script>
		<style>p { color: red; }</style>
	</body></html>`)

	text := dom.InnerText(root, true)
	assert.Equal(t, "visible text", text)
}

func TestInnerTextNormalization(t *testing.T) {
	root := mustParse(t, "<html><body><p>  spaced \n\n out\ttext  </p></body></html>")
	assert.Equal(t, "spaced out text", dom.InnerText(root, true))
}

func TestNormalizeTextNFKC(t *testing.T) {
	// Fullwidth forms compose to their ASCII equivalents under NFKC.
	assert.Equal(t, "abc 123", dom.NormalizeText("ａｂｃ  １２３"))
}

func TestWalkElementsPrunes(t *testing.T) {
	root := mustParse(t, `<html><body>
		<div class="skip"><p>inside skipped</p></div>
		<p>kept</p>
	</body></html>`)

	var visited []string
	dom.WalkElements(root, func(e *dom.Element) bool {
		visited = append(visited, e.Tag)
		return e.GetAttr("class") != "skip"
	})

	assert.Contains(t, visited, "div")
	assert.Contains(t, visited, "p")
	// The paragraph inside the pruned div is never visited, so only one
	// p shows up.
	count := 0
	for _, tag := range visited {
		if tag == "p" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDeeplyNestedDocument(t *testing.T) {
	// Traversal is stack-based; a pathologically nested document must not
	// overflow the goroutine stack.
	depth := 5000
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < depth; i++ {
		b.WriteString("<div>")
	}
	b.WriteString("<p>deep text that is long enough to matter</p>")
	for i := 0; i < depth; i++ {
		b.WriteString("</div>")
	}
	b.WriteString("</body></html>")

	root := mustParse(t, b.String())
	assert.Equal(t, "deep text that is long enough to matter", dom.InnerText(root, true))
	assert.NotNil(t, dom.FindDeep(root, "p"))
	assert.Len(t, dom.FindAll(root, "p"), 1)
}

func TestRenderHTML(t *testing.T) {
	root := mustParse(t, `<html><body><div class="content"><p>Hello &amp; welcome</p></div></body></html>`)
	div := dom.FindDeep(root, "div")
	require.NotNil(t, div)

	html := dom.RenderHTML(div)
	assert.Contains(t, html, `<div class="content">`)
	assert.Contains(t, html, "<p>Hello &amp; welcome</p>")
	assert.Contains(t, html, "</div>")
}

func TestRenderHTMLDoesNotShareNodes(t *testing.T) {
	root := mustParse(t, `<html><body><p id="x">text</p></body></html>`)
	before := dom.RenderHTML(root)
	_ = dom.RenderHTML(dom.FindDeep(root, "p"))
	assert.Equal(t, before, dom.RenderHTML(root))
}
