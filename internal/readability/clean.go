package readability

import (
	"strconv"

	"github.com/lucidread/lucid/dom"
)

// alwaysDropTags never survive into the cleaned content.
var alwaysDropTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"link":     true,
	"aside":    true,
	"footer":   true,
	"nav":      true,
}

// conditionalCleanTags are the borderline containers the multi-signal
// cleaner is allowed to remove.
var conditionalCleanTags = map[string]bool{
	"form":     true,
	"fieldset": true,
	"table":    true,
	"ul":       true,
	"ol":       true,
	"div":      true,
}

// buildCleanContent produces a cleaned copy of the selected article
// container. The input tree is never modified; removal means a subtree is
// not copied.
func buildCleanContent(article *dom.Element, flags Flags) *dom.Element {
	dst := copyShell(article)
	type frame struct {
		src *dom.Element
		dst *dom.Element
	}
	stack := []frame{{src: article, dst: dst}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range f.src.Children {
			switch c := child.(type) {
			case dom.Text:
				f.dst.Children = append(f.dst.Children, c)
			case *dom.Element:
				if shouldDropElement(c, flags) {
					continue
				}
				el := copyShell(c)
				f.dst.Children = append(f.dst.Children, el)
				stack = append(stack, frame{src: c, dst: el})
			}
		}
	}
	return dst
}

func copyShell(e *dom.Element) *dom.Element {
	out := &dom.Element{Tag: e.Tag}
	if len(e.Attr) > 0 {
		out.Attr = make(map[string]string, len(e.Attr))
		for k, v := range e.Attr {
			out.Attr[k] = v
		}
	}
	return out
}

// shouldDropElement decides whether a descendant of the article container
// is boilerplate.
func shouldDropElement(e *dom.Element, flags Flags) bool {
	if alwaysDropTags[e.Tag] {
		return true
	}
	switch e.Tag {
	case "object", "embed", "iframe":
		return !isVideoEmbed(e)
	}
	if !isProbablyVisible(e) {
		return true
	}
	if flags.Has(FlagStripUnlikelys) && isUnlikelyCandidate(e) {
		return true
	}
	// Bylines are surfaced through metadata, not the content tree.
	if isValidByline(e) {
		return true
	}
	if conditionalCleanTags[e.Tag] && shouldCleanConditionally(e, flags) {
		return true
	}
	return false
}

// isVideoEmbed checks whether any attribute points at a recognized video
// host.
func isVideoEmbed(e *dom.Element) bool {
	for _, v := range e.Attr {
		if RegexpVideos.MatchString(v) {
			return true
		}
	}
	return false
}

// shouldCleanConditionally applies the multi-signal removal heuristic for
// borderline containers. A container with enough commas is prose and is
// always kept; data tables are exempt.
func shouldCleanConditionally(e *dom.Element, flags Flags) bool {
	if !flags.Has(FlagCleanConditionally) {
		return false
	}
	if e.Tag == "table" && isDataTable(e) {
		return false
	}

	text := dom.InnerText(e, true)
	if commaCount(text) >= CommaProseExemption {
		return false
	}

	weight := classWeight(e, flags)
	if weight < 0 {
		return true
	}

	isList := e.Tag == "ul" || e.Tag == "ol"
	pCount := len(dom.FindAll(e, "p"))
	imgCount := len(dom.FindAll(e, "img"))
	liCount := len(dom.FindAll(e, "li")) - 100
	inputCount := len(dom.FindAll(e, "input"))
	contentLength := len(text)
	density := linkDensity(e)

	headingLength := 0
	for _, h := range dom.FindAll(e, "h1", "h2", "h3", "h4", "h5", "h6") {
		headingLength += len(dom.InnerText(h, true))
	}
	headingDensity := 0.0
	if contentLength > 0 {
		headingDensity = float64(headingLength) / float64(contentLength)
	}

	embedCount := suspiciousEmbedCount(e)

	textishLength := 0
	textishTags := append([]string{"span", "li", "td"}, BlockLevelTags...)
	for _, t := range dom.FindAll(e, textishTags...) {
		textishLength += len(dom.InnerText(t, true))
	}

	switch {
	case !isList && liCount > pCount:
		return true
	case inputCount > pCount/3:
		return true
	case !isList && headingDensity < 0.9 && contentLength < MinContentTextLength &&
		(imgCount == 0 || imgCount > 2) && density > 0:
		return true
	case !isList && weight < 25 && density > 0.2:
		return true
	case weight >= 25 && density > 0.5:
		return true
	case (embedCount == 1 && contentLength < 75) || embedCount > 1:
		return true
	case imgCount == 0 && textishLength == 0:
		return true
	}
	return false
}

// suspiciousEmbedCount counts embeds that are not recognized video-site
// embeds.
func suspiciousEmbedCount(e *dom.Element) int {
	count := 0
	for _, em := range dom.FindAll(e, "object", "embed", "iframe") {
		if !isVideoEmbed(em) {
			count++
		}
	}
	return count
}

// isDataTable distinguishes tables that present data from tables used for
// layout. Layout tables are fair game for the conditional cleaner; data
// tables are exempt.
func isDataTable(t *dom.Element) bool {
	if t.GetAttr("role") == "presentation" {
		return false
	}
	if t.GetAttr("datatable") == "0" {
		return false
	}
	if t.HasAttr("summary") {
		return true
	}
	if caption := dom.FindChild(t, "caption"); caption != nil && len(caption.Children) > 0 {
		return true
	}
	for _, tag := range []string{"th", "col", "colgroup", "tfoot", "thead"} {
		if dom.FindDeep(t, tag) != nil {
			return true
		}
	}
	if dom.FindDeep(t, "table") != nil {
		// Nested tables mean layout.
		return false
	}
	rows, cols := tableSize(t)
	if rows >= 10 || cols > 4 {
		return true
	}
	return rows*cols > 10
}

// tableSize estimates the row and column counts of a table, honoring
// rowspan and colspan attributes.
func tableSize(t *dom.Element) (rows, cols int) {
	for _, tr := range dom.FindAll(t, "tr") {
		rowspan := spanValue(tr.GetAttr("rowspan"))
		rows += rowspan

		rowCols := 0
		for _, td := range append(dom.FindAll(tr, "td"), dom.FindAll(tr, "th")...) {
			rowCols += spanValue(td.GetAttr("colspan"))
		}
		if rowCols > cols {
			cols = rowCols
		}
	}
	return rows, cols
}

func spanValue(attr string) int {
	if n, err := strconv.Atoi(attr); err == nil && n > 0 {
		return n
	}
	return 1
}
