package readability

import (
	"strings"

	"github.com/lucidread/lucid/dom"
)

// isProbablyVisible checks whether a node would be rendered. Inline
// styles are matched in both spaced and unspaced forms.
func isProbablyVisible(e *dom.Element) bool {
	if e == nil {
		return false
	}
	style := strings.ReplaceAll(strings.ToLower(e.GetAttr("style")), " ", "")
	if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
		return false
	}
	if e.HasAttr("hidden") {
		return false
	}
	if e.GetAttr("aria-hidden") == "true" && !strings.Contains(e.GetAttr("class"), "fallback-image") {
		return false
	}
	return true
}

// matchString is the lowercased class+id string the pattern tables are
// matched against.
func matchString(e *dom.Element) string {
	return strings.ToLower(e.GetAttr("class") + " " + e.GetAttr("id"))
}

// isUnlikelyCandidate checks whether a node's class/id or ARIA role mark
// it as page chrome rather than content. body and a are always protected.
func isUnlikelyCandidate(e *dom.Element) bool {
	if e == nil || e.Tag == "body" || e.Tag == "a" {
		return false
	}
	if role := e.GetAttr("role"); role != "" {
		for _, unlikely := range UnlikelyRoles {
			if role == unlikely {
				return true
			}
		}
	}
	match := matchString(e)
	return RegexpUnlikelyCandidates.MatchString(match) && !RegexpMaybeCandidate.MatchString(match)
}

// isValidByline checks whether a node looks like an author attribution:
// a byline-ish class/id, rel="author", or an author itemprop, carrying a
// short non-empty text. The length cap guards against long captions that
// happen to mention an author.
func isValidByline(e *dom.Element) bool {
	if e == nil {
		return false
	}
	marked := RegexpByline.MatchString(matchString(e)) ||
		e.GetAttr("rel") == "author" ||
		strings.Contains(e.GetAttr("itemprop"), "author")
	if !marked {
		return false
	}
	text := dom.InnerText(e, true)
	return text != "" && len(text) < MaxBylineLength
}
