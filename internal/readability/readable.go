package readability

import (
	"math"

	"github.com/lucidread/lucid/dom"
)

// IsReadable estimates whether a document contains enough prose to be
// worth a full extraction, without running one. Every visible p, pre and
// article node longer than minLength contributes sqrt(len-minLength) to a
// running score; the document is readable once the score passes minScore.
// Non-positive arguments select the defaults (140 and 20).
func IsReadable(root *dom.Element, minLength int, minScore float64) bool {
	if root == nil {
		return false
	}
	if minLength <= 0 {
		minLength = DefaultReadableMinLength
	}
	if minScore <= 0 {
		minScore = DefaultReadableMinScore
	}

	score := 0.0
	for _, node := range dom.FindAll(root, "p", "pre", "article") {
		if !isProbablyVisible(node) {
			continue
		}
		if isUnlikelyCandidate(node) {
			continue
		}
		textLength := len(dom.InnerText(node, true))
		if textLength <= minLength {
			continue
		}
		score += math.Sqrt(float64(textLength - minLength))
		if score > minScore {
			return true
		}
	}
	return false
}
