package readability

import (
	"sort"

	"github.com/lucidread/lucid/dom"
)

// candidate is an ephemeral scoring record for one extraction attempt.
// Scores are never stored on the node itself.
type candidate struct {
	node    *dom.Element
	score   float64
	textLen int
}

// findBestCandidate selects the container most likely to hold the main
// article content of body. It returns nil only when body is nil.
func findBestCandidate(body *dom.Element, flags Flags) *dom.Element {
	if body == nil {
		return nil
	}

	// A document with a single visible <article> carrying real content
	// does not need scoring at all.
	if a := singleVisibleArticle(body); a != nil {
		textLen := len(dom.InnerText(a, true))
		if textLen >= SingleArticleMinLength && hasNonTrivialContent(a, textLen) {
			return a
		}
		if textLen >= SingleArticleLowBar {
			return a
		}
	}

	candidates := scoreContainers(body, flags)
	if len(candidates) == 0 {
		if m := dom.FindDeep(body, "main"); m != nil && isProbablyVisible(m) && dom.InnerText(m, true) != "" {
			return m
		}
		return body
	}

	// Sort by final score, stable so equal scores keep document order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	// Among candidates within CloseCandidateRatio of the top score,
	// prefer the one with the most raw text. This keeps a short,
	// narrowly-scoped container from beating a longer one with a
	// comparable score.
	threshold := candidates[0].score * CloseCandidateRatio
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score < threshold {
			break
		}
		if c.textLen > best.textLen {
			best = c
		}
	}
	return best.node
}

// singleVisibleArticle returns the lone visible <article> of body, or nil
// when there are zero or several.
func singleVisibleArticle(body *dom.Element) *dom.Element {
	var found *dom.Element
	for _, a := range dom.FindAll(body, "article") {
		if !isProbablyVisible(a) {
			continue
		}
		if found != nil {
			return nil
		}
		found = a
	}
	return found
}

// hasNonTrivialContent checks for text or embedded media.
func hasNonTrivialContent(e *dom.Element, textLen int) bool {
	if textLen > 0 {
		return true
	}
	return len(dom.FindAll(e, "img", "video", "iframe")) > 0
}

// scoreContainers scores every qualifying container in body, including
// body itself as a fallback candidate. Containers with too little visible
// text are excluded before scoring; unlikely containers are excluded when
// FlagStripUnlikelys is set.
func scoreContainers(body *dom.Element, flags Flags) []candidate {
	containers := dom.FindAll(body, ContainerTags...)
	containers = append(containers, body)

	var out []candidate
	for _, c := range containers {
		if !isProbablyVisible(c) {
			continue
		}
		if flags.Has(FlagStripUnlikelys) && isUnlikelyCandidate(c) {
			continue
		}
		textLen := len(dom.InnerText(c, true))
		if textLen < MinContentTextLength {
			continue
		}
		out = append(out, candidate{
			node:    c,
			score:   containerScore(c, flags),
			textLen: textLen,
		})
	}
	return out
}
