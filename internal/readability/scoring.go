package readability

import (
	"math"
	"strings"

	"github.com/lucidread/lucid/dom"
)

// classWeight scores a node by its class and id attributes against the
// positive and negative pattern tables. Class and id contribute
// independently, so the result ranges -50..+50.
func classWeight(e *dom.Element, flags Flags) float64 {
	if !flags.Has(FlagWeightClasses) {
		return 0
	}
	weight := 0.0
	if class := e.GetAttr("class"); class != "" {
		lower := strings.ToLower(class)
		if RegexpNegative.MatchString(lower) {
			weight -= 25
		}
		if RegexpPositive.MatchString(lower) {
			weight += 25
		}
	}
	if id := e.GetAttr("id"); id != "" {
		lower := strings.ToLower(id)
		if RegexpNegative.MatchString(lower) {
			weight -= 25
		}
		if RegexpPositive.MatchString(lower) {
			weight += 25
		}
	}
	return weight
}

// linkDensity is the fraction of a node's visible text that lives inside
// anchors. In-page anchors (href starting with "#") are discounted.
func linkDensity(e *dom.Element) float64 {
	total := len(dom.InnerText(e, true))
	if total == 0 {
		return 0
	}
	linkLength := 0.0
	for _, link := range dom.FindAll(e, "a") {
		coefficient := 1.0
		if strings.HasPrefix(link.GetAttr("href"), "#") {
			coefficient = HashLinkCoefficient
		}
		linkLength += float64(len(dom.InnerText(link, true))) * coefficient
	}
	return linkLength / float64(total)
}

// initialScore is the fixed per-tag score bias.
func initialScore(tag string) float64 {
	return initialScores[tag]
}

// commaCount counts comma characters, including the full-width CJK
// variants U+3001 and U+FF0C.
func commaCount(text string) int {
	count := 0
	for _, r := range text {
		switch r {
		case ',', '、', '，':
			count++
		}
	}
	return count
}

// paraScore scores a single paragraph-like node: a base point, a point
// per comma, and up to MaxLengthBonus points for length. Nodes with less
// than MinContentTextLength visible characters score zero.
func paraScore(e *dom.Element) float64 {
	if !isProbablyVisible(e) {
		return 0
	}
	text := dom.InnerText(e, true)
	if len(text) < MinContentTextLength {
		return 0
	}
	score := BaseContentScore
	score += float64(commaCount(text))
	score += math.Min(math.Floor(float64(len(text))/TextLengthDivisor), MaxLengthBonus)
	return score
}

// isScorableParagraph checks whether a direct child contributes paragraph
// score to its container: p, pre, td, or a div with no block-level
// descendants (a div used as a paragraph).
func isScorableParagraph(e *dom.Element) bool {
	for _, tag := range ScorableParagraphTags {
		if e.Tag == tag {
			return true
		}
	}
	return e.Tag == "div" && !hasBlockChildren(e)
}

func hasBlockChildren(e *dom.Element) bool {
	return len(dom.FindAll(e, BlockLevelTags...)) > 0
}

// containerScore computes the proximity-weighted score of a container:
// the tag bias and class weight, plus paragraph scores from three
// generations of descendants damped by TierDividers, all scaled down by
// link density. Scoring is top-down over the container's own subtree;
// the tree carries no parent pointers to propagate through.
func containerScore(e *dom.Element, flags Flags) float64 {
	raw := initialScore(e.Tag) + classWeight(e, flags)
	raw += tierContribution(e.ChildElements(), 0)
	return raw * (1 - linkDensity(e))
}

// tierContribution sums damped paragraph scores for one generation and
// descends into non-paragraph children for the next, up to three tiers.
func tierContribution(children []*dom.Element, tier int) float64 {
	if tier >= len(TierDividers) {
		return 0
	}
	sum := 0.0
	for _, child := range children {
		if isScorableParagraph(child) {
			sum += paraScore(child) / TierDividers[tier]
			continue
		}
		sum += tierContribution(child.ChildElements(), tier+1)
	}
	return sum
}
