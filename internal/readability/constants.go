// Package readability implements the content extraction algorithm: given
// an immutable document tree it locates the main article container, strips
// boilerplate, and resolves article metadata. The package is purely
// functional over its input; it never mutates the tree it is given.
package readability

import "regexp"

// Default settings
const (
	// DefaultCharThreshold is the minimum number of characters of clean
	// text required before the retry controller accepts a result.
	DefaultCharThreshold = 500

	// MinContentTextLength is the minimum visible text length for a node
	// to carry any paragraph or container score.
	MinContentTextLength = 25

	// SingleArticleMinLength is the text length at which a lone visible
	// <article> is returned directly, bypassing container scoring.
	SingleArticleMinLength = DefaultCharThreshold

	// SingleArticleLowBar is the lower text bar for the second chance at
	// the lone-article shortcut.
	SingleArticleLowBar = 50

	// CloseCandidateRatio defines the score band, relative to the top
	// score, within which candidates are re-ranked by raw text length.
	CloseCandidateRatio = 0.75

	// HashLinkCoefficient discounts in-page anchor links when computing
	// link density.
	HashLinkCoefficient = 0.3

	// MaxBylineLength bounds byline text; longer matches are captions or
	// teasers, not attributions.
	MaxBylineLength = 100

	// CommaProseExemption is the comma count at which a container is
	// always kept by the conditional cleaner.
	CommaProseExemption = 10

	// DefaultReadableMinLength and DefaultReadableMinScore are the
	// thresholds for the quick readability probe.
	DefaultReadableMinLength = 140
	DefaultReadableMinScore  = 20.0
)

// Paragraph score shape: base + comma count + capped length bonus.
const (
	BaseContentScore  = 1.0
	TextLengthDivisor = 100.0
	MaxLengthBonus    = 3.0
)

// TierDividers damp paragraph contributions by distance from the
// container: direct children at full weight, grandchildren at half,
// great-grandchildren at a sixth.
var TierDividers = [3]float64{1, 2, 6}

// ContainerTags are the elements considered as article containers. The
// document body is appended as a fallback candidate by the selector.
var ContainerTags = []string{"div", "section", "article", "main"}

// ScorableParagraphTags contribute paragraph scores to their containers.
// A div without block-level children is treated the same way.
var ScorableParagraphTags = []string{"p", "pre", "td"}

// BlockLevelTags disqualify a div from being treated as a paragraph.
var BlockLevelTags = []string{"blockquote", "dl", "div", "img", "ol", "p", "pre", "table", "ul"}

// UnlikelyRoles are ARIA roles that mark a node as chrome, not content.
var UnlikelyRoles = []string{"menu", "menubar", "complementary", "navigation", "alert", "alertdialog", "dialog"}

// initialScores is the fixed per-tag score bias.
var initialScores = map[string]float64{
	"div":        5,
	"pre":        3,
	"td":         3,
	"blockquote": 3,
	"address":    -3,
	"ol":         -3,
	"ul":         -3,
	"dl":         -3,
	"dd":         -3,
	"dt":         -3,
	"li":         -3,
	"form":       -3,
	"h1":         -5,
	"h2":         -5,
	"h3":         -5,
	"h4":         -5,
	"h5":         -5,
	"h6":         -5,
	"th":         -5,
}

// Regular expressions used by the extraction algorithm
var (
	// Unlikely candidates for content
	RegexpUnlikelyCandidates = regexp.MustCompile(`-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)

	// Candidates that might be content despite matching the unlikely pattern
	RegexpMaybeCandidate = regexp.MustCompile(`and|article|body|column|content|main|shadow`)

	// Positive indicators of content
	RegexpPositive = regexp.MustCompile(`article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)

	// Negative indicators of content
	RegexpNegative = regexp.MustCompile(`-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)

	// Byline indicators
	RegexpByline = regexp.MustCompile(`byline|author|dateline|writtenby|p-author`)

	// Video services whose embeds are never treated as suspicious
	RegexpVideos = regexp.MustCompile(`//(www\.)?((dailymotion|youtube|youtube-nocookie|player\.vimeo|v\.qq)\.com|(archive|upload\.wikimedia)\.org|player\.twitch\.tv)`)

	// Title separators: " | ", " - ", " \ ", " / ", " > ", " » "
	RegexpTitleSeparator    = regexp.MustCompile(` [\|\-\\/>»] `)
	RegexpTitleHierarchySep = regexp.MustCompile(` [\\/>»] `)
	RegexpTitleFinalPart    = regexp.MustCompile(`(.*)[\|\-\\/>»] .*`)
	RegexpTitleFirstPart    = regexp.MustCompile(`[^\|\-\\/>»]*[\|\-\\/>»](.*)`)
	RegexpTitleAnySeparator = regexp.MustCompile(`[\|\-\\/>»]+`)

	// JSON-LD article types (schema.org Article family)
	RegexpJsonLdArticleTypes = regexp.MustCompile(`^Article|AdvertiserContentArticle|NewsArticle|AnalysisNewsArticle|AskPublicNewsArticle|BackgroundNewsArticle|OpinionNewsArticle|ReportageNewsArticle|ReviewNewsArticle|Report|SatiricalArticle|ScholarlyArticle|MedicalScholarlyArticle|SocialMediaPosting|BlogPosting|LiveBlogPosting|DiscussionForumPosting|TechArticle|APIReference$`)

	// schema.org context URL
	RegexpSchemaOrgURL = regexp.MustCompile(`^https?://schema\.org/?$`)

	// CDATA wrappers occasionally found around JSON-LD payloads
	RegexpCDATA = regexp.MustCompile(`^\s*<!\[CDATA\[|\]\]>\s*$`)
)
