package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidread/lucid/dom"
)

func TestClassWeight(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]string
		weight float64
	}{
		{"no attributes", nil, 0},
		{"positive class", map[string]string{"class": "article"}, 25},
		{"negative class", map[string]string{"class": "sidebar"}, -25},
		{"positive id", map[string]string{"id": "main-content"}, 25},
		{"negative id", map[string]string{"id": "footer"}, -25},
		{"positive class and id", map[string]string{"class": "post", "id": "story"}, 50},
		{"mixed class", map[string]string{"class": "sidebar content"}, 0},
		{"negative class positive id", map[string]string{"class": "share", "id": "article"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := elem("div", tt.attrs)
			assert.Equal(t, tt.weight, classWeight(e, AllFlags))
		})
	}
}

func TestClassWeightDisabledByFlag(t *testing.T) {
	e := elem("div", map[string]string{"class": "sidebar", "id": "footer"})
	assert.Equal(t, 0.0, classWeight(e, AllFlags.without(FlagWeightClasses)))
}

func TestLinkDensity(t *testing.T) {
	body := docBody(t, `<html><body>
		<div id="half"><a href="https://example.com">aaaa</a>bbbb</div>
		<div id="hash"><a href="#section">aaaa</a>bbbb</div>
		<div id="none">plain text only</div>
		<div id="empty"></div>
	</body></html>`)

	divs := dom.FindAll(body, "div")
	require.Len(t, divs, 4)
	assert.InDelta(t, 0.5, linkDensity(divs[0]), 1e-9)
	// In-page anchors are discounted by HashLinkCoefficient.
	assert.InDelta(t, 0.15, linkDensity(divs[1]), 1e-9)
	assert.Equal(t, 0.0, linkDensity(divs[2]))
	assert.Equal(t, 0.0, linkDensity(divs[3]))
}

func TestCommaCount(t *testing.T) {
	assert.Equal(t, 0, commaCount("no commas here"))
	assert.Equal(t, 2, commaCount("one, two, three"))
	assert.Equal(t, 2, commaCount("中文、逗号，测试"))
	assert.Equal(t, 3, commaCount("mixed, 混合、文本，end"))
}

func TestParaScore(t *testing.T) {
	longText := strings.Repeat("a", 150) + ","
	p := &dom.Element{Tag: "p", Children: []dom.Node{dom.Text(longText)}}
	// Base 1 + one comma + floor(151/100) length bonus.
	assert.Equal(t, 3.0, paraScore(p))

	short := &dom.Element{Tag: "p", Children: []dom.Node{dom.Text("too short")}}
	assert.Equal(t, 0.0, paraScore(short))

	hidden := &dom.Element{
		Tag:      "p",
		Attr:     map[string]string{"style": "display:none"},
		Children: []dom.Node{dom.Text(longText)},
	}
	assert.Equal(t, 0.0, paraScore(hidden))
}

func TestParaScoreLengthBonusCapped(t *testing.T) {
	p := &dom.Element{Tag: "p", Children: []dom.Node{dom.Text(strings.Repeat("a", 1000))}}
	assert.Equal(t, BaseContentScore+MaxLengthBonus, paraScore(p))
}

func TestIsScorableParagraph(t *testing.T) {
	body := docBody(t, `<html><body>
		<p>paragraph</p>
		<pre>preformatted</pre>
		<div id="leaf">text only div</div>
		<div id="wrapper"><p>has block child</p></div>
	</body></html>`)

	assert.True(t, isScorableParagraph(dom.FindDeep(body, "p")))
	assert.True(t, isScorableParagraph(dom.FindDeep(body, "pre")))

	divs := dom.FindAll(body, "div")
	require.Len(t, divs, 2)
	assert.True(t, isScorableParagraph(divs[0]), "div without block children scores as a paragraph")
	assert.False(t, isScorableParagraph(divs[1]), "div wrapping block content does not")
}

func TestInitialScore(t *testing.T) {
	assert.Equal(t, 5.0, initialScore("div"))
	assert.Equal(t, 3.0, initialScore("pre"))
	assert.Equal(t, -3.0, initialScore("ul"))
	assert.Equal(t, -5.0, initialScore("h2"))
	assert.Equal(t, 0.0, initialScore("section"))
	assert.Equal(t, 0.0, initialScore("body"))
}

func TestContainerScoreTiers(t *testing.T) {
	para := strings.Repeat("sentence with some words, ", 8)
	body := docBody(t, `<html><body>
		<div id="flat"><p>`+para+`</p></div>
		<div id="nested"><section><p>`+para+`</p></section></div>
	</body></html>`)

	divs := dom.FindAll(body, "div")
	require.Len(t, divs, 2)

	flat := containerScore(divs[0], AllFlags)
	nested := containerScore(divs[1], AllFlags)
	assert.Greater(t, flat, nested, "direct paragraph children outweigh deeper ones")

	// The same paragraph one generation deeper contributes exactly half.
	pScore := paraScore(dom.FindDeep(divs[0], "p"))
	assert.InDelta(t, 5.0+pScore, flat, 1e-9)
	assert.InDelta(t, 5.0+pScore/2, nested, 1e-9)
}

func TestContainerScoreLinkDensityPenalty(t *testing.T) {
	text := strings.Repeat("readable words here ", 10)
	body := docBody(t, `<html><body>
		<div id="prose"><p>`+text+`</p></div>
		<div id="links"><p><a href="https://example.com">`+text+`</a></p></div>
	</body></html>`)

	divs := dom.FindAll(body, "div")
	require.Len(t, divs, 2)

	prose := containerScore(divs[0], AllFlags)
	links := containerScore(divs[1], AllFlags)
	assert.Greater(t, prose, 0.0)
	assert.InDelta(t, 0.0, links, 1e-9, "fully linked content scores nothing")
}
