package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidread/lucid/dom"
)

func TestBuildCleanContentDropsBoilerplate(t *testing.T) {
	prose := strings.Repeat("Real article prose, with commas, and length. ", 12)
	body := docBody(t, `<html><body>
		<nav><a href="/">Home</a></nav>
		<script>tracking();</script>
		<p style="display:none">hidden teaser</p>
		<div class="byline">By Jane Doe</div>
		<p>`+prose+`</p>
		<footer>Copyright</footer>
	</body></html>`)

	clean := buildCleanContent(body, AllFlags)
	require.NotNil(t, clean)
	text := dom.InnerText(clean, true)

	assert.Contains(t, text, "Real article prose")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "hidden teaser")
	assert.NotContains(t, text, "Jane Doe")
	assert.NotContains(t, text, "Copyright")
}

func TestBuildCleanContentDoesNotMutateInput(t *testing.T) {
	body := docBody(t, `<html><body>
		<nav><a href="/">Home</a></nav>
		<p>kept paragraph</p>
	</body></html>`)

	before := dom.RenderHTML(body)
	clean := buildCleanContent(body, AllFlags)
	require.NotNil(t, clean)
	assert.Equal(t, before, dom.RenderHTML(body))
	assert.NotSame(t, body, clean)
}

func TestVideoEmbedsSurvive(t *testing.T) {
	body := docBody(t, `<html><body>
		<iframe src="https://www.youtube.com/embed/abc123"></iframe>
		<iframe src="https://ads.example.com/frame"></iframe>
	</body></html>`)

	clean := buildCleanContent(body, AllFlags)
	frames := dom.FindAll(clean, "iframe")
	require.Len(t, frames, 1)
	assert.Contains(t, frames[0].GetAttr("src"), "youtube.com")
}

func TestShouldCleanConditionallyFlagGate(t *testing.T) {
	e := elem("div", map[string]string{"class": "share"})
	assert.False(t, shouldCleanConditionally(e, AllFlags.without(FlagCleanConditionally)))
}

func TestShouldCleanConditionallyNegativeWeight(t *testing.T) {
	body := docBody(t, `<html><body>
		<div class="share"><p>share this article with friends now</p></div>
	</body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)

	assert.True(t, shouldCleanConditionally(div, AllFlags))
	// Without class weighting the negative class stops mattering and no
	// other signal fires.
	assert.False(t, shouldCleanConditionally(div, AllFlags.without(FlagWeightClasses)))
}

func TestCommaExemption(t *testing.T) {
	commas := strings.Repeat("word, ", CommaProseExemption)
	body := docBody(t, `<html><body>
		<div class="share"><p>`+commas+`</p></div>
	</body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)

	assert.False(t, shouldCleanConditionally(div, AllFlags))
}

func TestListHeavyContainerCleaned(t *testing.T) {
	var items strings.Builder
	for i := 0; i < 105; i++ {
		items.WriteString("<li>item text</li>")
	}
	body := docBody(t, `<html><body>
		<div><ul>`+items.String()+`</ul><p>a lone paragraph of text here</p></div>
	</body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)

	assert.True(t, shouldCleanConditionally(div, AllFlags))
}

func TestInputHeavyContainerCleaned(t *testing.T) {
	body := docBody(t, `<html><body>
		<div>
			<p>subscribe to our newsletter for updates</p>
			<input type="text" name="email"><input type="submit">
		</div>
	</body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)

	assert.True(t, shouldCleanConditionally(div, AllFlags))
}

func TestEmptyContainerCleaned(t *testing.T) {
	body := docBody(t, `<html><body><div><br></div></body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)

	assert.True(t, shouldCleanConditionally(div, AllFlags))
}

func TestProseContainerKept(t *testing.T) {
	prose := strings.Repeat("A normal paragraph of article text. ", 5)
	body := docBody(t, `<html><body>
		<div><p>`+prose+`</p><p>`+prose+`</p></div>
	</body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)

	assert.False(t, shouldCleanConditionally(div, AllFlags))
}

func TestLayoutTableCleanedDataTableKept(t *testing.T) {
	link := `<a href="https://example.com">` + strings.Repeat("link text ", 10) + `</a>`
	body := docBody(t, `<html><body>
		<table role="presentation" id="layout"><tr><td>`+link+`</td></tr></table>
		<table summary="quarterly results" id="data"><tr><td>`+link+`</td></tr></table>
	</body></html>`)

	tables := dom.FindAll(body, "table")
	require.Len(t, tables, 2)
	assert.True(t, shouldCleanConditionally(tables[0], AllFlags))
	assert.False(t, shouldCleanConditionally(tables[1], AllFlags))
}

func TestIsDataTable(t *testing.T) {
	tests := []struct {
		name string
		html string
		data bool
	}{
		{"presentation role", `<table role="presentation"><tr><th>h</th></tr></table>`, false},
		{"datatable zero", `<table datatable="0"><tr><th>h</th></tr></table>`, false},
		{"summary attribute", `<table summary="stats"><tr><td>1</td></tr></table>`, true},
		{"caption", `<table><caption>Results</caption><tr><td>1</td></tr></table>`, true},
		{"header cells", `<table><tr><th>Name</th></tr></table>`, true},
		{"thead", `<table><thead><tr><td>x</td></tr></thead></table>`, true},
		{"nested table means layout", `<table><tr><td><table><tr><td>x</td></tr></table></td></tr></table>`, false},
		{"small plain table", `<table><tr><td>a</td><td>b</td></tr></table>`, false},
		{"wide table", `<table><tr><td>a</td><td>b</td><td>c</td><td>d</td><td>e</td></tr></table>`, true},
		{"colspan counts", `<table><tr><td colspan="5">wide</td></tr></table>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := docBody(t, `<html><body>`+tt.html+`</body></html>`)
			table := dom.FindDeep(body, "table")
			require.NotNil(t, table)
			assert.Equal(t, tt.data, isDataTable(table))
		})
	}
}

func TestTallTableIsData(t *testing.T) {
	var rows strings.Builder
	for i := 0; i < 10; i++ {
		rows.WriteString("<tr><td>v</td></tr>")
	}
	body := docBody(t, `<html><body><table>`+rows.String()+`</table></body></html>`)
	table := dom.FindDeep(body, "table")
	require.NotNil(t, table)
	assert.True(t, isDataTable(table))
}

func TestTableSizeHonorsSpans(t *testing.T) {
	body := docBody(t, `<html><body><table>
		<tr rowspan="2"><td colspan="2">a</td><td>b</td></tr>
		<tr><td>c</td></tr>
	</table></body></html>`)
	table := dom.FindDeep(body, "table")
	require.NotNil(t, table)

	rows, cols := tableSize(table)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
}

func TestSuspiciousEmbedCount(t *testing.T) {
	body := docBody(t, `<html><body><div>
		<iframe src="https://player.vimeo.com/video/1"></iframe>
		<embed src="https://flash.example.com/thing.swf">
		<object data="https://other.example.com/obj"></object>
	</div></body></html>`)
	div := dom.FindDeep(body, "div")
	require.NotNil(t, div)
	assert.Equal(t, 2, suspiciousEmbedCount(div))
}
