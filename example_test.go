package lucid_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/dom"
)

func Example() {
	page := `<html lang="en"><head>
	<title>Harbor Expansion Wins Final Approval | Example News</title>
	<meta name="author" content="Jane Doe">
</head><body>
	<div class="article">
		<p>The city council gave its final approval to the harbor expansion,
		ending a decade of planning, hearings, and revisions.</p>
	</div>
</body></html>`

	p := lucid.New()
	article, err := p.Parse(strings.NewReader(page))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(article.Title)
	fmt.Println(article.Byline)
	// Output:
	// Harbor Expansion Wins Final Approval
	// Jane Doe
}

func ExampleParser_ParseDocument() {
	root, err := dom.ParseString(`<html><head>
	<title>A Pre-Parsed Document Title Here</title>
</head><body><p>Body text for the pre-parsed tree example.</p></body></html>`)
	if err != nil {
		log.Fatal(err)
	}

	article := lucid.New().ParseDocument(root)
	fmt.Println(article.Title)
	// Output:
	// A Pre-Parsed Document Title Here
}

func ExampleIsReadableHTML() {
	para := "<p>" + strings.Repeat("prose ", 60) + "</p>"
	page := "<html><body>" + para + para + para + "</body></html>"

	ok, err := lucid.IsReadableHTML(strings.NewReader(page), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output:
	// true
}
