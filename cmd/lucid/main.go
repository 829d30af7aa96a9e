// Package main provides the command-line interface for Lucid. It extracts
// readable content from HTML files or standard input and writes the result
// as JSON, HTML, plain text, or Markdown.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/lucidread/lucid"
)

// OutputFormat represents the supported output formats.
type OutputFormat string

const (
	FormatJSON     OutputFormat = "json"
	FormatHTML     OutputFormat = "html"
	FormatText     OutputFormat = "text"
	FormatMarkdown OutputFormat = "markdown"
)

// jsonArticle is the JSON output shape: the article fields plus the
// rendered content HTML.
type jsonArticle struct {
	*lucid.Article
	ContentHTML string `json:"content"`
}

func main() {
	inputFiles := flag.String("input", "", "Input HTML file path(s) (comma-separated, use '-' for stdin)")
	outputDir := flag.String("output-dir", "", "Output directory for batch processing (default: same as input)")
	outputFile := flag.String("output", "", "Output file path (default: stdout)")
	formatStr := flag.String("format", "json", "Output format: json, html, text, or markdown")
	charThreshold := flag.Int("char-threshold", 0, "Minimum clean text length before heuristics relax (default 500)")
	disableJSONLD := flag.Bool("no-jsonld", false, "Disable JSON-LD metadata extraction")
	compact := flag.Bool("compact", false, "Output compact JSON without indentation")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Lucid - Extract readable content from HTML\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -input article.html -output article.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input article.html -format markdown -output article.md\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input article1.html,article2.html -output-dir ./extracted\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat article.html | %s -input - > article.json\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("%s version %s\n", lucid.Name, lucid.Version)
		os.Exit(0)
	}

	format := OutputFormat(strings.ToLower(*formatStr))
	switch format {
	case FormatJSON, FormatHTML, FormatText, FormatMarkdown:
	default:
		fmt.Fprintf(os.Stderr, "Invalid output format: %s. Must be one of: json, html, text, markdown\n", *formatStr)
		os.Exit(1)
	}

	var inputs []string
	if *inputFiles == "" || *inputFiles == "-" {
		inputs = []string{"-"}
	} else {
		inputs = strings.Split(*inputFiles, ",")
	}

	var opts []lucid.Option
	if *charThreshold > 0 {
		opts = append(opts, lucid.WithCharThreshold(*charThreshold))
	}
	if *disableJSONLD {
		opts = append(opts, lucid.WithDisableJSONLD(true))
	}
	parser := lucid.New(opts...)

	exitCode := 0
	for _, inputPath := range inputs {
		if err := processInput(parser, inputPath, format, *outputFile, *outputDir, *compact, len(inputs)); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// processInput extracts one input and writes the formatted result.
func processInput(parser *lucid.Parser, inputPath string, format OutputFormat, outputFile, outputDir string, compact bool, inputCount int) error {
	var input io.Reader
	outputPath := outputFile

	if inputPath == "-" {
		input = os.Stdin
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f

		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return err
			}
			outputPath = filepath.Join(outputDir, outputName(inputPath, format))
		} else if inputCount > 1 {
			// Multiple inputs share stdout.
			outputPath = ""
		}
	}

	article, err := parser.Parse(input)
	if err != nil {
		return err
	}

	data, err := formatArticle(article, format, compact)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Processed %s -> %s\n", inputPath, outputPath)
	return nil
}

// outputName maps an input filename to the output filename for the
// chosen format.
func outputName(inputPath string, format OutputFormat) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	switch format {
	case FormatHTML:
		return name + ".html"
	case FormatText:
		return name + ".txt"
	case FormatMarkdown:
		return name + ".md"
	default:
		return name + ".json"
	}
}

// formatArticle renders the article in the requested output format.
func formatArticle(article *lucid.Article, format OutputFormat, compact bool) ([]byte, error) {
	switch format {
	case FormatHTML:
		return []byte(article.ContentHTML()), nil
	case FormatText:
		return []byte(article.TextContent), nil
	case FormatMarkdown:
		md, err := toMarkdown(article)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	default:
		out := jsonArticle{Article: article, ContentHTML: article.ContentHTML()}
		if compact {
			return json.Marshal(out)
		}
		return json.MarshalIndent(out, "", "  ")
	}
}

// toMarkdown converts the extracted content HTML to Markdown, prefixing
// the title as a heading when one was resolved.
func toMarkdown(article *lucid.Article) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	body, err := conv.ConvertString(article.ContentHTML())
	if err != nil {
		return "", err
	}
	if article.Title == "" {
		return body, nil
	}
	return "# " + article.Title + "\n\n" + body, nil
}
