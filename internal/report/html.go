package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/wesleyorama2/benchkit/internal/output"
	"github.com/wesleyorama2/benchkit/internal/params"
	"github.com/wesleyorama2/benchkit/internal/result"
)

// DefaultHTMLOutput is where the html report goes without an output
// option.
const DefaultHTMLOutput = "benchkit-report.html"

// HTMLGenerator writes a standalone HTML page.
type HTMLGenerator struct{}

// NewHTML creates the "html" generator.
func NewHTML() *HTMLGenerator {
	return &HTMLGenerator{}
}

func (g *HTMLGenerator) Name() string { return "html" }

func (g *HTMLGenerator) Configure(s *OptionsSchema) {
	s.String("output", DefaultHTMLOutput).
		String("title", "Benchmark Report")
}

func (g *HTMLGenerator) Generate(coll *result.Collection, opts Options) error {
	page, err := GenerateHTMLString(coll, opts.String("title"))
	if err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	path := opts.String("output")
	if path == "" {
		path = DefaultHTMLOutput
	}
	return writeTo(path, io.Discard, func(w io.Writer) error {
		_, err := io.WriteString(w, page)
		return err
	})
}

// htmlData is the template input.
type htmlData struct {
	Title string
	Doc   Document
}

// GenerateHTMLString renders coll as an HTML page.
func GenerateHTMLString(coll *result.Collection, title string) (string, error) {
	if coll == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	tmpl, err := template.New("report").Funcs(templateFuncs()).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, htmlData{Title: title, Doc: NewDocument(coll)}); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatNs":    formatNs,
		"paramString": paramString,
	}
}

func formatNs(ns int64) string {
	return output.FormatDurationShort(time.Duration(ns))
}

func paramString(set params.Set) string {
	if len(set) == 0 {
		return "none"
	}
	return set.String()
}
