package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/wesleyorama2/benchkit/internal/result"
)

// JSONGenerator writes the collection as a JSON document.
type JSONGenerator struct {
	out io.Writer
}

// NewJSON creates the "json" generator; without an output option the
// document is written to w.
func NewJSON(w io.Writer) *JSONGenerator {
	if w == nil {
		w = os.Stdout
	}
	return &JSONGenerator{out: w}
}

func (g *JSONGenerator) Name() string { return "json" }

func (g *JSONGenerator) Configure(s *OptionsSchema) {
	s.String("output", "").
		Bool("pretty", true)
}

func (g *JSONGenerator) Generate(coll *result.Collection, opts Options) error {
	return writeTo(opts.String("output"), g.out, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		if opts.Bool("pretty") {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(NewDocument(coll))
	})
}
