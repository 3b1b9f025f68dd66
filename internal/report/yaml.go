package report

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/benchkit/internal/result"
)

// YAMLGenerator writes the collection as a YAML document.
type YAMLGenerator struct {
	out io.Writer
}

// NewYAML creates the "yaml" generator; without an output option the
// document is written to w.
func NewYAML(w io.Writer) *YAMLGenerator {
	if w == nil {
		w = os.Stdout
	}
	return &YAMLGenerator{out: w}
}

func (g *YAMLGenerator) Name() string { return "yaml" }

func (g *YAMLGenerator) Configure(s *OptionsSchema) {
	s.String("output", "")
}

func (g *YAMLGenerator) Generate(coll *result.Collection, opts Options) error {
	return writeTo(opts.String("output"), g.out, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(coll)); err != nil {
			return err
		}
		return enc.Close()
	})
}
