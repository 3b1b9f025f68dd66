// Package report turns a frozen result collection into human or machine
// readable output.
//
// Generators are looked up by name in a Registry. Each declares the
// options it accepts in an OptionsSchema; user supplied options are
// resolved against that schema before any benchmark runs, so a typo in a
// report configuration never costs a full suite run.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wesleyorama2/benchkit/internal/result"
)

var (
	// ErrUnknownGenerator is returned for a report name no generator is
	// registered under.
	ErrUnknownGenerator = errors.New("unknown report generator")

	// ErrInvalidOption is returned when report options do not match the
	// generator's schema.
	ErrInvalidOption = errors.New("invalid report option")

	// ErrInvalidSpec is returned for a report specification that is
	// neither a name nor a JSON object with a name.
	ErrInvalidSpec = errors.New("invalid report specification")
)

// Generator renders a result collection.
type Generator interface {
	// Name is the name the generator is registered under.
	Name() string

	// Configure declares the generator's options.
	Configure(schema *OptionsSchema)

	// Generate renders coll with resolved options.
	Generate(coll *result.Collection, opts Options) error
}

// Registry maps report names to generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a registry holding gens.
func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{generators: make(map[string]Generator)}
	for _, g := range gens {
		r.Register(g)
	}
	return r
}

// DefaultRegistry returns the built-in generators. Console and stream
// output goes to w.
func DefaultRegistry(w io.Writer, noColor bool) *Registry {
	return NewRegistry(
		NewConsoleTable(w, noColor),
		NewJSON(w),
		NewYAML(w),
		NewHTML(),
	)
}

// Register adds g, replacing any generator of the same name.
func (r *Registry) Register(g Generator) {
	r.generators[g.Name()] = g
}

// Lookup finds a generator by name.
func (r *Registry) Lookup(name string) (Generator, error) {
	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, known report generators: %s",
			ErrUnknownGenerator, name, strings.Join(r.Names(), ", "))
	}
	return g, nil
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
