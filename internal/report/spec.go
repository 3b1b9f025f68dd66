package report

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/wesleyorama2/benchkit/internal/result"
)

// Spec selects a generator and carries its raw options.
type Spec struct {
	Name    string
	Options map[string]any
}

// ParseSpec parses a command line report argument: either a bare
// generator name or a JSON object whose "name" key selects the generator
// and whose other keys are options.
//
//	console_table
//	{"name": "console_table", "precision": 2}
func ParseSpec(raw string) (Spec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, fmt.Errorf("%w: empty report", ErrInvalidSpec)
	}

	if !strings.HasPrefix(raw, "{") {
		if strings.ContainsAny(raw, " \t\n\"[]") {
			return Spec{}, fmt.Errorf("%w: %q is not a report name", ErrInvalidSpec, raw)
		}
		return Spec{Name: raw, Options: map[string]any{}}, nil
	}

	if !gjson.Valid(raw) {
		return Spec{}, fmt.Errorf("%w: could not decode JSON %s", ErrInvalidSpec, raw)
	}

	doc := gjson.Parse(raw)
	name := doc.Get("name")
	if !name.Exists() {
		return Spec{}, fmt.Errorf(`%w: JSON report configuration must contain a "name" key: %s`, ErrInvalidSpec, raw)
	}
	if name.Type != gjson.String || name.String() == "" {
		return Spec{}, fmt.Errorf(`%w: "name" must be a non-empty string: %s`, ErrInvalidSpec, raw)
	}

	spec := Spec{Name: name.String(), Options: map[string]any{}}
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() != "name" {
			spec.Options[key.String()] = value.Value()
		}
		return true
	})
	return spec, nil
}

// Prepared is a generator with resolved options, ready to render.
type Prepared struct {
	Spec      Spec
	Generator Generator
	Options   Options
}

// Generate renders coll.
func (p Prepared) Generate(coll *result.Collection) error {
	if err := p.Generator.Generate(coll, p.Options); err != nil {
		return fmt.Errorf("report %s: %w", p.Spec.Name, err)
	}
	return nil
}

// Prepare looks up every spec's generator and then resolves every spec's
// options. Nothing is returned unless all of them succeed.
func Prepare(reg *Registry, specs []Spec) ([]Prepared, error) {
	gens := make([]Generator, len(specs))
	for i, spec := range specs {
		g, err := reg.Lookup(spec.Name)
		if err != nil {
			return nil, err
		}
		gens[i] = g
	}

	prepared := make([]Prepared, len(specs))
	for i, spec := range specs {
		schema := NewOptionsSchema()
		gens[i].Configure(schema)

		opts, err := schema.Resolve(spec.Options)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", spec.Name, err)
		}
		prepared[i] = Prepared{Spec: spec, Generator: gens[i], Options: opts}
	}
	return prepared, nil
}
