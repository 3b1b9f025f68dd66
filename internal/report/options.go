package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type optionKind string

const (
	kindInteger optionKind = "integer"
	kindBoolean optionKind = "boolean"
	kindString  optionKind = "string"
	kindNumber  optionKind = "number"
)

type optionDef struct {
	name    string
	kind    optionKind
	def     any
	minimum *int
	enum    []string
}

// OptionsSchema declares the options a generator accepts, their types
// and their defaults.
type OptionsSchema struct {
	order []string
	defs  map[string]optionDef
}

// NewOptionsSchema returns a schema with no options.
func NewOptionsSchema() *OptionsSchema {
	return &OptionsSchema{defs: make(map[string]optionDef)}
}

// Int declares an integer option with a lower bound.
func (s *OptionsSchema) Int(name string, def, minimum int) *OptionsSchema {
	m := minimum
	return s.add(optionDef{name: name, kind: kindInteger, def: def, minimum: &m})
}

// Bool declares a boolean option.
func (s *OptionsSchema) Bool(name string, def bool) *OptionsSchema {
	return s.add(optionDef{name: name, kind: kindBoolean, def: def})
}

// String declares a string option. When allowed is not empty the value
// must be one of them.
func (s *OptionsSchema) String(name, def string, allowed ...string) *OptionsSchema {
	return s.add(optionDef{name: name, kind: kindString, def: def, enum: allowed})
}

// Number declares a floating point option.
func (s *OptionsSchema) Number(name string, def float64) *OptionsSchema {
	return s.add(optionDef{name: name, kind: kindNumber, def: def})
}

func (s *OptionsSchema) add(d optionDef) *OptionsSchema {
	if _, dup := s.defs[d.name]; !dup {
		s.order = append(s.order, d.name)
	}
	s.defs[d.name] = d
	return s
}

// Names lists the declared options in declaration order.
func (s *OptionsSchema) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// JSONSchema renders the declared options as a JSON Schema document.
func (s *OptionsSchema) JSONSchema() ([]byte, error) {
	props := make(map[string]any, len(s.defs))
	for _, d := range s.defs {
		p := map[string]any{"type": string(d.kind)}
		if d.minimum != nil {
			p["minimum"] = *d.minimum
		}
		if len(d.enum) > 0 {
			p["enum"] = d.enum
		}
		props[d.name] = p
	}
	return json.Marshal(map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	})
}

// Resolve checks raw against the schema and fills in defaults.
//
// Unknown option names are reported first, with the list of known ones.
// Type and range violations come from validating raw against the
// schema's JSON Schema rendering.
func (s *OptionsSchema) Resolve(raw map[string]any) (Options, error) {
	var unknown []string
	for name := range raw {
		if _, ok := s.defs[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		known := "none"
		if len(s.order) > 0 {
			known = strings.Join(s.order, ", ")
		}
		return Options{}, fmt.Errorf("%w: unknown option(s) %s (known options: %s)",
			ErrInvalidOption, strings.Join(quoteAll(unknown), ", "), known)
	}

	doc, err := normalize(raw)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	if err := s.validate(doc); err != nil {
		return Options{}, err
	}

	values := make(map[string]any, len(s.defs))
	for name, d := range s.defs {
		v, ok := doc[name]
		if !ok {
			values[name] = d.def
			continue
		}
		cv, err := d.convert(v)
		if err != nil {
			return Options{}, err
		}
		values[name] = cv
	}
	return Options{values: values}, nil
}

func (s *OptionsSchema) validate(doc map[string]any) error {
	schemaJSON, err := s.JSONSchema()
	if err != nil {
		return fmt.Errorf("rendering option schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("options.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("invalid option schema: %w", err)
	}
	schema, err := compiler.Compile("options.json")
	if err != nil {
		return fmt.Errorf("invalid option schema: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return fmt.Errorf("%w: %s", ErrInvalidOption, strings.Join(validationMessages(verr), "; "))
}

// validationMessages flattens the leaf causes of a validation error.
func validationMessages(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		loc := strings.TrimPrefix(err.InstanceLocation, "/")
		if loc == "" {
			return []string{err.Message}
		}
		return []string{fmt.Sprintf("%s: %s", loc, err.Message)}
	}

	var out []string
	for _, c := range err.Causes {
		out = append(out, validationMessages(c)...)
	}
	return out
}

// normalize round-trips raw through JSON so values decoded from YAML,
// gjson or Go literals all reach the validator in the same shape.
func normalize(raw map[string]any) (map[string]any, error) {
	if raw == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d optionDef) convert(v any) (any, error) {
	n, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	if d.kind != kindInteger {
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidOption, d.name, err)
		}
		return f, nil
	}

	// Integers written with an exponent, like 1e3, fail Int64 but are
	// still valid; anything beyond int range is rejected.
	i, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f < -(1<<63) || f >= 1<<63 {
			return nil, fmt.Errorf("%w: %s: %s is out of integer range", ErrInvalidOption, d.name, n)
		}
		i = int64(f)
	}
	if int64(int(i)) != i {
		return nil, fmt.Errorf("%w: %s: %s is out of integer range", ErrInvalidOption, d.name, n)
	}
	return int(i), nil
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

// Options are resolved generator options. Every declared option has a
// value.
type Options struct {
	values map[string]any
}

// Has reports whether name was declared.
func (o Options) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Int returns an integer option.
func (o Options) Int(name string) int {
	v, _ := o.values[name].(int)
	return v
}

// Bool returns a boolean option.
func (o Options) Bool(name string) bool {
	v, _ := o.values[name].(bool)
	return v
}

// String returns a string option.
func (o Options) String(name string) string {
	v, _ := o.values[name].(string)
	return v
}

// Float returns a number option.
func (o Options) Float(name string) float64 {
	v, _ := o.values[name].(float64)
	return v
}

// Map returns a copy of every resolved option.
func (o Options) Map() map[string]any {
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}
