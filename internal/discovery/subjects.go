// Package discovery turns case values into the ordered collection the
// runner executes and extracts the subjects each case declares.
package discovery

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wesleyorama2/benchkit/internal/annotation"
	"github.com/wesleyorama2/benchkit/internal/bench"
)

// DefaultPrefix marks a method as a benchmark subject.
const DefaultPrefix = "bench"

// ErrNotInvocable is returned for a subject the case cannot invoke: a
// subject-named method registered as a hook or a provider, or a name the
// method table does not hold at all.
var ErrNotInvocable = errors.New("method is not invocable as a subject")

// SubjectError ties a discovery failure to the method that caused it.
type SubjectError struct {
	Case   string
	Method string
	Err    error
}

func (e *SubjectError) Error() string {
	return fmt.Sprintf("%s::%s: %v", e.Case, e.Method, e.Err)
}

func (e *SubjectError) Unwrap() error {
	return e.Err
}

// Errors collects the per-method failures of one Discover call.
type Errors []*SubjectError

func (e Errors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d subjects failed discovery:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	out := make([]error, len(e))
	for i, err := range e {
		out[i] = err
	}
	return out
}

// SubjectDiscovery extracts subjects from a case's method table.
type SubjectDiscovery struct {
	// Prefix selects subject methods by name. Empty means DefaultPrefix.
	Prefix string

	// Filter, when set, keeps only subjects whose "Case::method" matches.
	Filter *regexp.Regexp
}

// Discover returns the subjects of c in registration order.
//
// A method whose doc block does not parse is skipped and reported in the
// returned Errors; the subjects that did parse are still returned, so the
// caller decides whether to run them or abort.
func (d SubjectDiscovery) Discover(c bench.Case) ([]bench.Subject, error) {
	prefix := d.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var subjects []bench.Subject
	var errs Errors

	for _, m := range c.Methods().Methods() {
		if !strings.HasPrefix(m.Name, prefix) {
			continue
		}
		if d.Filter != nil && !d.Filter.MatchString(c.Name()+"::"+m.Name) {
			continue
		}
		if m.BenchFunc() == nil {
			errs = append(errs, &SubjectError{
				Case:   c.Name(),
				Method: m.Name,
				Err:    fmt.Errorf("%w: registered as a %s", ErrNotInvocable, m.Kind),
			})
			continue
		}

		cfg, err := annotation.Parse(m.Doc)
		if err != nil {
			errs = append(errs, &SubjectError{Case: c.Name(), Method: m.Name, Err: err})
			continue
		}
		subjects = append(subjects, bench.NewSubject(m.Name, cfg))
	}

	if len(errs) > 0 {
		return subjects, errs
	}
	return subjects, nil
}
