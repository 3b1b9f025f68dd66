// Package bench defines benchmark cases, their subjects, and the
// iteration context handed to a running subject.
//
// A case declares its members in an explicit method table instead of
// relying on reflection:
//
//	type StringCase struct{ buf strings.Builder }
//
//	func (c *StringCase) Name() string { return "StringCase" }
//
//	func (c *StringCase) Methods() *bench.MethodTable {
//		return bench.NewMethodTable().
//			Bench("benchBuilder", `/**
//			 * @beforeMethod reset
//			 * @paramProvider provideLengths
//			 * @iterations 10
//			 */`, c.benchBuilder).
//			Hook("reset", c.reset).
//			Provider("provideLengths", c.provideLengths)
//	}
//
// The case value is shared by reference across all of its subjects,
// parameter sets and iterations. Nothing resets it between runs; a
// before-hook is the place to do that.
package bench

import (
	"fmt"

	"github.com/wesleyorama2/benchkit/internal/params"
)

// Case is a value that declares benchmark subjects.
type Case interface {
	// Name identifies the case in results and reports.
	Name() string

	// Methods returns the case's method table.
	Methods() *MethodTable
}

// BenchFunc is the body of a benchmark subject.
type BenchFunc func(it *Iteration) error

// HookFunc is a before-method run ahead of each parameter set.
type HookFunc func() error

// ProviderFunc returns the parameter sets a subject is run with.
type ProviderFunc func() ([]params.Set, error)

// Kind tells what a registered method can be invoked as.
type Kind int

const (
	KindBench Kind = iota
	KindHook
	KindProvider
)

func (k Kind) String() string {
	switch k {
	case KindBench:
		return "bench"
	case KindHook:
		return "hook"
	case KindProvider:
		return "provider"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Method is one registered member of a case.
type Method struct {
	Name string
	Doc  string
	Kind Kind

	bench    BenchFunc
	hook     HookFunc
	provider ProviderFunc
}

// MethodTable is the ordered set of methods a case exposes. Registration
// order is the enumeration order.
type MethodTable struct {
	methods []Method
	index   map[string]int
}

// NewMethodTable returns an empty method table.
func NewMethodTable() *MethodTable {
	return &MethodTable{index: make(map[string]int)}
}

// Bench registers a subject method with its doc block.
func (t *MethodTable) Bench(name, doc string, fn BenchFunc) *MethodTable {
	return t.add(Method{Name: name, Doc: doc, Kind: KindBench, bench: fn})
}

// Hook registers a before-method.
func (t *MethodTable) Hook(name string, fn HookFunc) *MethodTable {
	return t.add(Method{Name: name, Kind: KindHook, hook: fn})
}

// Provider registers a parameter provider.
func (t *MethodTable) Provider(name string, fn ProviderFunc) *MethodTable {
	return t.add(Method{Name: name, Kind: KindProvider, provider: fn})
}

// add panics on an empty name, a nil function or a duplicate name; these
// are mistakes in the case definition itself.
func (t *MethodTable) add(m Method) *MethodTable {
	if m.Name == "" {
		panic("bench: method registered without a name")
	}
	if m.bench == nil && m.hook == nil && m.provider == nil {
		panic(fmt.Sprintf("bench: method %q registered with a nil function", m.Name))
	}
	if _, dup := t.index[m.Name]; dup {
		panic(fmt.Sprintf("bench: method %q registered twice", m.Name))
	}
	t.index[m.Name] = len(t.methods)
	t.methods = append(t.methods, m)
	return t
}

// Methods returns the registered methods in registration order.
func (t *MethodTable) Methods() []Method {
	out := make([]Method, len(t.methods))
	copy(out, t.methods)
	return out
}

// Lookup finds a method by name.
func (t *MethodTable) Lookup(name string) (Method, bool) {
	i, ok := t.index[name]
	if !ok {
		return Method{}, false
	}
	return t.methods[i], true
}

// BenchFunc returns the subject body, or nil if the method is not a
// subject.
func (m Method) BenchFunc() BenchFunc {
	return m.bench
}

// CallHook runs a before-method. A panic is returned as an error.
func (m Method) CallHook() (err error) {
	if m.hook == nil {
		return fmt.Errorf("method %q is a %s, not a hook", m.Name, m.Kind)
	}
	defer recoverInto(&err)
	return m.hook()
}

// CallProvider runs a parameter provider. A panic is returned as an
// error.
func (m Method) CallProvider() (sets []params.Set, err error) {
	if m.provider == nil {
		return nil, fmt.Errorf("method %q is a %s, not a provider", m.Name, m.Kind)
	}
	defer recoverInto(&err)
	return m.provider()
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic: %v", r)
	}
}
