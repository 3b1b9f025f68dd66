package discovery

import (
	"fmt"
	"reflect"

	"github.com/wesleyorama2/benchkit/internal/bench"
)

// Collection is the ordered set of cases a run executes.
type Collection struct {
	cases []bench.Case
}

// NewCollection builds a collection in the given order.
//
// The same case value given twice is kept once. Two different values with
// the same name are rejected because results are keyed by case name.
func NewCollection(cases ...bench.Case) (*Collection, error) {
	coll := &Collection{}
	byName := make(map[string]bench.Case)

	for i, c := range cases {
		if isNil(c) {
			return nil, fmt.Errorf("case %d is nil", i)
		}
		name := c.Name()
		if name == "" {
			return nil, fmt.Errorf("case %d (%T) has an empty name", i, c)
		}
		if prev, ok := byName[name]; ok {
			if sameIdentity(prev, c) {
				continue
			}
			return nil, fmt.Errorf("duplicate case name %q (%T and %T)", name, prev, c)
		}
		byName[name] = c
		coll.cases = append(coll.cases, c)
	}

	return coll, nil
}

// Cases returns the cases in discovery order.
func (c *Collection) Cases() []bench.Case {
	out := make([]bench.Case, len(c.cases))
	copy(out, c.cases)
	return out
}

// Len returns the number of cases.
func (c *Collection) Len() int {
	return len(c.cases)
}

// Names returns the case names in discovery order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.cases))
	for i, cs := range c.cases {
		names[i] = cs.Name()
	}
	return names
}

func isNil(c bench.Case) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// sameIdentity compares pointers by address and other comparable values
// by ==.
func sameIdentity(a, b bench.Case) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
