// Package params holds parameter sets and their cartesian expansion.
package params

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Set maps parameter names to scalar values.
//
// A Set handed out by this package is never shared: callers may keep it
// without it changing underneath them.
type Set map[string]any

// Keys returns the parameter names in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the set. Cloning nil yields an empty set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new set containing the keys of s and o; o wins on
// collision.
func (s Set) Merge(o Set) Set {
	out := make(Set, len(s)+len(o))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}

// String renders the set as "k=v, k=v" with sorted keys.
func (s Set) String() string {
	if len(s) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%v", k, s[k]))
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether both sets hold the same keys and values.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for k, v := range s {
		ov, ok := o[k]
		if !ok || !reflect.DeepEqual(ov, v) {
			return false
		}
	}
	return true
}
