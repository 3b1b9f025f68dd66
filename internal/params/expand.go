package params

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrKeyCollision is returned when two input sets contribute the same
	// parameter name to an expanded set.
	ErrKeyCollision = errors.New("parameter key collision")

	// ErrTooLarge is returned when the product of the set sizes does not
	// fit in an int.
	ErrTooLarge = errors.New("parameter expansion too large")
)

// CollisionError names the key two input sets both declare.
type CollisionError struct {
	Key    string
	First  int // index of the first input set declaring Key
	Second int // index of the later input set declaring Key
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: key %q is declared by parameter sets %d and %d", ErrKeyCollision, e.Key, e.First, e.Second)
}

func (e *CollisionError) Unwrap() error {
	return ErrKeyCollision
}

// Expansion is the cartesian product of an ordered list of parameter set
// lists.
//
// Output index k maps to the digit vector
//
//	(k mod c0, (k / c0) mod c1, (k / (c0*c1)) mod c2, ...)
//
// so the first list varies fastest. The emitted set merges
// sets[0][d0], sets[1][d1], ... in that order. An Expansion is immutable
// and can be traversed any number of times.
type Expansion struct {
	sets  [][]Set
	total int
}

// Expand builds the expansion of sets.
//
// An empty sets yields exactly one empty Set. If any list is empty the
// expansion is empty. A key declared by members of two different lists
// is rejected with a *CollisionError.
func Expand(sets [][]Set) (*Expansion, error) {
	total := 1
	for _, list := range sets {
		if len(list) == 0 {
			total = 0
			break
		}
		if total > math.MaxInt/len(list) {
			return nil, fmt.Errorf("%w: more than %d combinations", ErrTooLarge, math.MaxInt)
		}
		total *= len(list)
	}

	if total > 0 {
		if err := checkCollisions(sets); err != nil {
			return nil, err
		}
	}

	copied := make([][]Set, len(sets))
	for i, list := range sets {
		copied[i] = make([]Set, len(list))
		for j, s := range list {
			copied[i][j] = s.Clone()
		}
	}

	return &Expansion{sets: copied, total: total}, nil
}

// checkCollisions fails if any key appears in two different lists. Every
// member of every list takes part in at least one combination, so a key
// shared across lists always collides somewhere.
func checkCollisions(sets [][]Set) error {
	owner := make(map[string]int)
	for i, list := range sets {
		seen := make(map[string]bool)
		for _, s := range list {
			for _, k := range s.Keys() {
				if seen[k] {
					continue
				}
				seen[k] = true
				if first, ok := owner[k]; ok {
					return &CollisionError{Key: k, First: first, Second: i}
				}
				owner[k] = i
			}
		}
	}
	return nil
}

// Len returns the number of sets in the expansion, the product of the
// input list sizes.
func (e *Expansion) Len() int {
	return e.total
}

// At returns the set at output index k. It panics if k is out of range.
func (e *Expansion) At(k int) Set {
	if k < 0 || k >= e.total {
		panic(fmt.Sprintf("params: index %d out of range [0,%d)", k, e.total))
	}

	out := make(Set)
	rest := k
	for _, list := range e.sets {
		digit := rest % len(list)
		rest /= len(list)
		for name, v := range list[digit] {
			out[name] = v
		}
	}
	return out
}

// All yields each output index with its set, in order.
func (e *Expansion) All() iter.Seq2[int, Set] {
	return func(yield func(int, Set) bool) {
		for k := 0; k < e.total; k++ {
			if !yield(k, e.At(k)) {
				return
			}
		}
	}
}

// Collect returns every set of the expansion in order.
func (e *Expansion) Collect() []Set {
	out := make([]Set, 0, e.total)
	for _, s := range e.All() {
		out = append(out, s)
	}
	return out
}
