package result

import (
	"errors"
	"fmt"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// ErrFrozen is returned when appending to a collection that was already
// frozen.
var ErrFrozen = errors.New("result collection is frozen")

// Builder appends to a Collection during a run.
type Builder struct {
	coll   *Collection
	frozen bool
}

// NewBuilder starts a collection whose run began at start.
func NewBuilder(start time.Time) *Builder {
	return &Builder{coll: &Collection{startTime: start}}
}

// CaseBuilder appends subjects to one case result.
type CaseBuilder struct {
	b  *Builder
	cr *CaseResult
}

// SubjectBuilder appends groups to one subject result.
type SubjectBuilder struct {
	b  *Builder
	sr *SubjectResult
}

// GroupBuilder appends iterations to one group.
type GroupBuilder struct {
	b *Builder
	g *Group
}

// AddCase appends a case result.
func (b *Builder) AddCase(name string) (*CaseBuilder, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	cr := &CaseResult{name: name}
	b.coll.cases = append(b.coll.cases, cr)
	return &CaseBuilder{b: b, cr: cr}, nil
}

// Freeze closes the collection at end and returns it. Later appends
// through this builder or any of its children fail with ErrFrozen.
// Freezing twice returns the same collection.
func (b *Builder) Freeze(end time.Time) *Collection {
	if b.frozen {
		return b.coll
	}
	b.frozen = true
	b.coll.endTime = end
	for _, cr := range b.coll.cases {
		for _, sr := range cr.subjects {
			for _, g := range sr.groups {
				g.frozen = true
			}
		}
	}
	return b.coll
}

// AddSubject appends a subject result. The subject is copied.
func (cb *CaseBuilder) AddSubject(s bench.Subject) (*SubjectBuilder, error) {
	if cb.b.frozen {
		return nil, ErrFrozen
	}
	sr := &SubjectResult{subject: s.Clone()}
	cb.cr.subjects = append(cb.cr.subjects, sr)
	return &SubjectBuilder{b: cb.b, sr: sr}, nil
}

// Fail records the error that stopped the subject.
func (sb *SubjectBuilder) Fail(err error) error {
	if sb.b.frozen {
		return ErrFrozen
	}
	sb.sr.err = err
	return nil
}

// AddGroup appends a group for one parameter set.
func (sb *SubjectBuilder) AddGroup(set params.Set) (*GroupBuilder, error) {
	if sb.b.frozen {
		return nil, ErrFrozen
	}
	g := &Group{params: set.Clone()}
	sb.sr.groups = append(sb.sr.groups, g)
	return &GroupBuilder{b: sb.b, g: g}, nil
}

// Record appends an iteration. Durations must not be negative.
func (gb *GroupBuilder) Record(index int, d time.Duration) error {
	if gb.b.frozen {
		return ErrFrozen
	}
	if d < 0 {
		return fmt.Errorf("iteration %d: negative duration %v", index, d)
	}
	gb.g.iterations = append(gb.g.iterations, Iteration{
		Index:      index,
		Parameters: gb.g.params.Clone(),
		Duration:   d,
	})
	return nil
}

// Fail records the error that aborted the group.
func (gb *GroupBuilder) Fail(err error) error {
	if gb.b.frozen {
		return ErrFrozen
	}
	gb.g.err = err
	return nil
}
