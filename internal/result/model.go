// Package result holds the outcome of a benchmark run: a tree of cases,
// subjects, parameter-set groups and timed iterations.
//
// The tree is filled through a Builder while the run progresses and
// frozen before it is handed to reporters. Everything reachable from a
// Collection is read-only.
package result

import (
	"sync"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// Iteration is one timed call of a subject.
type Iteration struct {
	Index      int           `json:"index" yaml:"index"`
	Parameters params.Set    `json:"parameters" yaml:"parameters"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Group is the iterations a subject recorded under one parameter set.
type Group struct {
	params     params.Set
	iterations []Iteration
	err        error
	frozen     bool

	statsOnce sync.Once
	stats     Stats
}

// Parameters returns a copy of the group's parameter set.
func (g *Group) Parameters() params.Set {
	return g.params.Clone()
}

// Iterations returns the recorded iterations in order.
func (g *Group) Iterations() []Iteration {
	out := make([]Iteration, len(g.iterations))
	for i, it := range g.iterations {
		it.Parameters = it.Parameters.Clone()
		out[i] = it
	}
	return out
}

// Err is the failure that aborted the group, or nil.
func (g *Group) Err() error {
	return g.err
}

// Stats returns the aggregate statistics of the group's iterations. The
// result is memoized once the collection is frozen.
func (g *Group) Stats() Stats {
	if !g.frozen {
		return computeStats(durationsOf(g.iterations))
	}
	g.statsOnce.Do(func() {
		g.stats = computeStats(durationsOf(g.iterations))
	})
	return g.stats
}

// SubjectResult is the outcome of one subject.
type SubjectResult struct {
	subject bench.Subject
	groups  []*Group
	err     error
}

// Subject returns a copy of the subject definition.
func (s *SubjectResult) Subject() bench.Subject {
	return s.subject.Clone()
}

// Name is the subject's method name.
func (s *SubjectResult) Name() string {
	return s.subject.Name
}

// Groups returns the parameter-set groups in expansion order.
func (s *SubjectResult) Groups() []*Group {
	out := make([]*Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// Err is the failure that stopped the subject before or during
// expansion, or nil.
func (s *SubjectResult) Err() error {
	return s.err
}

// Failed reports whether the subject or any of its groups failed.
func (s *SubjectResult) Failed() bool {
	if s.err != nil {
		return true
	}
	for _, g := range s.groups {
		if g.err != nil {
			return true
		}
	}
	return false
}

// Stats aggregates every iteration of every group.
func (s *SubjectResult) Stats() Stats {
	var ds []time.Duration
	for _, g := range s.groups {
		ds = append(ds, durationsOf(g.iterations)...)
	}
	return computeStats(ds)
}

// CaseResult is the outcome of every subject of one case.
type CaseResult struct {
	name     string
	subjects []*SubjectResult
}

// Name is the case name.
func (c *CaseResult) Name() string {
	return c.name
}

// Subjects returns the subject results in discovery order.
func (c *CaseResult) Subjects() []*SubjectResult {
	out := make([]*SubjectResult, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// Collection is the root of a run's results.
type Collection struct {
	cases     []*CaseResult
	startTime time.Time
	endTime   time.Time
}

// Cases returns the case results in run order.
func (c *Collection) Cases() []*CaseResult {
	out := make([]*CaseResult, len(c.cases))
	copy(out, c.cases)
	return out
}

// StartTime is when the run began.
func (c *Collection) StartTime() time.Time {
	return c.startTime
}

// EndTime is when the collection was frozen.
func (c *Collection) EndTime() time.Time {
	return c.endTime
}

// Duration is the wall time of the run.
func (c *Collection) Duration() time.Duration {
	return c.endTime.Sub(c.startTime)
}

// Counts summarizes the size of a collection.
type Counts struct {
	Cases      int `json:"cases" yaml:"cases"`
	Subjects   int `json:"subjects" yaml:"subjects"`
	Groups     int `json:"groups" yaml:"groups"`
	Iterations int `json:"iterations" yaml:"iterations"`
	Failures   int `json:"failures" yaml:"failures"`
}

// Counts walks the tree and counts its nodes.
func (c *Collection) Counts() Counts {
	var n Counts
	n.Cases = len(c.cases)
	for _, cr := range c.cases {
		n.Subjects += len(cr.subjects)
		for _, sr := range cr.subjects {
			if sr.err != nil {
				n.Failures++
			}
			n.Groups += len(sr.groups)
			for _, g := range sr.groups {
				n.Iterations += len(g.iterations)
				if g.err != nil {
					n.Failures++
				}
			}
		}
	}
	return n
}

// Failure is a recorded error with the identity of the unit it stopped.
type Failure struct {
	Case       string
	Subject    string
	Parameters params.Set // nil when the whole subject failed
	Err        error
}

func (f Failure) Error() string {
	if f.Parameters == nil {
		return f.Case + "::" + f.Subject + ": " + f.Err.Error()
	}
	return f.Case + "::" + f.Subject + " [" + f.Parameters.String() + "]: " + f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Failures lists every failure in run order.
func (c *Collection) Failures() []Failure {
	var out []Failure
	for _, cr := range c.cases {
		for _, sr := range cr.subjects {
			if sr.err != nil {
				out = append(out, Failure{Case: cr.name, Subject: sr.subject.Name, Err: sr.err})
			}
			for _, g := range sr.groups {
				if g.err != nil {
					out = append(out, Failure{Case: cr.name, Subject: sr.subject.Name, Parameters: g.params.Clone(), Err: g.err})
				}
			}
		}
	}
	return out
}

func durationsOf(its []Iteration) []time.Duration {
	ds := make([]time.Duration, len(its))
	for i, it := range its {
		ds[i] = it.Duration
	}
	return ds
}
