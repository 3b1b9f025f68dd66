// Package runner executes benchmark cases and builds the result tree.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wesleyorama2/benchkit/internal/annotation"
	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/discovery"
	"github.com/wesleyorama2/benchkit/internal/params"
	"github.com/wesleyorama2/benchkit/internal/progress"
	"github.com/wesleyorama2/benchkit/internal/result"
)

// SubjectDiscoverer extracts the subjects of a case.
//
// Discover may return subjects together with a discovery.Errors describing
// the methods it had to skip.
type SubjectDiscoverer interface {
	Discover(c bench.Case) ([]bench.Subject, error)
}

// Runner executes cases one after another.
//
// The order case → subject → parameter set → iteration is both the
// result order and the temporal order. Iterations are never run
// concurrently: timing one assumes the host is otherwise idle.
type Runner struct {
	discovery SubjectDiscoverer
	observer  progress.Observer
	clock     bench.Clock
	now       func() time.Time
	logger    *slog.Logger
	failFast  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver sets the progress observer.
func WithObserver(o progress.Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithClock sets the clock used to time iterations.
func WithClock(c bench.Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFailFast makes the first failure abort the run. Without it
// failures are recorded on the unit they stopped and the run continues.
func WithFailFast(v bool) Option {
	return func(r *Runner) {
		r.failFast = v
	}
}

// New creates a runner that extracts subjects with d.
func New(d SubjectDiscoverer, opts ...Option) *Runner {
	r := &Runner{
		discovery: d,
		observer:  progress.Nop{},
		clock:     time.Now,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every case of the collection and returns the frozen
// results.
//
// The returned error is non-nil only when the run was aborted: the
// context was cancelled (checked between iterations, a running subject
// is never interrupted) or fail-fast stopped at a failure. The results
// gathered up to that point are returned with it.
func (r *Runner) Run(ctx context.Context, cases *discovery.Collection) (*result.Collection, error) {
	b := result.NewBuilder(r.now())

	for _, c := range cases.Cases() {
		if err := ctx.Err(); err != nil {
			return b.Freeze(r.now()), err
		}
		if err := r.runCase(ctx, b, c); err != nil {
			return b.Freeze(r.now()), err
		}
	}

	return b.Freeze(r.now()), nil
}

// runCase discovers and executes the subjects of one case in discovery
// order. Subjects that failed discovery are recorded as failed results.
func (r *Runner) runCase(ctx context.Context, b *result.Builder, c bench.Case) error {
	r.observer.CaseStarted(c.Name())
	defer r.observer.CaseFinished(c.Name())

	cb, err := b.AddCase(c.Name())
	if err != nil {
		return err
	}

	subjects, err := r.discovery.Discover(c)
	var skipped discovery.Errors
	if err != nil {
		if !errors.As(err, &skipped) || r.failFast {
			return fmt.Errorf("discovering subjects of %s: %w", c.Name(), err)
		}
	}

	for _, u := range runOrder(c.Methods(), subjects, skipped) {
		if u.failure != nil {
			if err := r.recordDiscoveryFailure(cb, u.failure); err != nil {
				return err
			}
			continue
		}
		if err := r.runSubject(ctx, cb, c, u.subject); err != nil {
			return err
		}
	}

	return nil
}

// unit is one entry of a case's run order: a subject to execute or a
// method that failed discovery.
type unit struct {
	subject bench.Subject
	failure *discovery.SubjectError
}

// runOrder keeps subjects in the order they were discovered. A discovery
// failure goes before the first subject registered after it in the
// method table; failures the table cannot place go last, in order.
func runOrder(table *bench.MethodTable, subjects []bench.Subject, skipped discovery.Errors) []unit {
	pos := make(map[string]int)
	for i, m := range table.Methods() {
		pos[m.Name] = i
	}

	pending := append(discovery.Errors(nil), skipped...)
	out := make([]unit, 0, len(subjects)+len(skipped))
	for _, s := range subjects {
		if sp, ok := pos[s.Name]; ok {
			rest := pending[:0]
			for _, se := range pending {
				if fp, known := pos[se.Method]; known && fp < sp {
					out = append(out, unit{failure: se})
					continue
				}
				rest = append(rest, se)
			}
			pending = rest
		}
		out = append(out, unit{subject: s})
	}
	for _, se := range pending {
		out = append(out, unit{failure: se})
	}
	return out
}

// recordDiscoveryFailure records a method that never became a subject.
// Its subject carries only the name and the default iteration count.
func (r *Runner) recordDiscoveryFailure(cb *result.CaseBuilder, se *discovery.SubjectError) error {
	s := bench.Subject{
		Name:           se.Method,
		BeforeMethods:  []string{},
		ParamProviders: []string{},
		Iterations:     annotation.DefaultIterations,
	}
	r.observer.SubjectStarted(se.Case, s.Clone())
	r.logger.Warn("subject skipped", "case", se.Case, "subject", se.Method, "error", se.Err)

	sb, err := cb.AddSubject(s)
	if err != nil {
		return err
	}
	if err := sb.Fail(se); err != nil {
		return err
	}
	r.observer.SubjectFinished(se.Case, s.Clone(), se)
	return nil
}

// runSubject executes one subject. It returns an error only when the run
// must stop.
func (r *Runner) runSubject(ctx context.Context, cb *result.CaseBuilder, c bench.Case, s bench.Subject) error {
	r.observer.SubjectStarted(c.Name(), s.Clone())
	r.logger.Debug("running subject", "case", c.Name(), "subject", s.Name, "iterations", s.Iterations)

	sb, err := cb.AddSubject(s)
	if err != nil {
		return err
	}

	failures, abort := r.execute(ctx, sb, c, s)
	failed := errors.Join(failures...)
	r.observer.SubjectFinished(c.Name(), s.Clone(), failed)

	if abort != nil {
		return abort
	}
	if failed != nil && r.failFast {
		return failed
	}
	return nil
}

// execute runs the parameter sets of a subject. Failures are recorded on
// the builder and returned; abort is set when the context was cancelled.
func (r *Runner) execute(ctx context.Context, sb *result.SubjectBuilder, c bench.Case, s bench.Subject) (failures []error, abort error) {
	table := c.Methods()

	fail := func(err error) []error {
		r.logger.Warn("subject failed", "case", c.Name(), "subject", s.Name, "error", err)
		if ferr := sb.Fail(err); ferr != nil {
			return []error{err, ferr}
		}
		return []error{err}
	}

	run, derr := r.resolve(table, c, s)
	if derr != nil {
		return fail(derr), nil
	}

	hooks, err := r.hooks(table, c, s)
	if err != nil {
		return fail(err), nil
	}

	exp, err := r.expand(table, c, s)
	if err != nil {
		return fail(err), nil
	}

	for _, set := range exp.All() {
		if err := ctx.Err(); err != nil {
			return failures, err
		}

		gb, err := sb.AddGroup(set)
		if err != nil {
			return append(failures, err), err
		}

		if err := r.runGroup(ctx, gb, hooks, run, c, s, set); err != nil {
			if cerr := ctx.Err(); cerr != nil && errors.Is(err, cerr) {
				return failures, err
			}
			r.logger.Warn("parameter set failed", "case", c.Name(), "subject", s.Name, "params", set.String(), "error", err)
			if ferr := gb.Fail(err); ferr != nil {
				return append(failures, err, ferr), ferr
			}
			failures = append(failures, err)
		}
	}

	return failures, nil
}

// runGroup calls the before-methods and then times every iteration of one
// parameter set.
func (r *Runner) runGroup(ctx context.Context, gb *result.GroupBuilder, hooks []bench.Method, run bench.BenchFunc, c bench.Case, s bench.Subject, set params.Set) error {
	for _, h := range hooks {
		if err := h.CallHook(); err != nil {
			return &Error{Kind: ErrHookFailure, Case: c.Name(), Subject: s.Name, Method: h.Name, Params: set.Clone(), Err: err}
		}
	}

	for i := 0; i < s.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		it := bench.NewIteration(i, set, r.clock)
		d, err := it.Measure(run)
		if err != nil {
			return &Error{Kind: ErrIterationFailure, Case: c.Name(), Subject: s.Name, Params: set.Clone(), Err: fmt.Errorf("iteration %d: %w", i, err)}
		}
		if err := gb.Record(i, d); err != nil {
			return err
		}
		r.observer.IterationRecorded(c.Name(), s.Clone(), set.Clone(), i, d)
	}

	return nil
}

// resolve finds the subject body in the method table. A name the table
// does not hold fails the subject.
func (r *Runner) resolve(table *bench.MethodTable, c bench.Case, s bench.Subject) (bench.BenchFunc, error) {
	m, ok := table.Lookup(s.Name)
	if !ok || m.BenchFunc() == nil {
		return nil, &Error{Kind: discovery.ErrNotInvocable, Case: c.Name(), Subject: s.Name, Method: s.Name}
	}
	return m.BenchFunc(), nil
}

// hooks resolves the before-methods up front so a typo fails the subject
// once instead of every parameter set.
func (r *Runner) hooks(table *bench.MethodTable, c bench.Case, s bench.Subject) ([]bench.Method, error) {
	hooks := make([]bench.Method, 0, len(s.BeforeMethods))
	for _, name := range s.BeforeMethods {
		m, ok := table.Lookup(name)
		if !ok || m.Kind != bench.KindHook {
			return nil, &Error{Kind: ErrMissingHook, Case: c.Name(), Subject: s.Name, Method: name}
		}
		hooks = append(hooks, m)
	}
	return hooks, nil
}

// expand invokes the subject's providers in declared order and expands
// their output.
func (r *Runner) expand(table *bench.MethodTable, c bench.Case, s bench.Subject) (*params.Expansion, error) {
	lists := make([][]params.Set, 0, len(s.ParamProviders))
	for _, name := range s.ParamProviders {
		m, ok := table.Lookup(name)
		if !ok || m.Kind != bench.KindProvider {
			return nil, &Error{Kind: ErrMissingProvider, Case: c.Name(), Subject: s.Name, Method: name}
		}
		sets, err := m.CallProvider()
		if err != nil {
			return nil, &Error{Kind: ErrProviderFailure, Case: c.Name(), Subject: s.Name, Method: name, Err: err}
		}
		lists = append(lists, sets)
	}

	exp, err := params.Expand(lists)
	if err != nil {
		var cerr *params.CollisionError
		if errors.As(err, &cerr) {
			return nil, &Error{
				Kind:    params.ErrKeyCollision,
				Case:    c.Name(),
				Subject: s.Name,
				Err: fmt.Errorf("key %q is declared by providers %q and %q",
					cerr.Key, s.ParamProviders[cerr.First], s.ParamProviders[cerr.Second]),
			}
		}
		return nil, &Error{Kind: params.ErrTooLarge, Case: c.Name(), Subject: s.Name, Err: err}
	}
	return exp, nil
}
