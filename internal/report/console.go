package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/wesleyorama2/benchkit/internal/output"
	"github.com/wesleyorama2/benchkit/internal/params"
	"github.com/wesleyorama2/benchkit/internal/result"
)

// ConsoleTable prints one table per subject.
type ConsoleTable struct {
	out     io.Writer
	noColor bool
}

// NewConsoleTable creates the "console_table" generator writing to w.
func NewConsoleTable(w io.Writer, noColor bool) *ConsoleTable {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleTable{out: w, noColor: noColor}
}

func (g *ConsoleTable) Name() string { return "console_table" }

func (g *ConsoleTable) Configure(s *OptionsSchema) {
	s.Int("precision", 3, 0).
		Bool("aggregate_iterations", false).
		String("time_unit", string(output.Microseconds), output.TimeUnits()...)
}

func (g *ConsoleTable) Generate(coll *result.Collection, opts Options) error {
	unit, err := output.ParseTimeUnit(opts.String("time_unit"))
	if err != nil {
		return err
	}

	r := consoleRenderer{
		w:         g.out,
		scheme:    output.SchemeFor(output.UseColors(g.out, g.noColor)),
		unit:      unit,
		precision: opts.Int("precision"),
		aggregate: opts.Bool("aggregate_iterations"),
	}

	for _, cr := range coll.Cases() {
		r.writeCase(cr)
	}
	r.writeSummary(coll)
	return nil
}

type consoleRenderer struct {
	w         io.Writer
	scheme    *output.ColorScheme
	unit      output.TimeUnit
	precision int
	aggregate bool
}

func (r consoleRenderer) writeCase(cr *result.CaseResult) {
	fmt.Fprintln(r.w, r.scheme.Case.Sprint(cr.Name()))
	fmt.Fprintln(r.w, strings.Repeat("=", len(cr.Name())))
	fmt.Fprintln(r.w)

	for _, sr := range cr.Subjects() {
		r.writeSubject(sr)
	}
}

func (r consoleRenderer) writeSubject(sr *result.SubjectResult) {
	title := r.scheme.Subject.Sprint(sr.Name())
	if d := sr.Subject().Description; d != "" {
		title += " " + r.scheme.Muted.Sprint(d)
	}
	fmt.Fprintln(r.w, title)

	if err := sr.Err(); err != nil {
		fmt.Fprintf(r.w, "  %s\n\n", r.scheme.Failure.Sprintf("FAILED: %v", err))
		return
	}

	groups := sr.Groups()
	if len(groups) == 0 {
		fmt.Fprintf(r.w, "  %s\n\n", r.scheme.Muted.Sprint("no parameter sets"))
		return
	}

	keys := paramKeys(groups)
	if r.aggregate {
		r.aggregateTable(groups, keys).render(r.w, r.scheme)
	} else {
		r.iterationTable(groups, keys).render(r.w, r.scheme)
	}

	for _, g := range groups {
		if err := g.Err(); err != nil {
			fmt.Fprintf(r.w, "  %s\n", r.scheme.Failure.Sprintf("FAILED [%s]: %v", g.Parameters(), err))
		}
	}
	fmt.Fprintln(r.w)
}

func (r consoleRenderer) iterationTable(groups []*result.Group, keys []string) *table {
	t := &table{}
	t.column("#", true)
	for _, k := range keys {
		t.column(k, false)
	}
	t.column(r.header("time"), true)

	for _, g := range groups {
		set := g.Parameters()
		for _, it := range g.Iterations() {
			row := []string{fmt.Sprint(it.Index)}
			row = append(row, paramCells(set, keys)...)
			row = append(row, r.format(it.Duration))
			t.add(row...)
		}
	}
	return t
}

func (r consoleRenderer) aggregateTable(groups []*result.Group, keys []string) *table {
	t := &table{}
	for _, k := range keys {
		t.column(k, false)
	}
	t.column("iterations", true)
	for _, h := range []string{"mean", "min", "max", "stddev"} {
		t.column(r.header(h), true)
	}

	for _, g := range groups {
		s := g.Stats()
		row := paramCells(g.Parameters(), keys)
		row = append(row,
			fmt.Sprint(s.Count),
			r.format(s.Mean),
			r.format(s.Min),
			r.format(s.Max),
			r.format(s.StdDev),
		)
		t.add(row...)
	}
	return t
}

func (r consoleRenderer) writeSummary(coll *result.Collection) {
	n := coll.Counts()
	line := fmt.Sprintf("%d subjects, %d iterations, %d failures in %s",
		n.Subjects, n.Iterations, n.Failures, output.FormatDurationShort(coll.Duration()))
	if n.Failures > 0 {
		fmt.Fprintln(r.w, r.scheme.Failure.Sprint(line))
		return
	}
	fmt.Fprintln(r.w, r.scheme.Success.Sprint(line))
}

func (r consoleRenderer) header(name string) string {
	return fmt.Sprintf("%s (%s)", name, r.unit.Symbol())
}

func (r consoleRenderer) format(d time.Duration) string {
	return output.FormatIn(d, r.unit, r.precision)
}

// paramKeys is the sorted union of the parameter names of groups.
func paramKeys(groups []*result.Group) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, g := range groups {
		for _, k := range g.Parameters().Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func paramCells(set params.Set, keys []string) []string {
	cells := make([]string, len(keys))
	for i, k := range keys {
		if v, ok := set[k]; ok {
			cells[i] = fmt.Sprint(v)
		}
	}
	return cells
}
