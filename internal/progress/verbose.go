package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/output"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// Verbose prints one line per subject with its iteration count and mean
// time.
type Verbose struct {
	w       io.Writer
	scheme  *output.ColorScheme
	noColor bool

	count int
	total time.Duration
}

// NewVerbose creates a Verbose observer.
func NewVerbose(cfg Config) *Verbose {
	scheme := cfg.scheme()
	return &Verbose{w: cfg.writer(), scheme: scheme, noColor: !output.UseColors(cfg.writer(), cfg.NoColor)}
}

func (v *Verbose) CaseStarted(caseName string) {
	fmt.Fprintf(v.w, "%s\n", v.scheme.Case.Sprint(caseName))
}

func (v *Verbose) CaseFinished(string) {
	fmt.Fprintln(v.w)
}

func (v *Verbose) SubjectStarted(string, bench.Subject) {
	v.count = 0
	v.total = 0
}

func (v *Verbose) IterationRecorded(_ string, _ bench.Subject, _ params.Set, _ int, d time.Duration) {
	v.count++
	v.total += d
}

func (v *Verbose) SubjectFinished(_ string, s bench.Subject, err error) {
	var mean time.Duration
	if v.count > 0 {
		mean = v.total / time.Duration(v.count)
	}

	icon := output.SuccessIcon(v.noColor)
	if err != nil {
		icon = output.ErrorIcon(v.noColor)
	}

	fmt.Fprintf(v.w, "  %s %s (%d iterations, mean %s)\n",
		icon, v.scheme.Subject.Sprint(s.Name), v.count, output.FormatDurationShort(mean))

	if err != nil {
		// errors.Join separates members with newlines
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(v.w, "      %s\n", v.scheme.Failure.Sprint(line))
		}
	}
}
