package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/output"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// dotsPerLine wraps long runs.
const dotsPerLine = 60

// Dots prints one dot per recorded iteration and an F per failed subject,
// PHPUnit style.
type Dots struct {
	w      io.Writer
	scheme *output.ColorScheme
	column int
}

// NewDots creates a Dots observer.
func NewDots(cfg Config) *Dots {
	return &Dots{w: cfg.writer(), scheme: cfg.scheme()}
}

func (d *Dots) CaseStarted(caseName string) {
	d.column = 0
	fmt.Fprintf(d.w, "%s\n", d.scheme.Case.Sprint(caseName))
}

func (d *Dots) CaseFinished(string) {
	fmt.Fprintln(d.w)
}

func (d *Dots) SubjectStarted(string, bench.Subject) {}

func (d *Dots) SubjectFinished(_ string, _ bench.Subject, err error) {
	if err != nil {
		d.mark(d.scheme.Failure.Sprint("F"))
	}
}

func (d *Dots) IterationRecorded(string, bench.Subject, params.Set, int, time.Duration) {
	d.mark(".")
}

func (d *Dots) mark(s string) {
	if d.column == dotsPerLine {
		fmt.Fprintln(d.w)
		d.column = 0
	}
	fmt.Fprint(d.w, s)
	d.column++
}
