package bench

import (
	"fmt"
	"time"

	"github.com/wesleyorama2/benchkit/internal/params"
)

// Clock returns the current time. Runs use time.Now; tests substitute a
// fake.
type Clock func() time.Time

// Iteration is the context of one timed call of a subject.
//
// The timer runs for the whole call unless the subject pauses it with
// StopTimer and resumes it with StartTimer, or discards setup time with
// ResetTimer.
type Iteration struct {
	index  int
	params params.Set
	clock  Clock

	running bool
	start   time.Time
	elapsed time.Duration
}

// NewIteration returns the context for iteration index of a subject under
// the given parameter set. A nil clock means time.Now.
func NewIteration(index int, set params.Set, clock Clock) *Iteration {
	if clock == nil {
		clock = time.Now
	}
	return &Iteration{index: index, params: set.Clone(), clock: clock}
}

// Index is the zero-based iteration number within its parameter set.
func (it *Iteration) Index() int {
	return it.index
}

// Params returns a copy of the parameter set.
func (it *Iteration) Params() params.Set {
	return it.params.Clone()
}

// Param returns one parameter value, or nil.
func (it *Iteration) Param(name string) any {
	return it.params[name]
}

// String returns a parameter as a string, formatting non-string values.
func (it *Iteration) String(name string) string {
	v, ok := it.params[name]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns a numeric parameter as an int. Strings are not converted.
func (it *Iteration) Int(name string) int {
	switch v := it.params[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// StartTimer resumes timing. It is a no-op if the timer is running.
func (it *Iteration) StartTimer() {
	if it.running {
		return
	}
	it.running = true
	it.start = it.clock()
}

// StopTimer pauses timing. It is a no-op if the timer is stopped.
func (it *Iteration) StopTimer() {
	if !it.running {
		return
	}
	it.elapsed += it.clock().Sub(it.start)
	it.running = false
}

// ResetTimer discards the time measured so far.
func (it *Iteration) ResetTimer() {
	if it.running {
		it.start = it.clock()
	}
	it.elapsed = 0
}

// Elapsed returns the time measured so far.
func (it *Iteration) Elapsed() time.Duration {
	d := it.elapsed
	if it.running {
		d += it.clock().Sub(it.start)
	}
	if d < 0 {
		return 0
	}
	return d
}

// Measure runs fn with the timer started and returns the measured
// duration. A panic in fn is returned as an error; the time up to the
// panic is still measured.
func (it *Iteration) Measure(fn BenchFunc) (d time.Duration, err error) {
	it.running = false
	it.elapsed = 0

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		it.StopTimer()
		d = it.Elapsed()
	}()

	it.StartTimer()
	return 0, fn(it)
}
