// Package progress reports a running benchmark suite as it advances.
//
// Observers are notified synchronously from the runner's goroutine, in
// temporal order. They only watch: nothing they do changes the results.
package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// Observer receives run events.
type Observer interface {
	CaseStarted(caseName string)
	CaseFinished(caseName string)
	SubjectStarted(caseName string, s bench.Subject)
	// SubjectFinished reports every failure recorded for the subject, or
	// nil when it completed cleanly.
	SubjectFinished(caseName string, s bench.Subject, err error)
	IterationRecorded(caseName string, s bench.Subject, set params.Set, index int, d time.Duration)
}

// Nop ignores every event.
type Nop struct{}

func (Nop) CaseStarted(string)                                                      {}
func (Nop) CaseFinished(string)                                                     {}
func (Nop) SubjectStarted(string, bench.Subject)                                    {}
func (Nop) SubjectFinished(string, bench.Subject, error)                            {}
func (Nop) IterationRecorded(string, bench.Subject, params.Set, int, time.Duration) {}

// Multi fans events out to several observers in order.
type Multi []Observer

func (m Multi) CaseStarted(caseName string) {
	for _, o := range m {
		o.CaseStarted(caseName)
	}
}

func (m Multi) CaseFinished(caseName string) {
	for _, o := range m {
		o.CaseFinished(caseName)
	}
}

func (m Multi) SubjectStarted(caseName string, s bench.Subject) {
	for _, o := range m {
		o.SubjectStarted(caseName, s)
	}
}

func (m Multi) SubjectFinished(caseName string, s bench.Subject, err error) {
	for _, o := range m {
		o.SubjectFinished(caseName, s, err)
	}
}

func (m Multi) IterationRecorded(caseName string, s bench.Subject, set params.Set, index int, d time.Duration) {
	for _, o := range m {
		o.IterationRecorded(caseName, s, set, index, d)
	}
}

// New returns the observer registered under name: "dots", "verbose",
// "log" or "none".
func New(name string, cfg Config) (Observer, error) {
	switch name {
	case "", "dots":
		return NewDots(cfg), nil
	case "verbose":
		return NewVerbose(cfg), nil
	case "log":
		return NewLog(cfg.Logger), nil
	case "none":
		return Nop{}, nil
	}
	return nil, &UnknownError{Name: name}
}

// Names lists the observers New accepts.
func Names() []string {
	return []string{"dots", "verbose", "log", "none"}
}

// UnknownError is returned by New for an unregistered observer name.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown progress observer %q (available: %s)", e.Name, strings.Join(Names(), ", "))
}
