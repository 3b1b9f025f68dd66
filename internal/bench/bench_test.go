package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/benchkit/internal/annotation"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestMethodTable_Order(t *testing.T) {
	noop := func(*Iteration) error { return nil }
	table := NewMethodTable().
		Bench("benchB", "", noop).
		Hook("setUp", func() error { return nil }).
		Bench("benchA", "/** @iterations 2 */", noop).
		Provider("provide", func() ([]params.Set, error) { return nil, nil })

	var names []string
	for _, m := range table.Methods() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"benchB", "setUp", "benchA", "provide"}, names)

	m, ok := table.Lookup("benchA")
	require.True(t, ok)
	assert.Equal(t, KindBench, m.Kind)
	assert.Equal(t, "/** @iterations 2 */", m.Doc)
	assert.NotNil(t, m.BenchFunc())

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
}

func TestMethodTable_RegistrationMistakes(t *testing.T) {
	assert.Panics(t, func() {
		NewMethodTable().Hook("", func() error { return nil })
	})
	assert.Panics(t, func() {
		NewMethodTable().Bench("benchNil", "", nil)
	})
	assert.Panics(t, func() {
		NewMethodTable().
			Hook("dup", func() error { return nil }).
			Hook("dup", func() error { return nil })
	})
}

func TestMethod_CallHook(t *testing.T) {
	calls := 0
	table := NewMethodTable().
		Hook("ok", func() error { calls++; return nil }).
		Hook("fails", func() error { return errors.New("boom") }).
		Hook("panics", func() error { panic("kaboom") }).
		Provider("provider", func() ([]params.Set, error) { return nil, nil })

	m, _ := table.Lookup("ok")
	require.NoError(t, m.CallHook())
	assert.Equal(t, 1, calls)

	m, _ = table.Lookup("fails")
	assert.EqualError(t, m.CallHook(), "boom")

	m, _ = table.Lookup("panics")
	assert.EqualError(t, m.CallHook(), "panic: kaboom")

	m, _ = table.Lookup("provider")
	assert.ErrorContains(t, m.CallHook(), "not a hook")
}

func TestMethod_CallProvider(t *testing.T) {
	table := NewMethodTable().
		Provider("lengths", func() ([]params.Set, error) {
			return []params.Set{{"length": 1}, {"length": 2}}, nil
		}).
		Provider("broken", func() ([]params.Set, error) { panic("no") }).
		Hook("hook", func() error { return nil })

	m, _ := table.Lookup("lengths")
	sets, err := m.CallProvider()
	require.NoError(t, err)
	assert.Equal(t, []params.Set{{"length": 1}, {"length": 2}}, sets)

	m, _ = table.Lookup("broken")
	_, err = m.CallProvider()
	assert.EqualError(t, err, "panic: no")

	m, _ = table.Lookup("hook")
	_, err = m.CallProvider()
	assert.ErrorContains(t, err, "not a provider")
}

func TestNewSubject_CopiesSlices(t *testing.T) {
	cfg := annotation.Config{
		Description:    "d",
		BeforeMethods:  []string{"a"},
		ParamProviders: []string{"p"},
		Iterations:     3,
	}
	s := NewSubject("benchX", cfg)
	cfg.BeforeMethods[0] = "changed"

	assert.Equal(t, Subject{
		Name:           "benchX",
		Description:    "d",
		BeforeMethods:  []string{"a"},
		ParamProviders: []string{"p"},
		Iterations:     3,
	}, s)
}

func TestSubject_Clone(t *testing.T) {
	s := Subject{Name: "benchX", BeforeMethods: []string{"a"}, ParamProviders: []string{"p"}, Iterations: 2}
	c := s.Clone()
	c.BeforeMethods[0] = "changed"
	c.ParamProviders[0] = "changed"

	assert.Equal(t, []string{"a"}, s.BeforeMethods)
	assert.Equal(t, []string{"p"}, s.ParamProviders)
	assert.Equal(t, 2, c.Iterations)
}

func TestIteration_MeasureWholeCall(t *testing.T) {
	clock := &fakeClock{step: 10 * time.Nanosecond}
	it := NewIteration(0, nil, clock.Now)

	d, err := it.Measure(func(*Iteration) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 10*time.Nanosecond, d)
}

func TestIteration_TimerMarks(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	it := NewIteration(2, params.Set{"n": 5}, clock.Now)

	d, err := it.Measure(func(it *Iteration) error {
		it.StopTimer()  // 1µs measured
		it.StopTimer()  // no-op
		it.StartTimer() // restart
		it.ResetTimer() // discard, restart
		clock.Now()     // 1µs of work
		it.StopTimer()  // ends the reset window: 2µs
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Microsecond, d)
	assert.Equal(t, 2, it.Index())
	assert.Equal(t, 5, it.Int("n"))
}

func TestIteration_MeasureError(t *testing.T) {
	it := NewIteration(0, nil, nil)
	_, err := it.Measure(func(*Iteration) error { return errors.New("bad input") })
	assert.EqualError(t, err, "bad input")
}

func TestIteration_MeasurePanic(t *testing.T) {
	clock := &fakeClock{step: time.Millisecond}
	it := NewIteration(0, nil, clock.Now)

	d, err := it.Measure(func(*Iteration) error { panic("oops") })
	assert.EqualError(t, err, "panic: oops")
	assert.Equal(t, time.Millisecond, d)
}

func TestIteration_ParamAccessors(t *testing.T) {
	set := params.Set{"length": "12", "count": 3, "ratio": 2.0}
	it := NewIteration(0, set, nil)

	assert.Equal(t, "12", it.String("length"))
	assert.Equal(t, "3", it.String("count"))
	assert.Equal(t, "", it.String("missing"))
	assert.Equal(t, 3, it.Int("count"))
	assert.Equal(t, 2, it.Int("ratio"))
	assert.Equal(t, 0, it.Int("length"))
	assert.Nil(t, it.Param("missing"))

	// context holds its own copy
	set["count"] = 4
	got := it.Params()
	got["count"] = 5
	assert.Equal(t, 3, it.Param("count"))
}

func TestRegistry(t *testing.T) {
	before := len(Registered())
	c := &nameOnlyCase{name: "RegistryCase"}
	Register(c)

	cases := Registered()
	require.Len(t, cases, before+1)
	assert.Same(t, c, cases[len(cases)-1])
	assert.Panics(t, func() { Register(nil) })
}

type nameOnlyCase struct{ name string }

func (c *nameOnlyCase) Name() string          { return c.name }
func (c *nameOnlyCase) Methods() *MethodTable { return NewMethodTable() }
