package samples

import (
	"strings"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// StringCase compares ways of building a string. The input is prepared
// by a before-method so only the building itself is timed.
type StringCase struct {
	parts []string
	out   string
}

func (c *StringCase) Name() string { return "StringCase" }

func (c *StringCase) Methods() *bench.MethodTable {
	return bench.NewMethodTable().
		Bench("benchBuilder", `/**
		 * @description strings.Builder
		 * @beforeMethod reset
		 * @paramProvider provideLengths
		 * @iterations 5
		 */`, c.benchBuilder).
		Bench("benchConcat", `/**
		 * @description += concatenation
		 * @beforeMethod reset
		 * @paramProvider provideLengths
		 * @iterations 5
		 */`, c.benchConcat).
		Bench("benchJoin", `/**
		 * @description strings.Join with the parts slice built inside the timer
		 * @beforeMethod reset
		 * @paramProvider provideLengths
		 * @iterations 5
		 */`, c.benchJoin).
		Hook("reset", c.reset).
		Provider("provideLengths", c.provideLengths)
}

func (c *StringCase) reset() error {
	c.parts = nil
	c.out = ""
	return nil
}

func (c *StringCase) prepare(it *bench.Iteration) {
	n := it.Int("length")
	if len(c.parts) == n {
		return
	}
	c.parts = make([]string, n)
	for i := range c.parts {
		c.parts[i] = "x"
	}
}

func (c *StringCase) benchBuilder(it *bench.Iteration) error {
	it.StopTimer()
	c.prepare(it)
	it.StartTimer()

	var sb strings.Builder
	for _, p := range c.parts {
		sb.WriteString(p)
	}
	c.out = sb.String()
	return nil
}

func (c *StringCase) benchConcat(it *bench.Iteration) error {
	it.StopTimer()
	c.prepare(it)
	it.StartTimer()

	s := ""
	for _, p := range c.parts {
		s += p
	}
	c.out = s
	return nil
}

func (c *StringCase) benchJoin(it *bench.Iteration) error {
	c.parts = nil
	c.prepare(it)
	c.out = strings.Join(c.parts, "")
	return nil
}

func (c *StringCase) provideLengths() ([]params.Set, error) {
	return []params.Set{
		{"length": 10},
		{"length": 1000},
	}, nil
}
