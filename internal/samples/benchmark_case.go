// Package samples ships example benchmark cases. Importing it registers
// them with the bench package.
package samples

import (
	"math/rand/v2"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// BenchmarkCase exercises the basic features: a randomly slow subject, a
// repeated no-op and a subject expanded over two providers.
type BenchmarkCase struct {
	// MaxSleep bounds the random pause of benchRandom.
	MaxSleep time.Duration
}

// NewBenchmarkCase returns a BenchmarkCase whose random subject sleeps
// up to maxSleep.
func NewBenchmarkCase(maxSleep time.Duration) *BenchmarkCase {
	return &BenchmarkCase{MaxSleep: maxSleep}
}

func (c *BenchmarkCase) Name() string { return "BenchmarkCase" }

func (c *BenchmarkCase) Methods() *bench.MethodTable {
	return bench.NewMethodTable().
		Bench("benchRandom", `/**
		 * @description randomBench
		 */`, c.benchRandom).
		Bench("benchDoNothing", `/**
		 * @iterations 3
		 * @description Do nothing three times
		 */`, c.benchDoNothing).
		Bench("benchParameterized", `/**
		 * @paramProvider provideParamsOne
		 * @paramProvider provideParamsTwo
		 * @description Parameterized bench mark
		 * @iterations 1
		 */`, c.benchParameterized).
		Provider("provideParamsOne", c.provideParamsOne).
		Provider("provideParamsTwo", c.provideParamsTwo)
}

func (c *BenchmarkCase) benchRandom(*bench.Iteration) error {
	if c.MaxSleep > 0 {
		time.Sleep(rand.N(c.MaxSleep))
	}
	return nil
}

func (c *BenchmarkCase) benchDoNothing(*bench.Iteration) error {
	return nil
}

func (c *BenchmarkCase) benchParameterized(*bench.Iteration) error {
	return nil
}

func (c *BenchmarkCase) provideParamsOne() ([]params.Set, error) {
	return []params.Set{
		{"length": "1"},
		{"length": "2"},
	}, nil
}

func (c *BenchmarkCase) provideParamsTwo() ([]params.Set, error) {
	return []params.Set{
		{"strategy": "left"},
		{"strategy": "right"},
	}, nil
}
