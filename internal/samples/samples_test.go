package samples

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/discovery"
	"github.com/wesleyorama2/benchkit/internal/params"
	"github.com/wesleyorama2/benchkit/internal/runner"
)

func TestSamplesRegistered(t *testing.T) {
	var names []string
	for _, c := range bench.Registered() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "BenchmarkCase")
	assert.Contains(t, names, "StringCase")
}

func TestBenchmarkCase_Run(t *testing.T) {
	coll, err := discovery.NewCollection(NewBenchmarkCase(time.Millisecond))
	require.NoError(t, err)

	res, err := runner.New(discovery.SubjectDiscovery{},
		runner.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))).
		Run(context.Background(), coll)
	require.NoError(t, err)
	assert.Empty(t, res.Failures())

	subjects := res.Cases()[0].Subjects()
	require.Len(t, subjects, 3)

	assert.Equal(t, "benchRandom", subjects[0].Name())
	assert.Equal(t, "randomBench", subjects[0].Subject().Description)
	assert.Len(t, subjects[0].Groups()[0].Iterations(), 1)

	assert.Equal(t, "benchDoNothing", subjects[1].Name())
	assert.Len(t, subjects[1].Groups()[0].Iterations(), 3)

	groups := subjects[2].Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, params.Set{"length": "1", "strategy": "left"}, groups[0].Parameters())
	assert.Equal(t, params.Set{"length": "2", "strategy": "right"}, groups[3].Parameters())
	for _, g := range groups {
		assert.Len(t, g.Iterations(), 1)
	}
}

func TestStringCase_Run(t *testing.T) {
	c := &StringCase{}
	coll, err := discovery.NewCollection(c)
	require.NoError(t, err)

	res, err := runner.New(discovery.SubjectDiscovery{},
		runner.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))).
		Run(context.Background(), coll)
	require.NoError(t, err)
	assert.Empty(t, res.Failures())

	for _, s := range res.Cases()[0].Subjects() {
		groups := s.Groups()
		require.Len(t, groups, 2, s.Name())
		for _, g := range groups {
			assert.Len(t, g.Iterations(), 5)
		}
	}
	assert.Len(t, c.out, 1000)
}
