package discovery

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/benchkit/internal/annotation"
	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

type tableCase struct {
	name  string
	table *bench.MethodTable
}

func (c *tableCase) Name() string                { return c.name }
func (c *tableCase) Methods() *bench.MethodTable { return c.table }

func noop(*bench.Iteration) error { return nil }

func TestDiscover(t *testing.T) {
	c := &tableCase{
		name: "SampleCase",
		table: bench.NewMethodTable().
			Bench("benchFirst", `/**
 * @description first one
 * @iterations 3
 */`, noop).
			Hook("setUp", func() error { return nil }).
			Provider("provideThings", func() ([]params.Set, error) { return nil, nil }).
			Bench("helper", "/** @iterations 9 */", noop).
			Bench("Benchmark", "", noop).
			Bench("benchSecond", `/**
 * @beforeMethod setUp
 * @paramProvider provideThings
 */`, noop),
	}

	subjects, err := SubjectDiscovery{}.Discover(c)
	require.NoError(t, err)

	assert.Equal(t, []bench.Subject{
		{
			Name:           "benchFirst",
			Description:    "first one",
			BeforeMethods:  []string{},
			ParamProviders: []string{},
			Iterations:     3,
		},
		{
			Name:           "benchSecond",
			BeforeMethods:  []string{"setUp"},
			ParamProviders: []string{"provideThings"},
			Iterations:     1,
		},
	}, subjects)
}

func TestDiscover_PartialFailure(t *testing.T) {
	c := &tableCase{
		name: "BrokenCase",
		table: bench.NewMethodTable().
			Bench("benchGood", "", noop).
			Bench("benchUnknown", "/** @bogus foo */", noop).
			Bench("benchMalformed", "/** @iterations lots */", noop).
			Provider("benchProvider", func() ([]params.Set, error) { return nil, nil }),
	}

	subjects, err := SubjectDiscovery{}.Discover(c)
	require.Error(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "benchGood", subjects[0].Name)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 3)

	assert.Equal(t, "BrokenCase", errs[0].Case)
	assert.Equal(t, "benchUnknown", errs[0].Method)
	assert.True(t, errors.Is(errs[0], annotation.ErrUnknownAnnotation))

	assert.Equal(t, "benchMalformed", errs[1].Method)
	assert.True(t, errors.Is(errs[1], annotation.ErrMalformedAnnotation))

	assert.Equal(t, "benchProvider", errs[2].Method)
	assert.True(t, errors.Is(errs[2], ErrNotInvocable))

	assert.True(t, errors.Is(err, annotation.ErrUnknownAnnotation))
	assert.Contains(t, err.Error(), "BrokenCase::benchUnknown")
}

func TestDiscover_CustomPrefixAndFilter(t *testing.T) {
	c := &tableCase{
		name: "FilterCase",
		table: bench.NewMethodTable().
			Bench("benchAlpha", "", noop).
			Bench("benchBeta", "", noop).
			Bench("perfGamma", "", noop),
	}

	subjects, err := SubjectDiscovery{Filter: regexp.MustCompile(`::benchB`)}.Discover(c)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "benchBeta", subjects[0].Name)

	subjects, err = SubjectDiscovery{Prefix: "perf"}.Discover(c)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "perfGamma", subjects[0].Name)
}

func TestDiscover_NoSubjects(t *testing.T) {
	c := &tableCase{name: "EmptyCase", table: bench.NewMethodTable()}
	subjects, err := SubjectDiscovery{}.Discover(c)
	require.NoError(t, err)
	assert.Empty(t, subjects)
}

func TestNewCollection(t *testing.T) {
	a := &tableCase{name: "A", table: bench.NewMethodTable()}
	b := &tableCase{name: "B", table: bench.NewMethodTable()}

	coll, err := NewCollection(b, a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, coll.Len())
	assert.Equal(t, []string{"B", "A"}, coll.Names())

	cases := coll.Cases()
	assert.Same(t, b, cases[0])
	assert.Same(t, a, cases[1])
}

func TestNewCollection_Errors(t *testing.T) {
	var nilCase *tableCase

	tests := []struct {
		name  string
		cases []bench.Case
		msg   string
	}{
		{name: "nil interface", cases: []bench.Case{nil}, msg: "case 0 is nil"},
		{name: "nil pointer", cases: []bench.Case{nilCase}, msg: "case 0 is nil"},
		{name: "empty name", cases: []bench.Case{&tableCase{table: bench.NewMethodTable()}}, msg: "empty name"},
		{
			name: "duplicate name",
			cases: []bench.Case{
				&tableCase{name: "Same", table: bench.NewMethodTable()},
				&tableCase{name: "Same", table: bench.NewMethodTable()},
			},
			msg: `duplicate case name "Same"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection(tt.cases...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
